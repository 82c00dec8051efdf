package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision is the precision stored with rider positions (~150m cells)
const GeohashPrecision = 7

// EncodeGeohash converts a coordinate to a geohash string
func EncodeGeohash(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, GeohashPrecision)
}

// IsValidCoordinate checks latitude and longitude ranges
func IsValidCoordinate(latitude, longitude float64) bool {
	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return false
	}
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}

// CalculateDistance returns the distance between two points in kilometers using the Haversine formula
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371.0

	rLat1 := lat1 * math.Pi / 180.0
	rLat2 := lat2 * math.Pi / 180.0
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
