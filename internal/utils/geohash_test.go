package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeGeohash(t *testing.T) {
	hash := EncodeGeohash(-6.175392, 106.827153)

	assert.Len(t, hash, GeohashPrecision)
	assert.Equal(t, "qqguygv", hash)
}

func TestIsValidCoordinate(t *testing.T) {
	assert.True(t, IsValidCoordinate(0, 0))
	assert.True(t, IsValidCoordinate(-90, 180))
	assert.False(t, IsValidCoordinate(91, 0))
	assert.False(t, IsValidCoordinate(0, -181))
	assert.False(t, IsValidCoordinate(math.NaN(), 0))
}

func TestCalculateDistance(t *testing.T) {
	// Monas to Bundaran HI, Jakarta
	d := CalculateDistance(-6.175392, 106.827153, -6.195000, 106.823000)

	assert.InDelta(t, 2.2, d, 0.2)
	assert.Equal(t, 0.0, CalculateDistance(1, 1, 1, 1))
}
