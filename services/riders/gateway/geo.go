package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// GeoIndex keeps the last known rider positions of each company in a Redis
// GEO set.
type GeoIndex struct {
	redisClient *database.RedisClient
}

// NewGeoIndex creates a new rider position index
func NewGeoIndex(redisClient *database.RedisClient) *GeoIndex {
	return &GeoIndex{redisClient: redisClient}
}

func geoKey(companyID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyRiderGeo, companyID.String())
}

// IndexPosition stores the rider position
func (g *GeoIndex) IndexPosition(ctx context.Context, companyID, riderID uuid.UUID, latitude, longitude float64) error {
	if err := g.redisClient.GeoAdd(ctx, geoKey(companyID), longitude, latitude, riderID.String()); err != nil {
		return fmt.Errorf("failed to index rider position: %w", err)
	}
	return nil
}

// RemovePosition drops the rider from the index
func (g *GeoIndex) RemovePosition(ctx context.Context, companyID, riderID uuid.UUID) error {
	if err := g.redisClient.GeoRemove(ctx, geoKey(companyID), riderID.String()); err != nil {
		return fmt.Errorf("failed to remove rider position: %w", err)
	}
	return nil
}

// Nearby returns indexed riders within radiusKm of a point, nearest first
func (g *GeoIndex) Nearby(ctx context.Context, companyID uuid.UUID, latitude, longitude, radiusKm float64, limit int) ([]models.Position, error) {
	locations, err := g.redisClient.GeoRadius(ctx, geoKey(companyID), longitude, latitude, radiusKm, "km", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search rider positions: %w", err)
	}

	positions := make([]models.Position, 0, len(locations))
	for _, loc := range locations {
		riderID, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}
		positions = append(positions, models.Position{
			RiderID:   riderID,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			Distance:  loc.Dist,
		})
	}
	return positions, nil
}
