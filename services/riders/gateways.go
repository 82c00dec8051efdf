package riders

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/dispatch/services/riders RiderGW

// RiderGW defines the live position index of riders
type RiderGW interface {
	IndexPosition(ctx context.Context, companyID, riderID uuid.UUID, latitude, longitude float64) error
	RemovePosition(ctx context.Context, companyID, riderID uuid.UUID) error
	Nearby(ctx context.Context, companyID uuid.UUID, latitude, longitude, radiusKm float64, limit int) ([]models.Position, error)
}
