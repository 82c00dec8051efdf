package riders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/dispatch/services/riders RiderRepo

// RiderRepo defines the rider repository interface
type RiderRepo interface {
	ListRiders(ctx context.Context, companyID uuid.UUID, filter models.RiderFilter) ([]*models.Rider, error)
	ListRidersByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*models.Rider, error)
	CreateRider(ctx context.Context, rider *models.Rider) error
	GetRider(ctx context.Context, companyID, id uuid.UUID) (*models.Rider, error)
	GetRiderByExternalID(ctx context.Context, companyID uuid.UUID, externalID string) (*models.Rider, error)
	UpdateRider(ctx context.Context, rider *models.Rider) error
	DeleteRider(ctx context.Context, companyID, id uuid.UUID) error
	UpdateStatus(ctx context.Context, companyID, id uuid.UUID, status models.RiderStatus) (*models.Rider, error)
	UpdateLocation(ctx context.Context, companyID, id uuid.UUID, loc models.LocationUpdate, geohash string, seenAt time.Time) (*models.Rider, error)
	UpsertByExternalID(ctx context.Context, rider *models.Rider) (bool, error)
}
