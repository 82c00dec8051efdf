package riders

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dispatch/services/riders RiderUC

// RiderUC represents the rider management usecase interface
type RiderUC interface {
	// tenant rider management
	ListRiders(ctx context.Context, companyID uuid.UUID, filter models.RiderFilter) ([]*models.Rider, error)
	CreateRider(ctx context.Context, companyID uuid.UUID, req *models.CreateRiderRequest) (*models.Rider, error)
	GetRider(ctx context.Context, companyID, riderID uuid.UUID) (*models.Rider, error)
	GetRiderByExternalID(ctx context.Context, companyID uuid.UUID, externalID string) (*models.Rider, error)
	UpdateRider(ctx context.Context, companyID, riderID uuid.UUID, req *models.UpdateRiderRequest) (*models.Rider, error)
	DeleteRider(ctx context.Context, companyID, riderID uuid.UUID) error
	SetStatus(ctx context.Context, companyID, riderID uuid.UUID, status models.RiderStatus) (*models.Rider, error)

	// batch operations
	ImportRiders(ctx context.Context, companyID uuid.UUID, rows []models.CreateRiderRequest) (*models.ImportResult, error)
	SyncRiders(ctx context.Context, companyID uuid.UUID, rows []models.CreateRiderRequest) (*models.SyncResult, error)

	// location
	UpdateLocation(ctx context.Context, companyID, riderID uuid.UUID, req *models.LocationUpdate) (*models.Rider, error)
	FindNearby(ctx context.Context, companyID uuid.UUID, latitude, longitude, radiusKm float64, limit int) ([]models.Position, error)
	ActiveRoster(ctx context.Context, companyID uuid.UUID) (*models.ActiveRoster, error)
}
