package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/dispatch/services/orders OrderRepo

// OrderRepo defines the order and customer store
type OrderRepo interface {
	ListOrders(ctx context.Context, companyID uuid.UUID, filter models.OrderFilter) ([]*models.Order, error)
	ListRiderOrders(ctx context.Context, companyID, riderID uuid.UUID, statuses []models.OrderStatus) ([]*models.Order, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, companyID, id uuid.UUID) (*models.Order, error)
	GetRiderOrder(ctx context.Context, companyID, riderID, id uuid.UUID) (*models.Order, error)
	GetOrderByExternalID(ctx context.Context, companyID uuid.UUID, externalID string) (*models.Order, error)
	UpdateOrder(ctx context.Context, order *models.Order) error
	UpsertByExternalID(ctx context.Context, order *models.Order) (bool, error)

	FindOrCreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	RiderExists(ctx context.Context, companyID, riderID uuid.UUID) (bool, error)
	GetWebhookTarget(ctx context.Context, companyID uuid.UUID) (models.WebhookTarget, error)
	GetAnalytics(ctx context.Context, companyID uuid.UUID, since time.Time) (*models.Analytics, error)
}
