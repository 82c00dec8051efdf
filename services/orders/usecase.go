package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dispatch/services/orders OrderUC

// OrderUC represents the order lifecycle usecase interface
type OrderUC interface {
	// dispatcher side
	ListOrders(ctx context.Context, companyID uuid.UUID, filter models.OrderFilter) ([]*models.Order, error)
	CreateOrder(ctx context.Context, companyID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, companyID, orderID uuid.UUID) (*models.Order, error)
	UpdateOrder(ctx context.Context, companyID, orderID uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, error)
	CancelOrder(ctx context.Context, companyID, orderID uuid.UUID) (*models.Order, error)
	Analytics(ctx context.Context, companyID uuid.UUID) (*models.Analytics, error)

	// rider side
	ListRiderOrders(ctx context.Context, identity models.AgentIdentity, status string) ([]*models.Order, error)
	GetRiderOrder(ctx context.Context, identity models.AgentIdentity, orderID uuid.UUID) (*models.Order, error)
	UpdateRiderOrder(ctx context.Context, identity models.AgentIdentity, orderID uuid.UUID, req *models.AgentOrderUpdate) (*models.Order, error)

	// partner systems
	ImportOrder(ctx context.Context, companyID uuid.UUID, req *models.CreateOrderRequest, status models.OrderStatus) (*models.Order, bool, error)
	ApplyInboundStatus(ctx context.Context, companyID uuid.UUID, req *models.InboundOrderStatusData) (*models.Order, error)
}
