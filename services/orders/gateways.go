package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/dispatch/services/orders OrderGW

// OrderGW publishes order events to tenant webhooks
type OrderGW interface {
	PublishOrderEvent(ctx context.Context, companyID uuid.UUID, target models.WebhookTarget, event string, order *models.Order) error
}
