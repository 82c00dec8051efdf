package webhooks

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dispatch/services/webhooks WebhookUC

// WebhookUC represents the inbound partner webhook usecase interface
type WebhookUC interface {
	HandleEvent(ctx context.Context, companyID uuid.UUID, event *models.InboundEvent) (*models.InboundResult, error)
	ImportShopifyOrder(ctx context.Context, companyID uuid.UUID, order *models.ShopifyOrder) (*models.InboundResult, error)
}
