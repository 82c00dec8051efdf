package usecase

import (
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/orders"
	"github.com/piresc/dispatch/services/riders"
)

// WebhookUC implements webhooks.WebhookUC
type WebhookUC struct {
	riderUC riders.RiderUC
	orderUC orders.OrderUC
	cfg     *models.Config
}

// NewWebhookUC creates a new inbound webhook usecase instance
func NewWebhookUC(
	riderUC riders.RiderUC,
	orderUC orders.OrderUC,
	cfg *models.Config,
) *WebhookUC {
	return &WebhookUC{
		riderUC: riderUC,
		orderUC: orderUC,
		cfg:     cfg,
	}
}
