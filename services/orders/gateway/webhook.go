package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/pkg/webhook"
)

// WebhookGW hands order events to the outbound webhook queue
type WebhookGW struct {
	queue webhook.Queue
}

// NewWebhookGW creates a new order webhook gateway
func NewWebhookGW(queue webhook.Queue) *WebhookGW {
	return &WebhookGW{queue: queue}
}

// PublishOrderEvent enqueues event for target. The call returns once the
// task is queued; delivery happens elsewhere.
func (g *WebhookGW) PublishOrderEvent(ctx context.Context, companyID uuid.UUID, target models.WebhookTarget, event string, order *models.Order) error {
	task, err := webhook.NewTask(companyID, target, event, order)
	if err != nil {
		return err
	}
	if err := g.queue.Enqueue(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue %s webhook: %w", event, err)
	}
	return nil
}
