package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	natspkg "github.com/piresc/dispatch/internal/pkg/nats"
)

// TaskDeliverer delivers one outbound webhook task to completion
type TaskDeliverer interface {
	Deliver(ctx context.Context, task models.WebhookTask) models.WebhookResult
}

// OutboundHandler consumes queued webhook tasks and delivers them
type OutboundHandler struct {
	deliverer  TaskDeliverer
	natsClient *natspkg.Client
	workers    int
	consumers  []*natspkg.Consumer
}

// NewOutboundHandler creates a new outbound webhook NATS handler
func NewOutboundHandler(deliverer TaskDeliverer, client *natspkg.Client, workers int) *OutboundHandler {
	if workers <= 0 {
		workers = 1
	}
	return &OutboundHandler{
		deliverer:  deliverer,
		natsClient: client,
		workers:    workers,
	}
}

// InitNATSConsumers starts one pull loop per worker on the shared durable
// consumer
func (h *OutboundHandler) InitNATSConsumers(ctx context.Context) error {
	for i := 0; i < h.workers; i++ {
		consumer, err := natspkg.NewConsumer(ctx, h.natsClient, natspkg.WebhookConsumer(h.workers))
		if err != nil {
			h.Stop()
			return fmt.Errorf("failed to create webhook consumer: %w", err)
		}
		if err := consumer.Start(h.HandleTask); err != nil {
			h.Stop()
			return fmt.Errorf("failed to start webhook consumer: %w", err)
		}
		h.consumers = append(h.consumers, consumer)
	}

	logger.Info("Webhook workers started", logger.Int("workers", h.workers))
	return nil
}

// HandleTask delivers one task. Undecodable tasks are dropped, and failed
// deliveries are already dead-lettered by the deliverer, so the message is
// always acknowledged.
func (h *OutboundHandler) HandleTask(ctx context.Context, data []byte) error {
	var task models.WebhookTask
	if err := json.Unmarshal(data, &task); err != nil {
		logger.ErrorCtx(ctx, "Dropping undecodable webhook task", logger.Err(err))
		return nil
	}
	if task.Target.URL == "" {
		logger.WarnCtx(ctx, "Dropping webhook task without target",
			logger.String("task_id", task.ID.String()),
			logger.String("event", task.Event))
		return nil
	}

	result := h.deliverer.Deliver(ctx, task)
	logger.DebugCtx(ctx, "Webhook task processed",
		logger.String("task_id", task.ID.String()),
		logger.Bool("success", result.Success),
		logger.Int("status_code", result.StatusCode))
	return nil
}

// Stop stops every pull loop
func (h *OutboundHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
	h.consumers = nil
}
