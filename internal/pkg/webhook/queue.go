package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/constants"
	appctx "github.com/piresc/dispatch/internal/pkg/context"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// Queue accepts outbound webhook tasks without waiting for delivery
type Queue interface {
	Enqueue(ctx context.Context, task models.WebhookTask) error
}

// EnqueueTimeout bounds the broker acknowledgement inside a request
const EnqueueTimeout = time.Second

// Publisher is the subset of the NATS client the queue needs
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// NewTask builds a task for target with data serialised once
func NewTask(companyID uuid.UUID, target models.WebhookTarget, event string, data interface{}) (models.WebhookTask, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return models.WebhookTask{}, fmt.Errorf("failed to marshal webhook data: %w", err)
	}
	return models.WebhookTask{
		ID:         uuid.New(),
		CompanyID:  companyID,
		Target:     target,
		Event:      event,
		Data:       raw,
		EnqueuedAt: models.Now(),
	}, nil
}

// NATSQueue publishes tasks for the webhook worker
type NATSQueue struct {
	publisher Publisher
	subject   string
	timeout   time.Duration
}

// NewNATSQueue creates a queue publishing to the outbound subject
func NewNATSQueue(publisher Publisher) *NATSQueue {
	return &NATSQueue{publisher: publisher, subject: constants.SubjectWebhookOutbound, timeout: EnqueueTimeout}
}

// Enqueue publishes the task and waits at most the queue timeout for the
// stream to store it. A client hanging up does not cancel the publish.
func (q *NATSQueue) Enqueue(ctx context.Context, task models.WebhookTask) error {
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook task: %w", err)
	}
	publishCtx, cancel := context.WithTimeout(appctx.Detach(ctx), q.timeout)
	defer cancel()
	if err := q.publisher.Publish(publishCtx, q.subject, data); err != nil {
		return fmt.Errorf("failed to publish webhook task: %w", err)
	}
	logger.DebugCtx(ctx, "Webhook task queued",
		logger.String("task_id", task.ID.String()),
		logger.String("event", task.Event))
	return nil
}

// InProcessQueue delivers tasks on background goroutines, at most
// workers at a time. Used when no broker is configured.
type InProcessQueue struct {
	deliverer *Deliverer
	slots     chan struct{}
	wg        sync.WaitGroup
}

// NewInProcessQueue creates an in-process queue
func NewInProcessQueue(deliverer *Deliverer, workers int) *InProcessQueue {
	if workers <= 0 {
		workers = 1
	}
	return &InProcessQueue{
		deliverer: deliverer,
		slots:     make(chan struct{}, workers),
	}
}

// Enqueue starts delivery and returns immediately
func (q *InProcessQueue) Enqueue(ctx context.Context, task models.WebhookTask) error {
	// the request context ends with the response; delivery must not
	deliveryCtx := appctx.Detach(ctx)

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.slots <- struct{}{}
		defer func() { <-q.slots }()

		q.deliverer.Deliver(deliveryCtx, task)
	}()
	return nil
}

// Wait blocks until queued deliveries finish or timeout elapses
func (q *InProcessQueue) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
