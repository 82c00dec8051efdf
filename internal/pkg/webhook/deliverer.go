package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/piresc/dispatch/internal/pkg/circuitbreaker"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/metrics"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/pkg/retry"
)

// Deliverer sends one task with bounded retry and dead-letters it when
// every attempt failed.
type Deliverer struct {
	client     *Client
	retrier    *retry.Retrier
	breakers   *circuitbreaker.Manager
	deadLetter Publisher
}

// DelivererConfig mirrors the webhook section of the app config
type DelivererConfig struct {
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// ConfigFromModel converts the app config
func ConfigFromModel(cfg models.WebhookConfig) DelivererConfig {
	return DelivererConfig{
		Timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  time.Duration(cfg.BaseDelayMs) * time.Millisecond,
		MaxDelay:   time.Duration(cfg.MaxDelayMs) * time.Millisecond,
	}
}

// NewDeliverer wires the client, retry policy and host breakers. deadLetter
// may be nil, in which case exhausted tasks are only logged.
func NewDeliverer(cfg DelivererConfig, deadLetter Publisher, log *logger.ZapLogger) *Deliverer {
	retrier := retry.New(retry.Config{
		MaxRetries:    cfg.MaxRetries,
		BaseDelay:     cfg.BaseDelay,
		MaxDelay:      cfg.MaxDelay,
		Multiplier:    2.0,
		Jitter:        true,
		RetryableFunc: isRetryable,
	}, log)

	breakerCfg := circuitbreaker.DefaultConfig()
	breakerCfg.IsFailure = isHostFailure

	return &Deliverer{
		client:     NewClient(cfg.Timeout),
		retrier:    retrier,
		breakers:   circuitbreaker.NewManager(breakerCfg),
		deadLetter: deadLetter,
	}
}

// isRetryable retries transport errors, open breakers, 5xx and 429
func isRetryable(err error) bool {
	if !retry.IsRetryable(err) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	return true
}

// isHostFailure keeps tenant-side 4xx answers from tripping the breaker
func isHostFailure(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	return true
}

// Deliver runs the task to completion. It never returns an error: failures
// end in the dead-letter subject and the logs.
func (d *Deliverer) Deliver(ctx context.Context, task models.WebhookTask) models.WebhookResult {
	var result models.WebhookResult

	payload, err := d.client.Envelope(task.Event, task.Data)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to build webhook payload",
			logger.String("task_id", task.ID.String()),
			logger.Err(err))
		metrics.RecordWebhookOutcome(task.Event, metrics.OutcomeFailed)
		return models.WebhookResult{Error: err.Error()}
	}

	stats, err := d.retrier.ExecuteWithMetrics(ctx, func(ctx context.Context) error {
		return d.breakers.Execute(ctx, task.Target.URL, func(ctx context.Context) error {
			var sendErr error
			result, sendErr = d.client.Post(ctx, task.Target, task.Event, payload)
			return sendErr
		})
	})
	task.Attempts += stats.Attempts

	if err == nil {
		logger.InfoCtx(ctx, "Webhook delivered",
			logger.String("task_id", task.ID.String()),
			logger.String("company_id", task.CompanyID.String()),
			logger.String("event", task.Event),
			logger.Int("status_code", result.StatusCode),
			logger.Int("attempts", task.Attempts))
		metrics.RecordWebhookOutcome(task.Event, metrics.OutcomeDelivered)
		return result
	}

	task.LastError = err.Error()
	if result.Error == "" {
		result.Error = err.Error()
	}

	if !isRetryable(err) {
		logger.WarnCtx(ctx, "Webhook rejected by callback",
			logger.String("task_id", task.ID.String()),
			logger.String("company_id", task.CompanyID.String()),
			logger.String("event", task.Event),
			logger.Int("status_code", result.StatusCode))
		metrics.RecordWebhookOutcome(task.Event, metrics.OutcomeFailed)
		return result
	}

	d.toDeadLetter(ctx, task)
	return result
}

func (d *Deliverer) toDeadLetter(ctx context.Context, task models.WebhookTask) {
	metrics.RecordWebhookOutcome(task.Event, metrics.OutcomeDeadLetter)
	logger.ErrorCtx(ctx, "Webhook delivery exhausted retries",
		logger.String("task_id", task.ID.String()),
		logger.String("company_id", task.CompanyID.String()),
		logger.String("event", task.Event),
		logger.Int("attempts", task.Attempts),
		logger.String("last_error", task.LastError))

	if d.deadLetter == nil {
		return
	}
	// dead letters are kept for inspection, the signing secret is not
	task.Target.Secret = ""
	data, err := json.Marshal(task)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to marshal dead letter", logger.Err(err))
		return
	}
	if err := d.deadLetter.Publish(ctx, constants.SubjectWebhookDeadLetter, data); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish dead letter",
			logger.String("task_id", task.ID.String()),
			logger.Err(err))
	}
}
