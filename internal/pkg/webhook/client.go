package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/metrics"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// DefaultTimeout bounds one outbound delivery attempt
const DefaultTimeout = 10 * time.Second

// StatusError is a non-2xx answer from a callback URL
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("callback responded with status %d", e.StatusCode)
}

// Retryable reports whether the status is worth another attempt
func (e *StatusError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// Client signs and posts webhook envelopes
type Client struct {
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a webhook client with the given per-attempt timeout
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		now:        models.Now,
	}
}

// Envelope builds the exact bytes that are signed and sent
func (c *Client) Envelope(event string, data interface{}) ([]byte, error) {
	return json.Marshal(models.WebhookEnvelope{
		Event:     event,
		Timestamp: c.now(),
		Data:      data,
	})
}

// Send delivers one event to target. The returned error is nil only for a
// 2xx response; a *StatusError describes any other answer.
func (c *Client) Send(ctx context.Context, target models.WebhookTarget, event string, data interface{}) (models.WebhookResult, error) {
	payload, err := c.Envelope(event, data)
	if err != nil {
		return models.WebhookResult{Error: err.Error()}, fmt.Errorf("failed to marshal webhook payload: %w", err)
	}
	return c.Post(ctx, target, event, payload)
}

// Post sends an already serialised envelope
func (c *Client) Post(ctx context.Context, target models.WebhookTarget, event string, payload []byte) (models.WebhookResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.URL, bytes.NewReader(payload))
	if err != nil {
		return models.WebhookResult{Error: err.Error()}, fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.HeaderWebhookSignature, Sign(target.Secret, payload))
	req.Header.Set(constants.HeaderWebhookEvent, event)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordWebhookAttempt(0, time.Since(start).Seconds())
		return models.WebhookResult{Error: err.Error()}, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	metrics.RecordWebhookAttempt(resp.StatusCode, time.Since(start).Seconds())

	result := models.WebhookResult{
		Success:    resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode: resp.StatusCode,
	}
	if !result.Success {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		result.Error = statusErr.Error()
		return result, statusErr
	}
	return result, nil
}
