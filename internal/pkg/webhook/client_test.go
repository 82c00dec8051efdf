package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	var (
		gotBody      []byte
		gotSignature string
		gotEvent     string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotEvent = r.Header.Get("X-Webhook-Event")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient(time.Second)
	fixed := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return fixed }

	result, err := client.Send(context.Background(),
		models.WebhookTarget{URL: server.URL, Secret: "whsec_test"},
		"order.delivered", map[string]string{"order_id": "o-1"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, http.StatusAccepted, result.StatusCode)
	assert.Equal(t, "order.delivered", gotEvent)
	assert.Equal(t, Sign("whsec_test", gotBody), gotSignature)

	var envelope struct {
		Event     string            `json:"event"`
		Timestamp time.Time         `json:"timestamp"`
		Data      map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &envelope))
	assert.Equal(t, "order.delivered", envelope.Event)
	assert.True(t, fixed.Equal(envelope.Timestamp))
	assert.Equal(t, "o-1", envelope.Data["order_id"])
}

func TestClient_Send_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	result, err := NewClient(time.Second).Send(context.Background(),
		models.WebhookTarget{URL: server.URL, Secret: "s"}, "order.created", nil)

	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.True(t, statusErr.Retryable())
	assert.False(t, result.Success)
	assert.Equal(t, http.StatusTooManyRequests, result.StatusCode)
}

func TestClient_Send_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	result, err := NewClient(50*time.Millisecond).Send(context.Background(),
		models.WebhookTarget{URL: server.URL, Secret: "s"}, "order.created", nil)

	assert.Error(t, err)
	assert.False(t, result.Success)
	assert.Zero(t, result.StatusCode)
	assert.NotEmpty(t, result.Error)
}

func TestStatusError_Retryable(t *testing.T) {
	assert.True(t, (&StatusError{StatusCode: 500}).Retryable())
	assert.True(t, (&StatusError{StatusCode: 503}).Retryable())
	assert.True(t, (&StatusError{StatusCode: 429}).Retryable())
	assert.False(t, (&StatusError{StatusCode: 400}).Retryable())
	assert.False(t, (&StatusError{StatusCode: 404}).Retryable())
}
