package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu       sync.Mutex
	subjects []string
	messages [][]byte
	ctxErrs  []error
}

func (p *recordingPublisher) Publish(ctx context.Context, subject string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	p.messages = append(p.messages, data)
	p.ctxErrs = append(p.ctxErrs, ctx.Err())
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.messages)
}

func testConfig() DelivererConfig {
	return DelivererConfig{
		Timeout:    time.Second,
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
	}
}

func newTestTask(t *testing.T, url string) models.WebhookTask {
	task, err := NewTask(uuid.New(), models.WebhookTarget{URL: url, Secret: "whsec_x"}, "order.assigned", map[string]string{"order_id": "o-1"})
	require.NoError(t, err)
	return task
}

func TestDeliverer_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dead := &recordingPublisher{}
	d := NewDeliverer(testConfig(), dead, nil)

	result := d.Deliver(context.Background(), newTestTask(t, server.URL))

	assert.True(t, result.Success)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Zero(t, dead.count())
}

func TestDeliverer_ClientErrorIsPermanent(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	dead := &recordingPublisher{}
	d := NewDeliverer(testConfig(), dead, nil)

	result := d.Deliver(context.Background(), newTestTask(t, server.URL))

	assert.False(t, result.Success)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Zero(t, dead.count())
}

func TestDeliverer_ExhaustedGoesToDeadLetter(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	dead := &recordingPublisher{}
	d := NewDeliverer(testConfig(), dead, nil)
	task := newTestTask(t, server.URL)

	result := d.Deliver(context.Background(), task)

	assert.False(t, result.Success)
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
	require.Equal(t, 1, dead.count())
	assert.Equal(t, "webhook.deadletter", dead.subjects[0])

	var dl models.WebhookTask
	require.NoError(t, json.Unmarshal(dead.messages[0], &dl))
	assert.Equal(t, task.ID, dl.ID)
	assert.Equal(t, 4, dl.Attempts)
	assert.NotEmpty(t, dl.LastError)
	assert.Equal(t, server.URL, dl.Target.URL)
	assert.Empty(t, dl.Target.Secret)
	assert.NotContains(t, string(dead.messages[0]), "whsec_x")
}

func TestNATSQueue_Enqueue(t *testing.T) {
	pub := &recordingPublisher{}
	q := NewNATSQueue(pub)
	task := newTestTask(t, "https://hooks.example.test")

	require.NoError(t, q.Enqueue(context.Background(), task))

	require.Equal(t, 1, pub.count())
	assert.Equal(t, "webhook.outbound", pub.subjects[0])
	var got models.WebhookTask
	require.NoError(t, json.Unmarshal(pub.messages[0], &got))
	assert.Equal(t, task.ID, got.ID)
	assert.JSONEq(t, `{"order_id":"o-1"}`, string(got.Data))
}

// stalledPublisher never gets an acknowledgement from the stream
type stalledPublisher struct {
	deadline time.Time
}

func (p *stalledPublisher) Publish(ctx context.Context, _ string, _ []byte) error {
	p.deadline, _ = ctx.Deadline()
	<-ctx.Done()
	return ctx.Err()
}

func TestNATSQueue_EnqueueBoundedWhenBrokerStalls(t *testing.T) {
	pub := &stalledPublisher{}
	q := NewNATSQueue(pub)
	assert.Equal(t, EnqueueTimeout, q.timeout)
	q.timeout = 50 * time.Millisecond

	start := time.Now()
	err := q.Enqueue(context.Background(), newTestTask(t, "https://hooks.example.test"))
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, elapsed, time.Second)
	assert.WithinDuration(t, start.Add(50*time.Millisecond), pub.deadline, 40*time.Millisecond)
}

func TestNATSQueue_EnqueueOutlivesCancelledRequest(t *testing.T) {
	pub := &recordingPublisher{}
	q := NewNATSQueue(pub)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, q.Enqueue(ctx, newTestTask(t, "https://hooks.example.test")))
	require.Equal(t, 1, pub.count())
	assert.NoError(t, pub.ctxErrs[0])
}

func TestInProcessQueue_DeliversAfterRequestContextEnds(t *testing.T) {
	delivered := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delivered <- r.Header.Get("X-Webhook-Event")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	q := NewInProcessQueue(NewDeliverer(testConfig(), nil, nil), 2)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, q.Enqueue(ctx, newTestTask(t, server.URL)))
	cancel()

	select {
	case event := <-delivered:
		assert.Equal(t, "order.assigned", event)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was not delivered")
	}
	assert.True(t, q.Wait(time.Second))
}
