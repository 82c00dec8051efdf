package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/pkg/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	subject string
	data    []byte
	err     error
}

func (p *fakePublisher) Publish(_ context.Context, subject string, data []byte) error {
	p.subject = subject
	p.data = data
	return p.err
}

func TestPublishOrderEvent(t *testing.T) {
	publisher := &fakePublisher{}
	gw := NewWebhookGW(webhook.NewNATSQueue(publisher))
	companyID := uuid.New()
	order := &models.Order{ID: uuid.New(), OrderNumber: "ORD-1", Status: models.OrderStatusAssigned}
	target := models.WebhookTarget{URL: "https://acme.test/hook", Secret: "whsec_1"}

	err := gw.PublishOrderEvent(context.Background(), companyID, target, constants.EventOrderAssigned, order)
	require.NoError(t, err)
	assert.Equal(t, constants.SubjectWebhookOutbound, publisher.subject)

	var task models.WebhookTask
	require.NoError(t, json.Unmarshal(publisher.data, &task))
	assert.Equal(t, companyID, task.CompanyID)
	assert.Equal(t, target, task.Target)
	assert.Equal(t, constants.EventOrderAssigned, task.Event)

	var payload models.Order
	require.NoError(t, json.Unmarshal(task.Data, &payload))
	assert.Equal(t, order.ID, payload.ID)
}

func TestPublishOrderEvent_QueueFailure(t *testing.T) {
	gw := NewWebhookGW(webhook.NewNATSQueue(&fakePublisher{err: errors.New("nats: connection closed")}))

	err := gw.PublishOrderEvent(context.Background(), uuid.New(), models.WebhookTarget{}, constants.EventOrderFailed, &models.Order{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order.failed")
}
