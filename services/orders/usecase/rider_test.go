package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity() models.AgentIdentity {
	return models.AgentIdentity{SessionID: uuid.New(), RiderID: uuid.New(), CompanyID: uuid.New(), DeviceID: "dev-1"}
}

func TestUpdateRiderOrder_Transitions(t *testing.T) {
	tests := []struct {
		current   models.OrderStatus
		requested string
		wantKind  apperror.Kind
	}{
		{current: models.OrderStatusAssigned, requested: "picked_up"},
		{current: models.OrderStatusAssigned, requested: "failed"},
		{current: models.OrderStatusPickedUp, requested: "in_transit"},
		{current: models.OrderStatusInTransit, requested: "delivered"},
		{current: models.OrderStatusAssigned, requested: "delivered", wantKind: apperror.KindInvalidTransition},
		{current: models.OrderStatusPending, requested: "picked_up", wantKind: apperror.KindInvalidTransition},
		{current: models.OrderStatusDelivered, requested: "failed", wantKind: apperror.KindInvalidTransition},
		{current: models.OrderStatusAssigned, requested: "cancelled", wantKind: apperror.KindValidation},
	}

	for _, tt := range tests {
		t.Run(string(tt.current)+"->"+tt.requested, func(t *testing.T) {
			uc, mockRepo, _ := setupOrderUC(t)
			identity := testIdentity()
			orderID := uuid.New()
			order := &models.Order{ID: orderID, CompanyID: identity.CompanyID, RiderID: &identity.RiderID,
				Status: tt.current, PaymentStatus: models.PaymentStatusPending}

			mockRepo.EXPECT().GetRiderOrder(gomock.Any(), identity.CompanyID, identity.RiderID, orderID).Return(order, nil)
			if tt.wantKind == "" {
				mockRepo.EXPECT().UpdateOrder(gomock.Any(), order).Return(nil)
			}

			updated, err := uc.UpdateRiderOrder(context.Background(), identity, orderID,
				&models.AgentOrderUpdate{Status: tt.requested, Note: "on my way"})
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperror.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.OrderStatus(tt.requested), updated.Status)
			assert.Equal(t, "[rider 2026-03-01T10:30:00Z] on my way", updated.Notes)
			if tt.requested == "delivered" {
				require.NotNil(t, updated.DeliveredAt)
				assert.Equal(t, models.PaymentStatusPending, updated.PaymentStatus)
			}
			if tt.requested == "picked_up" {
				require.NotNil(t, updated.PickedUpAt)
			}
		})
	}
}

func TestUpdateRiderOrder_NotOwned(t *testing.T) {
	uc, mockRepo, _ := setupOrderUC(t)
	identity := testIdentity()
	orderID := uuid.New()

	mockRepo.EXPECT().GetRiderOrder(gomock.Any(), identity.CompanyID, identity.RiderID, orderID).
		Return(nil, apperror.NotFound("order not found"))

	_, err := uc.UpdateRiderOrder(context.Background(), identity, orderID, &models.AgentOrderUpdate{Status: "picked_up"})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestUpdateRiderOrder_EmptyBody(t *testing.T) {
	uc, _, _ := setupOrderUC(t)

	_, err := uc.UpdateRiderOrder(context.Background(), testIdentity(), uuid.New(), &models.AgentOrderUpdate{})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestListRiderOrders(t *testing.T) {
	uc, mockRepo, _ := setupOrderUC(t)
	identity := testIdentity()

	mockRepo.EXPECT().ListRiderOrders(gomock.Any(), identity.CompanyID, identity.RiderID, riderActiveStatuses).
		Return([]*models.Order{{ID: uuid.New()}}, nil)
	list, err := uc.ListRiderOrders(context.Background(), identity, "")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	mockRepo.EXPECT().ListRiderOrders(gomock.Any(), identity.CompanyID, identity.RiderID,
		[]models.OrderStatus{models.OrderStatusDelivered}).Return([]*models.Order{}, nil)
	_, err = uc.ListRiderOrders(context.Background(), identity, "delivered")
	require.NoError(t, err)

	_, err = uc.ListRiderOrders(context.Background(), identity, "teleported")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}
