package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/models"
	ordermocks "github.com/piresc/dispatch/services/orders/mocks"
	ridermocks "github.com/piresc/dispatch/services/riders/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWebhookUC(t *testing.T) (*WebhookUC, *ridermocks.MockRiderUC, *ordermocks.MockOrderUC) {
	ctrl := gomock.NewController(t)
	riderUC := ridermocks.NewMockRiderUC(ctrl)
	orderUC := ordermocks.NewMockOrderUC(ctrl)
	return NewWebhookUC(riderUC, orderUC, &models.Config{}), riderUC, orderUC
}

func TestHandleEvent(t *testing.T) {
	companyID := uuid.New()
	riderID := uuid.New()
	orderID := uuid.New()
	lat, lng := -6.2, 106.8

	tests := []struct {
		name      string
		event     string
		data      string
		mockSetup func(*ridermocks.MockRiderUC, *ordermocks.MockOrderUC)
		wantKind  apperror.Kind
		wantEvent string
		created   bool
	}{
		{
			name:  "Rider location by external id",
			event: "location_update",
			data:  `{"external_id":"drv-7","latitude":-6.2,"longitude":106.8}`,
			mockSetup: func(r *ridermocks.MockRiderUC, _ *ordermocks.MockOrderUC) {
				r.EXPECT().GetRiderByExternalID(gomock.Any(), companyID, "drv-7").Return(&models.Rider{ID: riderID}, nil)
				r.EXPECT().UpdateLocation(gomock.Any(), companyID, riderID, gomock.Any()).
					Return(&models.Rider{ID: riderID, Latitude: &lat, Longitude: &lng}, nil)
			},
			wantEvent: models.InboundRiderLocation,
		},
		{
			name:     "Rider location without target",
			event:    models.InboundRiderLocation,
			data:     `{"latitude":-6.2,"longitude":106.8}`,
			wantKind: apperror.KindValidation,
		},
		{
			name:  "Rider status online alias",
			event: models.InboundRiderStatusUpdate,
			data:  `{"rider_id":"` + riderID.String() + `","status":"online"}`,
			mockSetup: func(r *ridermocks.MockRiderUC, _ *ordermocks.MockOrderUC) {
				r.EXPECT().GetRider(gomock.Any(), companyID, riderID).Return(&models.Rider{ID: riderID}, nil)
				r.EXPECT().SetStatus(gomock.Any(), companyID, riderID, models.RiderStatusActive).
					Return(&models.Rider{ID: riderID, Status: models.RiderStatusActive}, nil)
			},
			wantEvent: models.InboundRiderStatusUpdate,
		},
		{
			name:     "Rider status unknown",
			event:    models.InboundRiderStatusUpdate,
			data:     `{"rider_id":"` + riderID.String() + `","status":"sleeping"}`,
			wantKind: apperror.KindValidation,
		},
		{
			name:  "Order create with external id is idempotent",
			event: "order_created",
			data:  `{"external_id":"ext-1","delivery_address":"Jl. Sudirman 1"}`,
			mockSetup: func(_ *ridermocks.MockRiderUC, o *ordermocks.MockOrderUC) {
				o.EXPECT().ImportOrder(gomock.Any(), companyID, gomock.Any(), models.OrderStatus("")).
					Return(&models.Order{ID: orderID}, false, nil)
			},
			wantEvent: models.InboundOrderCreate,
		},
		{
			name:  "Order create without external id",
			event: models.InboundOrderCreate,
			data:  `{"delivery_address":"Jl. Sudirman 1"}`,
			mockSetup: func(_ *ridermocks.MockRiderUC, o *ordermocks.MockOrderUC) {
				o.EXPECT().CreateOrder(gomock.Any(), companyID, gomock.Any()).Return(&models.Order{ID: orderID}, nil)
			},
			wantEvent: models.InboundOrderCreate,
			created:   true,
		},
		{
			name:  "Order status update",
			event: "order_status_update",
			data:  `{"external_id":"ext-1","status":"delivered"}`,
			mockSetup: func(_ *ridermocks.MockRiderUC, o *ordermocks.MockOrderUC) {
				o.EXPECT().ApplyInboundStatus(gomock.Any(), companyID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, data *models.InboundOrderStatusData) (*models.Order, error) {
						assert.Equal(t, "ext-1", *data.ExternalID)
						assert.Equal(t, "delivered", data.Status)
						return &models.Order{ID: orderID, Status: models.OrderStatusDelivered}, nil
					})
			},
			wantEvent: models.InboundOrderStatusUpdate,
		},
		{
			name:     "Unknown event",
			event:    "order.deleted",
			data:     `{}`,
			wantKind: apperror.KindValidation,
		},
		{
			name:     "Malformed data",
			event:    models.InboundOrderStatusUpdate,
			data:     `[1,2]`,
			wantKind: apperror.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, riderUC, orderUC := setupWebhookUC(t)
			if tt.mockSetup != nil {
				tt.mockSetup(riderUC, orderUC)
			}

			result, err := uc.HandleEvent(context.Background(), companyID, &models.InboundEvent{
				Event: tt.event,
				Data:  json.RawMessage(tt.data),
			})
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, apperror.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEvent, result.Event)
			assert.Equal(t, tt.created, result.Created)
		})
	}
}
