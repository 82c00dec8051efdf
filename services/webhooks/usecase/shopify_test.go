package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopifyPayload = `{
	"id": 820982911946154508,
	"name": "#1001",
	"email": "jon@example.com",
	"currency": "IDR",
	"subtotal_price": "150000.00",
	"total_price": "165000.00",
	"financial_status": "paid",
	"fulfillment_status": null,
	"note": "Leave at the gate",
	"customer": {"first_name": "Jon", "last_name": "Snow", "phone": "+62 812 3456 7890"},
	"shipping_address": {"name": "Jon Snow", "address1": "Jl. Sudirman 1", "city": "Jakarta", "zip": "10220", "country": "Indonesia"},
	"line_items": [{"title": "Kopi Susu", "sku": "KS-1", "quantity": 3, "price": "50000.00"}],
	"shipping_lines": [{"title": "Instant", "price": "15000.00"}]
}`

func decodeShopify(t *testing.T) *models.ShopifyOrder {
	var order models.ShopifyOrder
	require.NoError(t, json.Unmarshal([]byte(shopifyPayload), &order))
	return &order
}

func TestImportShopifyOrder(t *testing.T) {
	uc, _, orderUC := setupWebhookUC(t)
	companyID := uuid.New()

	orderUC.EXPECT().ImportOrder(gomock.Any(), companyID, gomock.Any(), models.OrderStatusPending).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *models.CreateOrderRequest, _ models.OrderStatus) (*models.Order, bool, error) {
			assert.Equal(t, "shopify_820982911946154508", *req.ExternalID)
			assert.Equal(t, "Jl. Sudirman 1, Jakarta, 10220, Indonesia", req.DeliveryAddress)
			assert.Equal(t, "paid", req.PaymentStatus)
			assert.True(t, decimal.NewFromInt(15000).Equal(*req.DeliveryFee))
			assert.True(t, decimal.NewFromInt(165000).Equal(*req.Total))
			require.Len(t, req.Items, 1)
			assert.Equal(t, 3, req.Items[0].Quantity)
			require.NotNil(t, req.Customer)
			assert.Equal(t, "Jon Snow", req.Customer.Name)
			assert.Equal(t, "+62 812 3456 7890", req.Customer.Phone)
			assert.Equal(t, "jon@example.com", *req.Customer.Email)
			return &models.Order{ID: uuid.New()}, true, nil
		})

	result, err := uc.ImportShopifyOrder(context.Background(), companyID, decodeShopify(t))
	require.NoError(t, err)
	assert.True(t, result.Created)
}

func TestImportShopifyOrder_MissingAddress(t *testing.T) {
	uc, _, _ := setupWebhookUC(t)
	order := decodeShopify(t)
	order.ShippingAddress = nil

	_, err := uc.ImportShopifyOrder(context.Background(), uuid.New(), order)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestShopifyOrderStatus(t *testing.T) {
	str := func(s string) *string { return &s }
	cancelledAt := time.Now()

	tests := []struct {
		name        string
		fulfillment *string
		cancelledAt *time.Time
		want        models.OrderStatus
	}{
		{name: "Null", want: models.OrderStatusPending},
		{name: "Empty", fulfillment: str(""), want: models.OrderStatusPending},
		{name: "Unfulfilled", fulfillment: str("unfulfilled"), want: models.OrderStatusPending},
		{name: "Partial", fulfillment: str("partial"), want: models.OrderStatusAssigned},
		{name: "Fulfilled", fulfillment: str("fulfilled"), want: models.OrderStatusDelivered},
		{name: "Restocked", fulfillment: str("restocked"), want: models.OrderStatusCancelled},
		{name: "Cancelled wins", fulfillment: str("fulfilled"), cancelledAt: &cancelledAt, want: models.OrderStatusCancelled},
		{name: "Unknown", fulfillment: str("scheduled"), want: models.OrderStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shopifyOrderStatus(&models.ShopifyOrder{FulfillmentStatus: tt.fulfillment, CancelledAt: tt.cancelledAt})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShopifyPaymentStatus(t *testing.T) {
	assert.Equal(t, models.PaymentStatusPaid, shopifyPaymentStatus("paid"))
	assert.Equal(t, models.PaymentStatusFailed, shopifyPaymentStatus("refunded"))
	assert.Equal(t, models.PaymentStatusFailed, shopifyPaymentStatus("voided"))
	assert.Equal(t, models.PaymentStatusPending, shopifyPaymentStatus("authorized"))
	assert.Equal(t, models.PaymentStatusPending, shopifyPaymentStatus(""))
}

func TestShopifyCustomer_NoPhone(t *testing.T) {
	order := decodeShopify(t)
	order.Customer.Phone = ""
	order.Phone = "n/a"

	assert.Nil(t, shopifyCustomer(order))
}
