package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WebhookTarget is where and how an outbound webhook is delivered
type WebhookTarget struct {
	URL    string `json:"url"`
	Secret string `json:"secret"`
}

// WebhookEnvelope is the JSON body of every outbound webhook
type WebhookEnvelope struct {
	Event     string      `json:"event"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// WebhookTask is a queued outbound delivery
type WebhookTask struct {
	ID         uuid.UUID       `json:"id"`
	CompanyID  uuid.UUID       `json:"company_id"`
	Target     WebhookTarget   `json:"target"`
	Event      string          `json:"event"`
	Data       json.RawMessage `json:"data"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
	Attempts   int             `json:"attempts"`
	LastError  string          `json:"last_error,omitempty"`
}

// WebhookResult is the outcome of one delivery attempt
type WebhookResult struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Inbound generic webhook event names
const (
	InboundRiderLocation     = "rider.location_update"
	InboundOrderCreate       = "order.create"
	InboundOrderStatusUpdate = "order.status_update"
	InboundRiderStatusUpdate = "rider.status_update"
)

var inboundAliases = map[string]string{
	InboundRiderLocation:     InboundRiderLocation,
	InboundOrderCreate:       InboundOrderCreate,
	InboundOrderStatusUpdate: InboundOrderStatusUpdate,
	InboundRiderStatusUpdate: InboundRiderStatusUpdate,
	"location_update":        InboundRiderLocation,
	"order_created":          InboundOrderCreate,
	"order_status_update":    InboundOrderStatusUpdate,
	"rider_status_update":    InboundRiderStatusUpdate,
}

// CanonicalInboundEvent folds the legacy underscore names onto the canonical
// events. Unknown events yield "".
func CanonicalInboundEvent(name string) string {
	return inboundAliases[strings.ToLower(strings.TrimSpace(name))]
}

// InboundEvent is the body of POST /webhooks
type InboundEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// InboundRiderLocationData locates a rider by id or external id
type InboundRiderLocationData struct {
	RiderID      *uuid.UUID `json:"rider_id,omitempty"`
	ExternalID   *string    `json:"external_id,omitempty"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	BatteryLevel *int       `json:"battery_level,omitempty"`
}

// InboundRiderStatusData changes a rider status
type InboundRiderStatusData struct {
	RiderID    *uuid.UUID `json:"rider_id,omitempty"`
	ExternalID *string    `json:"external_id,omitempty"`
	Status     string     `json:"status"`
}

// InboundOrderStatusData changes an order status
type InboundOrderStatusData struct {
	OrderID    *uuid.UUID `json:"order_id,omitempty"`
	ExternalID *string    `json:"external_id,omitempty"`
	Status     string     `json:"status"`
	Note       string     `json:"note,omitempty"`
}

// InboundResult is returned by the inbound receivers
type InboundResult struct {
	Event   string      `json:"event"`
	Created bool        `json:"created"`
	Target  interface{} `json:"target,omitempty"`
}

// ShopifyOrder is the subset of a Shopify order webhook payload that is mapped
type ShopifyOrder struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	OrderNumber       int64             `json:"order_number"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Currency          string            `json:"currency"`
	SubtotalPrice     decimal.Decimal   `json:"subtotal_price"`
	TotalPrice        decimal.Decimal   `json:"total_price"`
	FinancialStatus   string            `json:"financial_status"`
	FulfillmentStatus *string           `json:"fulfillment_status"`
	CancelledAt       *time.Time        `json:"cancelled_at"`
	Note              string            `json:"note"`
	Customer          *ShopifyCustomer  `json:"customer"`
	ShippingAddress   *ShopifyAddress   `json:"shipping_address"`
	LineItems         []ShopifyItem     `json:"line_items"`
	ShippingLines     []ShopifyShipping `json:"shipping_lines"`
}

// ShopifyCustomer is the customer block of a Shopify order
type ShopifyCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ShopifyAddress is a Shopify postal address
type ShopifyAddress struct {
	Name     string `json:"name"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	Province string `json:"province"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// ShopifyItem is a Shopify line item
type ShopifyItem struct {
	Title    string          `json:"title"`
	SKU      string          `json:"sku"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ShopifyShipping is a Shopify shipping line
type ShopifyShipping struct {
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}
