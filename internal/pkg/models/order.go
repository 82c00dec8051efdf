package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAssigned  OrderStatus = "assigned"
	OrderStatusPickedUp  OrderStatus = "picked_up"
	OrderStatusInTransit OrderStatus = "in_transit"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// IsValid reports whether s is a known payment status
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// Order is a delivery order of a company
type Order struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	CompanyID       uuid.UUID       `json:"company_id" db:"company_id"`
	CustomerID      *uuid.UUID      `json:"customer_id,omitempty" db:"customer_id"`
	RiderID         *uuid.UUID      `json:"rider_id,omitempty" db:"rider_id"`
	ExternalID      *string         `json:"external_id,omitempty" db:"external_id"`
	OrderNumber     string          `json:"order_number" db:"order_number"`
	PickupAddress   string          `json:"pickup_address" db:"pickup_address"`
	DeliveryAddress string          `json:"delivery_address" db:"delivery_address"`
	Items           LineItems       `json:"items" db:"items"`
	Subtotal        decimal.Decimal `json:"subtotal" db:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee" db:"delivery_fee"`
	Total           decimal.Decimal `json:"total" db:"total"`
	Currency        string          `json:"currency" db:"currency"`
	Status          OrderStatus     `json:"status" db:"status"`
	PaymentStatus   PaymentStatus   `json:"payment_status" db:"payment_status"`
	PaymentMethod   *string         `json:"payment_method,omitempty" db:"payment_method"`
	Notes           string          `json:"notes" db:"notes"`
	ScheduledAt     *time.Time      `json:"scheduled_at,omitempty" db:"scheduled_at"`
	PickedUpAt      *time.Time      `json:"picked_up_at,omitempty" db:"picked_up_at"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty" db:"delivered_at"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// LineItem is one product line of an order
type LineItem struct {
	Name      string          `json:"name"`
	SKU       string          `json:"sku,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineItems is stored as jsonb on the orders table
type LineItems []LineItem

// Value implements driver.Valuer
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *LineItems) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// Subtotal sums quantity times unit price over all lines
func (l LineItems) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// OrderFilter narrows order listings
type OrderFilter struct {
	Status  OrderStatus
	RiderID *uuid.UUID
	Limit   int
	Offset  int
}

// CreateOrderRequest is the body of POST /v1/orders
type CreateOrderRequest struct {
	ExternalID      *string          `json:"external_id,omitempty"`
	OrderNumber     string           `json:"order_number,omitempty"`
	Customer        *CustomerInput   `json:"customer,omitempty"`
	RiderID         *uuid.UUID       `json:"rider_id,omitempty"`
	PickupAddress   string           `json:"pickup_address"`
	DeliveryAddress string           `json:"delivery_address"`
	Items           LineItems        `json:"items,omitempty"`
	DeliveryFee     *decimal.Decimal `json:"delivery_fee,omitempty"`
	Total           *decimal.Decimal `json:"total,omitempty"`
	Currency        string           `json:"currency,omitempty"`
	PaymentMethod   *string          `json:"payment_method,omitempty"`
	PaymentStatus   string           `json:"payment_status,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	ScheduledAt     *time.Time       `json:"scheduled_at,omitempty"`
}

// UpdateOrderRequest is the body of PATCH /v1/orders/:id
type UpdateOrderRequest struct {
	Status          *string    `json:"status,omitempty"`
	RiderID         *uuid.UUID `json:"rider_id,omitempty"`
	PaymentStatus   *string    `json:"payment_status,omitempty"`
	PickupAddress   *string    `json:"pickup_address,omitempty"`
	DeliveryAddress *string    `json:"delivery_address,omitempty"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	Note            string     `json:"note,omitempty"`
}

// AgentOrderUpdate is the body of PATCH /agent/orders/:id
type AgentOrderUpdate struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// Analytics summarises a company's orders and riders
type Analytics struct {
	OrdersByStatus   map[OrderStatus]int `json:"orders_by_status"`
	TotalOrders      int                 `json:"total_orders"`
	DeliveredToday   int                 `json:"delivered_today"`
	DeliveredRevenue decimal.Decimal     `json:"delivered_revenue"`
	RidersByStatus   map[RiderStatus]int `json:"riders_by_status"`
}

// StatusCount is one row of a grouped count query
type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}
