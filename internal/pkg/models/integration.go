package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExternalIntegration configures a partner connector for a company
type ExternalIntegration struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	CompanyID     uuid.UUID  `json:"company_id" db:"company_id"`
	Type          string     `json:"type" db:"type"`
	Name          string     `json:"name" db:"name"`
	BaseURL       *string    `json:"base_url,omitempty" db:"base_url"`
	APIKey        *string    `json:"api_key,omitempty" db:"api_key"`
	APISecret     *string    `json:"api_secret,omitempty" db:"api_secret"`
	WebhookSecret *string    `json:"webhook_secret,omitempty" db:"webhook_secret"`
	SyncRiders    bool       `json:"sync_riders" db:"sync_riders"`
	SyncOrders    bool       `json:"sync_orders" db:"sync_orders"`
	SyncCustomers bool       `json:"sync_customers" db:"sync_customers"`
	IsActive      bool       `json:"is_active" db:"is_active"`
	LastSyncAt    *time.Time `json:"last_sync_at,omitempty" db:"last_sync_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// Masked returns a copy with every secret reduced to its last 4 characters
func (i ExternalIntegration) Masked() ExternalIntegration {
	i.APIKey = maskSecret(i.APIKey)
	i.APISecret = maskSecret(i.APISecret)
	i.WebhookSecret = maskSecret(i.WebhookSecret)
	return i
}

func maskSecret(s *string) *string {
	if s == nil || *s == "" {
		return s
	}
	v := *s
	if len(v) <= 4 {
		masked := strings.Repeat("*", len(v))
		return &masked
	}
	masked := "****" + v[len(v)-4:]
	return &masked
}

// IntegrationRequest is the body of integration create and update
type IntegrationRequest struct {
	Type          *string `json:"type,omitempty"`
	Name          *string `json:"name,omitempty"`
	BaseURL       *string `json:"base_url,omitempty"`
	APIKey        *string `json:"api_key,omitempty"`
	APISecret     *string `json:"api_secret,omitempty"`
	WebhookSecret *string `json:"webhook_secret,omitempty"`
	SyncRiders    *bool   `json:"sync_riders,omitempty"`
	SyncOrders    *bool   `json:"sync_orders,omitempty"`
	SyncCustomers *bool   `json:"sync_customers,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}
