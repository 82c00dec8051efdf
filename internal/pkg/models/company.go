package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Company is the tenant root. Every other tenant-scoped row references it.
type Company struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Email         string          `json:"email" db:"email"`
	PasswordHash  string          `json:"-" db:"password_hash"`
	APIKey        string          `json:"-" db:"api_key"`
	WebhookSecret string          `json:"-" db:"webhook_secret"`
	CompanyCode   string          `json:"company_code" db:"company_code"`
	Settings      CompanySettings `json:"settings" db:"settings"`
	Plan          string          `json:"plan" db:"plan"`
	IsActive      bool            `json:"is_active" db:"is_active"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// WebhookTarget returns the outbound webhook config of the company and
// whether both callback URL and secret are configured.
func (c *Company) WebhookTarget() (WebhookTarget, bool) {
	target := WebhookTarget{URL: c.Settings.CallbackURL, Secret: c.WebhookSecret}
	return target, target.URL != "" && target.Secret != ""
}

// CompanySummary is the public subset returned to riders and on login
type CompanySummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CompanyCode string    `json:"company_code"`
}

// Summary returns the public subset of the company
func (c *Company) Summary() CompanySummary {
	return CompanySummary{ID: c.ID, Name: c.Name, CompanyCode: c.CompanyCode}
}

// CompanySettings is stored as jsonb on the companies table
type CompanySettings struct {
	CallbackURL   string               `json:"callback_url,omitempty"`
	Features      map[string]bool      `json:"features,omitempty"`
	Map           MapSettings          `json:"map"`
	Notifications NotificationSettings `json:"notifications"`
}

// MapSettings holds the dashboard map defaults
type MapSettings struct {
	DefaultLatitude  float64 `json:"default_latitude"`
	DefaultLongitude float64 `json:"default_longitude"`
	DefaultZoom      int     `json:"default_zoom"`
	Style            string  `json:"style,omitempty"`
	ShowTraffic      bool    `json:"show_traffic"`
}

// NotificationSettings holds the tenant notification toggles
type NotificationSettings struct {
	Email        bool `json:"email"`
	SMS          bool `json:"sms"`
	Push         bool `json:"push"`
	OrderUpdates bool `json:"order_updates"`
	RiderUpdates bool `json:"rider_updates"`
}

// DefaultCompanySettings returns the settings a new company starts with
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		Features: map[string]bool{},
		Map: MapSettings{
			DefaultZoom: 12,
			Style:       "streets",
		},
		Notifications: NotificationSettings{
			Email:        true,
			OrderUpdates: true,
		},
	}
}

// Value implements driver.Valuer
func (s CompanySettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *CompanySettings) Scan(src interface{}) error {
	return scanJSON(src, s)
}

// SignupRequest is the body of POST /auth/signup
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Plan     string `json:"plan,omitempty"`
}

// CompanyLoginRequest is the body of POST /auth/login
type CompanyLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CompanyAuthResponse is returned by signup and login
type CompanyAuthResponse struct {
	Company       *Company `json:"company"`
	APIKey        string   `json:"api_key"`
	WebhookSecret string   `json:"webhook_secret,omitempty"`
}

// CompanyUpdate is the body of PATCH /v1/company
type CompanyUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Plan  *string `json:"plan,omitempty"`
}

// RegenerateKeyRequest is the body of POST /v1/company/regenerate-key
type RegenerateKeyRequest struct {
	RegenerateCode bool `json:"regenerate_code"`
}

// RegenerateKeyResponse carries the new credentials
type RegenerateKeyResponse struct {
	APIKey      string `json:"api_key"`
	CompanyCode string `json:"company_code"`
}

// SettingsUpdate is the body of PATCH /v1/settings
type SettingsUpdate struct {
	CallbackURL         *string         `json:"callback_url,omitempty"`
	Features            map[string]bool `json:"features,omitempty"`
	RotateWebhookSecret bool            `json:"rotate_webhook_secret,omitempty"`
}

// SettingsResponse is returned by the settings endpoints
type SettingsResponse struct {
	Settings      CompanySettings `json:"settings"`
	WebhookSecret string          `json:"webhook_secret"`
}
