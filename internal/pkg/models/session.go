package models

import (
	"time"

	"github.com/google/uuid"
)

// RiderCredential holds the PIN and lockout state of a rider
type RiderCredential struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	RiderID       uuid.UUID  `json:"rider_id" db:"rider_id"`
	PinCode       string     `json:"-" db:"pin_code"`
	LoginAttempts int        `json:"login_attempts" db:"login_attempts"`
	LockedUntil   *time.Time `json:"locked_until,omitempty" db:"locked_until"`
	LastLogin     *time.Time `json:"last_login,omitempty" db:"last_login"`
	IsActive      bool       `json:"is_active" db:"is_active"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// IsLocked reports whether the credential is inside its lockout window
func (c *RiderCredential) IsLocked(now time.Time) bool {
	return c.LockedUntil != nil && c.LockedUntil.After(now)
}

// AgentSession is one device login of a rider
type AgentSession struct {
	ID           uuid.UUID `json:"id" db:"id"`
	SessionToken string    `json:"-" db:"session_token"`
	RiderID      uuid.UUID `json:"rider_id" db:"rider_id"`
	CompanyID    uuid.UUID `json:"company_id" db:"company_id"`
	DeviceID     string    `json:"device_id" db:"device_id"`
	DeviceType   *string   `json:"device_type,omitempty" db:"device_type"`
	DeviceModel  *string   `json:"device_model,omitempty" db:"device_model"`
	AppVersion   *string   `json:"app_version,omitempty" db:"app_version"`
	PushToken    *string   `json:"-" db:"push_token"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	ExpiresAt    time.Time `json:"expires_at" db:"expires_at"`
	LastActive   time.Time `json:"last_active" db:"last_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// IsExpired reports whether the session is past its expiry
func (s *AgentSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// AgentIdentity is what rider-scoped handlers receive after session validation
type AgentIdentity struct {
	SessionID uuid.UUID `json:"session_id"`
	RiderID   uuid.UUID `json:"rider_id"`
	CompanyID uuid.UUID `json:"company_id"`
	DeviceID  string    `json:"device_id"`
}

// AgentDevice is the device registry row keyed by rider and device
type AgentDevice struct {
	RiderID     uuid.UUID `json:"rider_id" db:"rider_id"`
	DeviceID    string    `json:"device_id" db:"device_id"`
	DeviceType  *string   `json:"device_type,omitempty" db:"device_type"`
	DeviceModel *string   `json:"device_model,omitempty" db:"device_model"`
	AppVersion  *string   `json:"app_version,omitempty" db:"app_version"`
	PushToken   *string   `json:"-" db:"push_token"`
	LastSeen    time.Time `json:"last_seen" db:"last_seen"`
}

// AgentLoginRequest is the body of POST /agent/auth/login
type AgentLoginRequest struct {
	CompanyCode string  `json:"company_code"`
	Phone       string  `json:"phone"`
	PinCode     string  `json:"pin_code"`
	DeviceID    string  `json:"device_id"`
	DeviceType  *string `json:"device_type,omitempty"`
	DeviceModel *string `json:"device_model,omitempty"`
	AppVersion  *string `json:"app_version,omitempty"`
	PushToken   *string `json:"push_token,omitempty"`
}

// AgentLoginResponse is returned on a successful rider login
type AgentLoginResponse struct {
	SessionToken string         `json:"session_token"`
	ExpiresAt    time.Time      `json:"expires_at"`
	Rider        RiderSummary   `json:"rider"`
	Company      CompanySummary `json:"company"`
}

// SetPinRequest is the body of POST /v1/agents/:id/sessions
type SetPinRequest struct {
	PinCode string `json:"pin_code"`
}

// Activity actions
const (
	ActivityLogin          = "login"
	ActivityLogout         = "logout"
	ActivityLocationUpdate = "location_update"
	ActivityStatusUpdate   = "status_update"
	ActivityOrderUpdate    = "order_update"
	ActivityProfileUpdate  = "profile_update"
)

// ActivityLog is an audit entry of a rider action
type ActivityLog struct {
	ID        uuid.UUID `json:"id" db:"id"`
	RiderID   uuid.UUID `json:"rider_id" db:"rider_id"`
	CompanyID uuid.UUID `json:"company_id" db:"company_id"`
	Action    string    `json:"action" db:"action"`
	Details   JSONMap   `json:"details" db:"details"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
