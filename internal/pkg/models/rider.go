package models

import (
	"time"

	"github.com/google/uuid"
)

// RiderStatus represents the availability of a rider
type RiderStatus string

const (
	RiderStatusActive  RiderStatus = "active"
	RiderStatusBusy    RiderStatus = "busy"
	RiderStatusBreak   RiderStatus = "break"
	RiderStatusOffline RiderStatus = "offline"
	// RiderStatusOnline is the dashboard-side alias of active
	RiderStatusOnline RiderStatus = "online"
)

// IsValid reports whether s is a status a rider or dispatcher may set
func (s RiderStatus) IsValid() bool {
	switch s {
	case RiderStatusActive, RiderStatusBusy, RiderStatusBreak, RiderStatusOffline, RiderStatusOnline:
		return true
	}
	return false
}

// Normalize folds the dashboard alias onto the stored vocabulary
func (s RiderStatus) Normalize() RiderStatus {
	if s == RiderStatusOnline {
		return RiderStatusActive
	}
	return s
}

// Rider represents a delivery courier belonging to one company
type Rider struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	CompanyID    uuid.UUID   `json:"company_id" db:"company_id"`
	Name         string      `json:"name" db:"name"`
	Phone        string      `json:"phone" db:"phone"`
	Email        *string     `json:"email,omitempty" db:"email"`
	VehicleType  *string     `json:"vehicle_type,omitempty" db:"vehicle_type"`
	Status       RiderStatus `json:"status" db:"status"`
	Latitude     *float64    `json:"latitude,omitempty" db:"latitude"`
	Longitude    *float64    `json:"longitude,omitempty" db:"longitude"`
	Geohash      *string     `json:"geohash,omitempty" db:"geohash"`
	BatteryLevel *int        `json:"battery_level,omitempty" db:"battery_level"`
	LastSeen     *time.Time  `json:"last_seen,omitempty" db:"last_seen"`
	ExternalID   *string     `json:"external_id,omitempty" db:"external_id"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// RiderSummary is the subset of a rider returned on agent login
type RiderSummary struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	VehicleType *string     `json:"vehicle_type,omitempty"`
	Status      RiderStatus `json:"status"`
}

// Summary returns the rider subset exposed to the agent client
func (r *Rider) Summary() RiderSummary {
	return RiderSummary{
		ID:          r.ID,
		Name:        r.Name,
		Phone:       r.Phone,
		VehicleType: r.VehicleType,
		Status:      r.Status,
	}
}

// RiderFilter narrows rider listings
type RiderFilter struct {
	Status RiderStatus
	Limit  int
	Offset int
}

// CreateRiderRequest is the body of POST /v1/riders and one row of an import
type CreateRiderRequest struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email,omitempty"`
	VehicleType *string `json:"vehicle_type,omitempty"`
	ExternalID  *string `json:"external_id,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// UpdateRiderRequest is the body of PATCH /v1/riders/:id and PATCH /agent/profile
type UpdateRiderRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	VehicleType *string `json:"vehicle_type,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// LocationUpdate is a position report for a rider
type LocationUpdate struct {
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	BatteryLevel *int       `json:"battery_level,omitempty"`
	Accuracy     *float64   `json:"accuracy,omitempty"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
}

// Position is a resolved rider location
type Position struct {
	RiderID   uuid.UUID `json:"rider_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Geohash   string    `json:"geohash,omitempty"`
	Distance  float64   `json:"distance_km,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ImportResult reports the outcome of a batch rider import
type ImportResult struct {
	Created int           `json:"created"`
	Skipped int           `json:"skipped"`
	Errors  []ImportError `json:"errors,omitempty"`
	Riders  []*Rider      `json:"riders,omitempty"`
}

// ImportError describes a rejected import row
type ImportError struct {
	Row     int    `json:"row"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// SyncResult reports the outcome of a partner rider sync
type SyncResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// ActiveRoster is the live rider roster of GET /v1/agents/active
type ActiveRoster struct {
	Riders []*Rider     `json:"riders"`
	Counts RosterCounts `json:"counts"`
}

// RosterCounts aggregates the roster
type RosterCounts struct {
	Total  int `json:"total"`
	Online int `json:"online"`
	Active int `json:"active"`
	Busy   int `json:"busy"`
}

// Position returns the last known position of the rider, or nil when the
// rider never reported one.
func (r *Rider) Position() *Position {
	if r.Latitude == nil || r.Longitude == nil {
		return nil
	}
	p := &Position{
		RiderID:   r.ID,
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
	}
	if r.Geohash != nil {
		p.Geohash = *r.Geohash
	}
	if r.LastSeen != nil {
		p.UpdatedAt = *r.LastSeen
	}
	return p
}

// RiderBatchRequest is the body of the import and sync endpoints
type RiderBatchRequest struct {
	Riders []CreateRiderRequest `json:"riders"`
}
