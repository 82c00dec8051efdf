package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// GetProfile returns the authenticated rider
func (uc *AgentUC) GetProfile(ctx context.Context, identity models.AgentIdentity) (*models.Rider, error) {
	return uc.riderUC.GetRider(ctx, identity.CompanyID, identity.RiderID)
}

// UpdateProfile lets the rider change their own name, email, vehicle and
// availability. The phone is the login identifier and stays with the
// dispatcher.
func (uc *AgentUC) UpdateProfile(ctx context.Context, identity models.AgentIdentity, req *models.UpdateRiderRequest) (*models.Rider, error) {
	update := *req
	update.Phone = nil

	if update.Status != nil {
		status := models.RiderStatus(strings.ToLower(strings.TrimSpace(*update.Status)))
		switch status {
		case models.RiderStatusActive, models.RiderStatusBusy, models.RiderStatusBreak, models.RiderStatusOffline:
		default:
			return nil, apperror.Validation("status must be one of active, busy, break, offline")
		}
		s := string(status)
		update.Status = &s
	}

	rider, err := uc.riderUC.UpdateRider(ctx, identity.CompanyID, identity.RiderID, &update)
	if err != nil {
		return nil, err
	}

	details := models.JSONMap{}
	if update.Name != nil {
		details["name"] = *update.Name
	}
	if update.Email != nil {
		details["email"] = *update.Email
	}
	if update.VehicleType != nil {
		details["vehicle_type"] = *update.VehicleType
	}
	action := models.ActivityProfileUpdate
	if update.Status != nil {
		details["status"] = *update.Status
		if update.Name == nil && update.Email == nil && update.VehicleType == nil {
			action = models.ActivityStatusUpdate
		}
	}
	uc.logActivity(ctx, identity.RiderID, identity.CompanyID, action, details)

	return rider, nil
}

// GetLocation returns the rider's last reported position
func (uc *AgentUC) GetLocation(ctx context.Context, identity models.AgentIdentity) (*models.Position, error) {
	rider, err := uc.riderUC.GetRider(ctx, identity.CompanyID, identity.RiderID)
	if err != nil {
		return nil, err
	}
	position := rider.Position()
	if position == nil {
		return nil, apperror.NotFound("no location reported yet")
	}
	return position, nil
}

// UpdateLocation records a position report from the rider's device
func (uc *AgentUC) UpdateLocation(ctx context.Context, identity models.AgentIdentity, req *models.LocationUpdate) (*models.Rider, error) {
	rider, err := uc.riderUC.UpdateLocation(ctx, identity.CompanyID, identity.RiderID, req)
	if err != nil {
		return nil, err
	}

	details := models.JSONMap{
		"latitude":  *req.Latitude,
		"longitude": *req.Longitude,
	}
	if req.BatteryLevel != nil {
		details["battery_level"] = *req.BatteryLevel
	}
	uc.logActivity(ctx, identity.RiderID, identity.CompanyID, models.ActivityLocationUpdate, details)

	return rider, nil
}

// ListOrders returns the rider's orders
func (uc *AgentUC) ListOrders(ctx context.Context, identity models.AgentIdentity, status string) ([]*models.Order, error) {
	return uc.orderUC.ListRiderOrders(ctx, identity, status)
}

// GetOrder returns one of the rider's orders
func (uc *AgentUC) GetOrder(ctx context.Context, identity models.AgentIdentity, orderID uuid.UUID) (*models.Order, error) {
	return uc.orderUC.GetRiderOrder(ctx, identity, orderID)
}

// UpdateOrder applies a rider status change or note to one of the rider's orders
func (uc *AgentUC) UpdateOrder(ctx context.Context, identity models.AgentIdentity, orderID uuid.UUID, req *models.AgentOrderUpdate) (*models.Order, error) {
	order, err := uc.orderUC.UpdateRiderOrder(ctx, identity, orderID, req)
	if err != nil {
		return nil, err
	}

	details := models.JSONMap{
		"order_id": order.ID.String(),
		"status":   string(order.Status),
	}
	if note := strings.TrimSpace(req.Note); note != "" {
		details["note"] = note
	}
	uc.logActivity(ctx, identity.RiderID, identity.CompanyID, models.ActivityOrderUpdate, details)

	return order, nil
}
