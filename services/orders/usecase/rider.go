package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/lifecycle"
	"github.com/piresc/dispatch/internal/pkg/models"
)

var riderActiveStatuses = []models.OrderStatus{
	models.OrderStatusAssigned,
	models.OrderStatusPickedUp,
	models.OrderStatusInTransit,
}

// ListRiderOrders returns the orders of the rider. Without a status filter
// only orders still in progress are returned.
func (uc *OrderUC) ListRiderOrders(ctx context.Context, identity models.AgentIdentity, status string) ([]*models.Order, error) {
	statuses := riderActiveStatuses
	if status != "" {
		parsed, err := lifecycle.Parse(status)
		if err != nil {
			return nil, err
		}
		statuses = []models.OrderStatus{parsed}
	}
	return uc.orderRepo.ListRiderOrders(ctx, identity.CompanyID, identity.RiderID, statuses)
}

// GetRiderOrder returns an order only when it belongs to the rider and the
// rider's company
func (uc *OrderUC) GetRiderOrder(ctx context.Context, identity models.AgentIdentity, orderID uuid.UUID) (*models.Order, error) {
	return uc.orderRepo.GetRiderOrder(ctx, identity.CompanyID, identity.RiderID, orderID)
}

// UpdateRiderOrder applies a rider status change and note. The order must
// belong to the rider and its company.
func (uc *OrderUC) UpdateRiderOrder(ctx context.Context, identity models.AgentIdentity, orderID uuid.UUID, req *models.AgentOrderUpdate) (*models.Order, error) {
	if strings.TrimSpace(req.Status) == "" && strings.TrimSpace(req.Note) == "" {
		return nil, apperror.Validation("status or note is required")
	}

	order, err := uc.orderRepo.GetRiderOrder(ctx, identity.CompanyID, identity.RiderID, orderID)
	if err != nil {
		return nil, err
	}

	next := order.Status
	if strings.TrimSpace(req.Status) != "" {
		requested := models.OrderStatus(strings.ToLower(strings.TrimSpace(req.Status)))
		if next, err = lifecycle.RiderTransition(order.Status, requested); err != nil {
			return nil, err
		}
	}

	now := uc.now()
	lifecycle.Apply(order, next, lifecycle.PathRider, now)
	order.Notes = lifecycle.AppendNote(order.Notes, actorRider, req.Note, now)
	order.UpdatedAt = now

	if err := uc.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
