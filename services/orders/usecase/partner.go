package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/lifecycle"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// ImportOrder ingests a partner order keyed by its external id. A second
// delivery of the same order updates the existing row but never moves a
// terminal order. Returns the stored order and whether it was created.
// Partner imports do not publish outbound webhooks.
func (uc *OrderUC) ImportOrder(ctx context.Context, companyID uuid.UUID, req *models.CreateOrderRequest, status models.OrderStatus) (*models.Order, bool, error) {
	if req.ExternalID == nil || *req.ExternalID == "" {
		return nil, false, apperror.Validation("external_id is required")
	}

	order, err := uc.buildOrder(ctx, companyID, req)
	if err != nil {
		return nil, false, err
	}
	if status != "" {
		next, err := lifecycle.Parse(string(status))
		if err != nil {
			return nil, false, err
		}
		lifecycle.Apply(order, next, lifecycle.PathCompany, uc.now())
	}

	created, err := uc.orderRepo.UpsertByExternalID(ctx, order)
	if err != nil {
		return nil, false, err
	}

	logger.InfoCtx(ctx, "Partner order ingested",
		logger.String("order_id", order.ID.String()),
		logger.String("external_id", *order.ExternalID),
		logger.String("status", string(order.Status)),
		logger.Bool("created", created))
	return order, created, nil
}

// ApplyInboundStatus changes the status of an order identified by id or
// external id on behalf of a partner system. Dispatcher rules apply.
func (uc *OrderUC) ApplyInboundStatus(ctx context.Context, companyID uuid.UUID, req *models.InboundOrderStatusData) (*models.Order, error) {
	requested, err := lifecycle.Parse(req.Status)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	switch {
	case req.OrderID != nil:
		order, err = uc.orderRepo.GetOrder(ctx, companyID, *req.OrderID)
	case req.ExternalID != nil && *req.ExternalID != "":
		order, err = uc.orderRepo.GetOrderByExternalID(ctx, companyID, *req.ExternalID)
	default:
		return nil, apperror.Validation("order_id or external_id is required")
	}
	if err != nil {
		return nil, err
	}

	next, err := lifecycle.DispatcherTransition(order.Status, requested)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	lifecycle.Apply(order, next, lifecycle.PathCompany, now)
	order.Notes = lifecycle.AppendNote(order.Notes, actorWebhook, req.Note, now)
	order.UpdatedAt = now

	if err := uc.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
