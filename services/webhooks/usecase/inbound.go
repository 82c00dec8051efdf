package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// HandleEvent applies a partner event to the tenant's riders or orders
func (uc *WebhookUC) HandleEvent(ctx context.Context, companyID uuid.UUID, event *models.InboundEvent) (*models.InboundResult, error) {
	name := models.CanonicalInboundEvent(event.Event)
	if name == "" {
		return nil, apperror.Validation("unknown event: " + event.Event)
	}
	if len(event.Data) == 0 {
		return nil, apperror.Validation("data is required")
	}

	logger.InfoCtx(ctx, "Inbound webhook received",
		logger.String("company_id", companyID.String()),
		logger.String("event", name))

	switch name {
	case models.InboundRiderLocation:
		return uc.riderLocation(ctx, companyID, event.Data)
	case models.InboundRiderStatusUpdate:
		return uc.riderStatus(ctx, companyID, event.Data)
	case models.InboundOrderCreate:
		return uc.orderCreate(ctx, companyID, event.Data)
	default:
		return uc.orderStatus(ctx, companyID, event.Data)
	}
}

func (uc *WebhookUC) riderLocation(ctx context.Context, companyID uuid.UUID, raw json.RawMessage) (*models.InboundResult, error) {
	var data models.InboundRiderLocationData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, apperror.Validation("invalid rider location data")
	}

	rider, err := uc.resolveRider(ctx, companyID, data.RiderID, data.ExternalID)
	if err != nil {
		return nil, err
	}
	rider, err = uc.riderUC.UpdateLocation(ctx, companyID, rider.ID, &models.LocationUpdate{
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		BatteryLevel: data.BatteryLevel,
	})
	if err != nil {
		return nil, err
	}
	return &models.InboundResult{Event: models.InboundRiderLocation, Target: rider.Position()}, nil
}

func (uc *WebhookUC) riderStatus(ctx context.Context, companyID uuid.UUID, raw json.RawMessage) (*models.InboundResult, error) {
	var data models.InboundRiderStatusData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, apperror.Validation("invalid rider status data")
	}
	status := models.RiderStatus(strings.ToLower(strings.TrimSpace(data.Status)))
	if !status.IsValid() {
		return nil, apperror.Validation("invalid rider status")
	}

	rider, err := uc.resolveRider(ctx, companyID, data.RiderID, data.ExternalID)
	if err != nil {
		return nil, err
	}
	rider, err = uc.riderUC.SetStatus(ctx, companyID, rider.ID, status.Normalize())
	if err != nil {
		return nil, err
	}
	return &models.InboundResult{Event: models.InboundRiderStatusUpdate, Target: rider}, nil
}

// orderCreate ingests an order. With an external id the call is idempotent
// and a repeated delivery updates the same order.
func (uc *WebhookUC) orderCreate(ctx context.Context, companyID uuid.UUID, raw json.RawMessage) (*models.InboundResult, error) {
	var req models.CreateOrderRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, apperror.Validation("invalid order data")
	}

	if req.ExternalID != nil && strings.TrimSpace(*req.ExternalID) != "" {
		order, created, err := uc.orderUC.ImportOrder(ctx, companyID, &req, "")
		if err != nil {
			return nil, err
		}
		return &models.InboundResult{Event: models.InboundOrderCreate, Created: created, Target: order}, nil
	}

	order, err := uc.orderUC.CreateOrder(ctx, companyID, &req)
	if err != nil {
		return nil, err
	}
	return &models.InboundResult{Event: models.InboundOrderCreate, Created: true, Target: order}, nil
}

func (uc *WebhookUC) orderStatus(ctx context.Context, companyID uuid.UUID, raw json.RawMessage) (*models.InboundResult, error) {
	var data models.InboundOrderStatusData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, apperror.Validation("invalid order status data")
	}

	order, err := uc.orderUC.ApplyInboundStatus(ctx, companyID, &data)
	if err != nil {
		return nil, err
	}
	return &models.InboundResult{Event: models.InboundOrderStatusUpdate, Target: order}, nil
}

func (uc *WebhookUC) resolveRider(ctx context.Context, companyID uuid.UUID, riderID *uuid.UUID, externalID *string) (*models.Rider, error) {
	switch {
	case riderID != nil:
		return uc.riderUC.GetRider(ctx, companyID, *riderID)
	case externalID != nil && strings.TrimSpace(*externalID) != "":
		return uc.riderUC.GetRiderByExternalID(ctx, companyID, strings.TrimSpace(*externalID))
	default:
		return nil, apperror.Validation("rider_id or external_id is required")
	}
}
