package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/lifecycle"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/shopspring/decimal"
)

// ListOrders returns the orders of the company
func (uc *OrderUC) ListOrders(ctx context.Context, companyID uuid.UUID, filter models.OrderFilter) ([]*models.Order, error) {
	if filter.Status != "" {
		status, err := lifecycle.Parse(string(filter.Status))
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultListLimit
	case filter.Limit > maxListLimit:
		filter.Limit = maxListLimit
	}
	return uc.orderRepo.ListOrders(ctx, companyID, filter)
}

// GetOrder returns an order of the company
func (uc *OrderUC) GetOrder(ctx context.Context, companyID, orderID uuid.UUID) (*models.Order, error) {
	return uc.orderRepo.GetOrder(ctx, companyID, orderID)
}

// CreateOrder creates an order. An order created with a rider starts as
// assigned, otherwise pending. The matching webhook event is published.
func (uc *OrderUC) CreateOrder(ctx context.Context, companyID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error) {
	order, err := uc.buildOrder(ctx, companyID, req)
	if err != nil {
		return nil, err
	}
	if err := uc.orderRepo.CreateOrder(ctx, order); err != nil {
		if apperror.Is(err, apperror.KindConflict) {
			return nil, apperror.Conflict("an order with this external_id already exists")
		}
		return nil, err
	}

	logger.InfoCtx(ctx, "Order created",
		logger.String("order_id", order.ID.String()),
		logger.String("order_number", order.OrderNumber),
		logger.String("status", string(order.Status)))

	uc.notify(ctx, companyID, order)
	return order, nil
}

// UpdateOrder applies a dispatcher update. Any known status may be set
// except leaving a terminal one. Assigning a rider to a pending order
// without an explicit status moves it to assigned.
func (uc *OrderUC) UpdateOrder(ctx context.Context, companyID, orderID uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, error) {
	order, err := uc.orderRepo.GetOrder(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}

	next := order.Status
	if req.Status != nil {
		requested, err := lifecycle.Parse(*req.Status)
		if err != nil {
			return nil, err
		}
		if next, err = lifecycle.DispatcherTransition(order.Status, requested); err != nil {
			return nil, err
		}
	}
	if req.RiderID != nil {
		if err := uc.checkRider(ctx, companyID, *req.RiderID); err != nil {
			return nil, err
		}
		order.RiderID = req.RiderID
		if req.Status == nil {
			next = lifecycle.StatusOnAssign(order.Status)
		}
	}
	if req.PaymentStatus != nil {
		payment := models.PaymentStatus(strings.ToLower(*req.PaymentStatus))
		if !payment.IsValid() {
			return nil, apperror.Validation("invalid payment status")
		}
		order.PaymentStatus = payment
	}
	if req.PickupAddress != nil {
		order.PickupAddress = strings.TrimSpace(*req.PickupAddress)
	}
	if req.DeliveryAddress != nil {
		address := strings.TrimSpace(*req.DeliveryAddress)
		if address == "" {
			return nil, apperror.Validation("delivery_address cannot be empty")
		}
		order.DeliveryAddress = address
	}
	if req.ScheduledAt != nil {
		order.ScheduledAt = req.ScheduledAt
	}

	now := uc.now()
	changed := lifecycle.Apply(order, next, lifecycle.PathCompany, now)
	order.Notes = lifecycle.AppendNote(order.Notes, actorCompany, req.Note, now)
	order.UpdatedAt = now

	if err := uc.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	if changed {
		uc.notify(ctx, companyID, order)
	}
	return order, nil
}

// CancelOrder cancels a non-terminal order. The row is kept.
func (uc *OrderUC) CancelOrder(ctx context.Context, companyID, orderID uuid.UUID) (*models.Order, error) {
	order, err := uc.orderRepo.GetOrder(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}
	next, err := lifecycle.Cancel(order.Status)
	if err != nil {
		return nil, err
	}

	lifecycle.Apply(order, next, lifecycle.PathCompany, uc.now())
	if err := uc.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	uc.notify(ctx, companyID, order)
	return order, nil
}

// Analytics summarises the orders and riders of the company
func (uc *OrderUC) Analytics(ctx context.Context, companyID uuid.UUID) (*models.Analytics, error) {
	now := uc.now()
	startOfDay := now.Truncate(24 * time.Hour)
	return uc.orderRepo.GetAnalytics(ctx, companyID, startOfDay)
}

func (uc *OrderUC) buildOrder(ctx context.Context, companyID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error) {
	delivery := strings.TrimSpace(req.DeliveryAddress)
	if delivery == "" {
		return nil, apperror.Validation("delivery_address is required")
	}
	for i, item := range req.Items {
		if strings.TrimSpace(item.Name) == "" || item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return nil, apperror.Validation(fmt.Sprintf("item %d needs a name, a positive quantity and a non-negative price", i+1))
		}
	}

	now := uc.now()
	order := &models.Order{
		ID:              uuid.New(),
		CompanyID:       companyID,
		ExternalID:      database.NullIfEmpty(req.ExternalID),
		OrderNumber:     strings.TrimSpace(req.OrderNumber),
		PickupAddress:   strings.TrimSpace(req.PickupAddress),
		DeliveryAddress: delivery,
		Items:           req.Items,
		Currency:        strings.ToUpper(strings.TrimSpace(req.Currency)),
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		PaymentMethod:   database.NullIfEmpty(req.PaymentMethod),
		ScheduledAt:     req.ScheduledAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if order.Items == nil {
		order.Items = models.LineItems{}
	}
	if order.Currency == "" {
		order.Currency = defaultCurrency
	}
	if order.OrderNumber == "" {
		number, err := generateOrderNumber(now)
		if err != nil {
			return nil, err
		}
		order.OrderNumber = number
	}
	if req.PaymentStatus != "" {
		order.PaymentStatus = models.PaymentStatus(strings.ToLower(req.PaymentStatus))
		if !order.PaymentStatus.IsValid() {
			return nil, apperror.Validation("invalid payment status")
		}
	}

	order.Subtotal = order.Items.Subtotal()
	order.DeliveryFee = decimal.Zero
	if req.DeliveryFee != nil {
		order.DeliveryFee = *req.DeliveryFee
	}
	order.Total = order.Subtotal.Add(order.DeliveryFee)
	if req.Total != nil {
		order.Total = *req.Total
	}
	if order.DeliveryFee.IsNegative() || order.Total.IsNegative() {
		return nil, apperror.Validation("amounts cannot be negative")
	}
	order.Notes = lifecycle.AppendNote("", actorCompany, req.Notes, now)

	if req.RiderID != nil {
		if err := uc.checkRider(ctx, companyID, *req.RiderID); err != nil {
			return nil, err
		}
		order.RiderID = req.RiderID
		order.Status = lifecycle.StatusOnAssign(order.Status)
	}

	if req.Customer != nil {
		customer, err := uc.findOrCreateCustomer(ctx, companyID, req.Customer, now)
		if err != nil {
			return nil, err
		}
		order.CustomerID = &customer.ID
	}
	return order, nil
}

func (uc *OrderUC) findOrCreateCustomer(ctx context.Context, companyID uuid.UUID, input *models.CustomerInput, now time.Time) (*models.Customer, error) {
	if !utils.IsValidPhoneNumber(input.Phone) {
		return nil, apperror.Validation("customer phone is invalid")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = utils.NormalizePhone(input.Phone)
	}
	return uc.orderRepo.FindOrCreateCustomer(ctx, &models.Customer{
		ID:        uuid.New(),
		CompanyID: companyID,
		Name:      name,
		Phone:     utils.NormalizePhone(input.Phone),
		Email:     database.NullIfEmpty(input.Email),
		Address:   database.NullIfEmpty(input.Address),
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (uc *OrderUC) checkRider(ctx context.Context, companyID, riderID uuid.UUID) error {
	exists, err := uc.orderRepo.RiderExists(ctx, companyID, riderID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("rider not found")
	}
	return nil
}

func generateOrderNumber(now time.Time) (string, error) {
	suffix, err := utils.GenerateRandomHex(3)
	if err != nil {
		return "", apperror.Internal("failed to generate order number", err)
	}
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), strings.ToUpper(suffix)), nil
}

// notify publishes the event of the current order status when the company
// has a webhook configured. Failures are logged only.
func (uc *OrderUC) notify(ctx context.Context, companyID uuid.UUID, order *models.Order) {
	target, err := uc.orderRepo.GetWebhookTarget(ctx, companyID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to resolve webhook target",
			logger.String("company_id", companyID.String()),
			logger.Err(err))
		return
	}
	if target.URL == "" || target.Secret == "" {
		return
	}

	event := lifecycle.EventFor(order.Status)
	if err := uc.orderGW.PublishOrderEvent(ctx, companyID, target, event, order); err != nil {
		logger.WarnCtx(ctx, "Failed to publish order webhook",
			logger.String("order_id", order.ID.String()),
			logger.String("event", event),
			logger.Err(err))
	}
}
