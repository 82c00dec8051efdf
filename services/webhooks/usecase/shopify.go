package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/shopspring/decimal"
)

// ImportShopifyOrder maps a Shopify order webhook onto an order keyed by
// "shopify_<id>". Repeated deliveries update the same order.
func (uc *WebhookUC) ImportShopifyOrder(ctx context.Context, companyID uuid.UUID, order *models.ShopifyOrder) (*models.InboundResult, error) {
	if order.ID == 0 {
		return nil, apperror.Validation("shopify order id is required")
	}

	req, err := mapShopifyOrder(order)
	if err != nil {
		return nil, err
	}

	imported, created, err := uc.orderUC.ImportOrder(ctx, companyID, req, shopifyOrderStatus(order))
	if err != nil {
		return nil, err
	}
	return &models.InboundResult{Event: "shopify.order", Created: created, Target: imported}, nil
}

func mapShopifyOrder(order *models.ShopifyOrder) (*models.CreateOrderRequest, error) {
	address := shopifyAddress(order.ShippingAddress)
	if address == "" {
		return nil, apperror.Validation("shipping address is required")
	}

	externalID := constants.ShopifyIDPrefix + strconv.FormatInt(order.ID, 10)
	items := make(models.LineItems, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		items = append(items, models.LineItem{
			Name:      item.Title,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		})
	}

	fee := decimal.Zero
	for _, line := range order.ShippingLines {
		fee = fee.Add(line.Price)
	}
	total := order.TotalPrice
	method := "shopify"

	req := &models.CreateOrderRequest{
		ExternalID:      &externalID,
		DeliveryAddress: address,
		Items:           items,
		DeliveryFee:     &fee,
		Total:           &total,
		Currency:        order.Currency,
		PaymentMethod:   &method,
		PaymentStatus:   string(shopifyPaymentStatus(order.FinancialStatus)),
		Notes:           strings.TrimSpace(order.Note),
		Customer:        shopifyCustomer(order),
	}
	return req, nil
}

// shopifyOrderStatus maps fulfillment state. A cancelled order wins over
// any fulfillment status.
func shopifyOrderStatus(order *models.ShopifyOrder) models.OrderStatus {
	if order.CancelledAt != nil {
		return models.OrderStatusCancelled
	}
	if order.FulfillmentStatus == nil {
		return models.OrderStatusPending
	}
	switch strings.ToLower(*order.FulfillmentStatus) {
	case "partial":
		return models.OrderStatusAssigned
	case "fulfilled":
		return models.OrderStatusDelivered
	case "restocked":
		return models.OrderStatusCancelled
	default:
		return models.OrderStatusPending
	}
}

func shopifyPaymentStatus(financial string) models.PaymentStatus {
	switch strings.ToLower(financial) {
	case "paid":
		return models.PaymentStatusPaid
	case "refunded", "voided":
		return models.PaymentStatusFailed
	default:
		return models.PaymentStatusPending
	}
}

func shopifyAddress(addr *models.ShopifyAddress) string {
	if addr == nil {
		return ""
	}
	parts := make([]string, 0, 6)
	for _, p := range []string{addr.Address1, addr.Address2, addr.City, addr.Province, addr.Zip, addr.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// shopifyCustomer picks the first usable phone from the customer, the
// shipping address and the order. Orders without one carry no customer.
func shopifyCustomer(order *models.ShopifyOrder) *models.CustomerInput {
	var name, email string
	phones := []string{order.Phone}
	if order.ShippingAddress != nil {
		name = order.ShippingAddress.Name
		phones = append([]string{order.ShippingAddress.Phone}, phones...)
	}
	if c := order.Customer; c != nil {
		if full := strings.TrimSpace(c.FirstName + " " + c.LastName); full != "" {
			name = full
		}
		email = c.Email
		phones = append([]string{c.Phone}, phones...)
	}
	if email == "" {
		email = order.Email
	}

	for _, phone := range phones {
		if utils.IsValidPhoneNumber(phone) {
			input := &models.CustomerInput{Name: strings.TrimSpace(name), Phone: phone}
			if email = strings.TrimSpace(email); email != "" {
				input.Email = &email
			}
			if address := shopifyAddress(order.ShippingAddress); address != "" {
				input.Address = &address
			}
			return input
		}
	}
	return nil
}
