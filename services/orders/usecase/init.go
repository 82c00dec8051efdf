package usecase

import (
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/orders"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
	defaultCurrency  = "IDR"

	actorCompany = "company"
	actorRider   = "rider"
	actorWebhook = "webhook"
)

// OrderUC implements orders.OrderUC
type OrderUC struct {
	orderRepo orders.OrderRepo
	orderGW   orders.OrderGW
	cfg       *models.Config
	now       func() time.Time
}

// NewOrderUC creates a new order usecase instance
func NewOrderUC(
	orderRepo orders.OrderRepo,
	orderGW orders.OrderGW,
	cfg *models.Config,
) *OrderUC {
	return &OrderUC{
		orderRepo: orderRepo,
		orderGW:   orderGW,
		cfg:       cfg,
		now:       models.Now,
	}
}
