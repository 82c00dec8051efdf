package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	"github.com/piresc/dispatch/services/orders/handler/http"
)

// Handler coordinates the order handlers
type Handler struct {
	orderHandler *http.OrderHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(orderHandler *http.OrderHandler) *Handler {
	return &Handler{
		orderHandler: orderHandler,
	}
}

// RegisterRoutes registers the tenant order routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/v1", mw.APIKey())

	orderGroup := v1.Group("/orders")
	orderGroup.GET("", h.orderHandler.ListOrders)
	orderGroup.POST("", h.orderHandler.CreateOrder)
	orderGroup.GET("/:id", h.orderHandler.GetOrder)
	orderGroup.PATCH("/:id", h.orderHandler.UpdateOrder)
	orderGroup.DELETE("/:id", h.orderHandler.CancelOrder)

	v1.GET("/analytics", h.orderHandler.Analytics)
}
