package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/dispatch/internal/pkg/context"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/orders"
)

// OrderHandler handles tenant order management requests
type OrderHandler struct {
	orderUC orders.OrderUC
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUC orders.OrderUC) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
	}
}

// ListOrders returns the orders of the tenant
func (h *OrderHandler) ListOrders(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	limit, err := utils.QueryInt(c, "limit", 0)
	if err != nil {
		return utils.HandleError(c, err, "Invalid limit")
	}
	offset, err := utils.QueryInt(c, "offset", 0)
	if err != nil {
		return utils.HandleError(c, err, "Invalid offset")
	}
	filter := models.OrderFilter{
		Status: models.OrderStatus(c.QueryParam("status")),
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.QueryParam("rider_id"); raw != "" {
		riderID, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid rider_id")
		}
		filter.RiderID = &riderID
	}

	list, err := h.orderUC.ListOrders(c.Request().Context(), companyID, filter)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve orders")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", list)
}

// CreateOrder creates an order
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	var req models.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), companyID, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to create order")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Order created successfully", order)
}

// GetOrder returns one order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}
	orderID, err := utils.ParamUUID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid order id")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), companyID, orderID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve order")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order retrieved successfully", order)
}

// UpdateOrder applies a dispatcher update to an order
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}
	orderID, err := utils.ParamUUID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid order id")
	}

	var req models.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), companyID, orderID, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update order")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order updated successfully", order)
}

// CancelOrder cancels an order; the row is kept
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}
	orderID, err := utils.ParamUUID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid order id")
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), companyID, orderID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to cancel order")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order cancelled successfully", order)
}

// Analytics returns the order and rider summary of the tenant
func (h *OrderHandler) Analytics(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	analytics, err := h.orderUC.Analytics(c.Request().Context(), companyID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve analytics")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Analytics retrieved successfully", analytics)
}
