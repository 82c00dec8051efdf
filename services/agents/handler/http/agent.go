package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/dispatch/internal/pkg/context"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/agents"
)

// AgentHandler serves the rider app on behalf of the authenticated rider
type AgentHandler struct {
	agentUC agents.AgentUC
}

// NewAgentHandler creates a new rider-scoped handler
func NewAgentHandler(agentUC agents.AgentUC) *AgentHandler {
	return &AgentHandler{
		agentUC: agentUC,
	}
}

// GetProfile returns the rider's profile
func (h *AgentHandler) GetProfile(c echo.Context) error {
	identity, err := appctx.RequireAgent(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	rider, err := h.agentUC.GetProfile(c.Request().Context(), identity)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve profile")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", rider)
}

// UpdateProfile updates the rider's own profile
func (h *AgentHandler) UpdateProfile(c echo.Context) error {
	identity, err := appctx.RequireAgent(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	var req models.UpdateRiderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rider, err := h.agentUC.UpdateProfile(c.Request().Context(), identity, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update profile")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", rider)
}

// GetLocation returns the rider's last known position
func (h *AgentHandler) GetLocation(c echo.Context) error {
	identity, err := appctx.RequireAgent(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	position, err := h.agentUC.GetLocation(c.Request().Context(), identity)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve location")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location retrieved successfully", position)
}

// UpdateLocation records a position report
func (h *AgentHandler) UpdateLocation(c echo.Context) error {
	identity, err := appctx.RequireAgent(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	var req models.LocationUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rider, err := h.agentUC.UpdateLocation(c.Request().Context(), identity, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update location")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", rider.Position())
}

// ListOrders returns the rider's orders
func (h *AgentHandler) ListOrders(c echo.Context) error {
	identity, err := appctx.RequireAgent(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	orders, err := h.agentUC.ListOrders(c.Request().Context(), identity, c.QueryParam("status"))
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve orders")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", orders)
}

// GetOrder returns one of the rider's orders
func (h *AgentHandler) GetOrder(c echo.Context) error {
	identity, err := appctx.RequireAgent(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}
	orderID, err := utils.ParamUUID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid order ID")
	}

	order, err := h.agentUC.GetOrder(c.Request().Context(), identity, orderID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve order")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order retrieved successfully", order)
}

// UpdateOrder applies a rider status change or note
func (h *AgentHandler) UpdateOrder(c echo.Context) error {
	identity, err := appctx.RequireAgent(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}
	orderID, err := utils.ParamUUID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid order ID")
	}

	var req models.AgentOrderUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	order, err := h.agentUC.UpdateOrder(c.Request().Context(), identity, orderID, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update order")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order updated successfully", order)
}
