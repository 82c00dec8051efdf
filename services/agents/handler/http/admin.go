package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	appctx "github.com/piresc/dispatch/internal/pkg/context"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/agents"
)

// AdminHandler lets dispatchers manage rider sessions
type AdminHandler struct {
	agentUC agents.AgentUC
}

// NewAdminHandler creates a new rider session admin handler
func NewAdminHandler(agentUC agents.AgentUC) *AdminHandler {
	return &AdminHandler{
		agentUC: agentUC,
	}
}

// ActiveRoster returns the live rider roster
func (h *AdminHandler) ActiveRoster(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	roster, err := h.agentUC.ActiveRoster(c.Request().Context(), companyID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve active riders")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Active riders retrieved successfully", roster)
}

// ListSessions returns the sessions of a rider
func (h *AdminHandler) ListSessions(c echo.Context) error {
	companyID, riderID, err := h.tenantRider(c)
	if err != nil {
		return utils.HandleError(c, err, "Invalid request")
	}

	sessions, err := h.agentUC.ListSessions(c.Request().Context(), companyID, riderID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve sessions")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Sessions retrieved successfully", sessions)
}

// SetPin provisions or resets the rider's PIN
func (h *AdminHandler) SetPin(c echo.Context) error {
	companyID, riderID, err := h.tenantRider(c)
	if err != nil {
		return utils.HandleError(c, err, "Invalid request")
	}

	var req models.SetPinRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.agentUC.SetPin(c.Request().Context(), companyID, riderID, req.PinCode); err != nil {
		return utils.HandleError(c, err, "Failed to set PIN")
	}
	return utils.SuccessResponse(c, http.StatusOK, "PIN set successfully", nil)
}

// ForceLogout revokes the rider's sessions
func (h *AdminHandler) ForceLogout(c echo.Context) error {
	companyID, riderID, err := h.tenantRider(c)
	if err != nil {
		return utils.HandleError(c, err, "Invalid request")
	}

	var sessionID *uuid.UUID
	if raw := c.QueryParam("session_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.HandleError(c, apperror.Validation("invalid session_id"), "Invalid session ID")
		}
		sessionID = &id
	}

	n, err := h.agentUC.ForceLogout(c.Request().Context(), companyID, riderID, sessionID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to revoke sessions")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Sessions revoked successfully", map[string]int64{
		"revoked": n,
	})
}

func (h *AdminHandler) tenantRider(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	riderID, err := utils.ParamUUID(c, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return companyID, riderID, nil
}
