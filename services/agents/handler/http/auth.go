package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/agents"
)

// AuthHandler handles rider login and logout
type AuthHandler struct {
	agentUC agents.AgentUC
}

// NewAuthHandler creates a new agent auth handler
func NewAuthHandler(agentUC agents.AgentUC) *AuthHandler {
	return &AuthHandler{
		agentUC: agentUC,
	}
}

// Login authenticates a rider device and returns a session token
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.AgentLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.agentUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to log in")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Logout ends the session of the bearer token
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := middleware.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		return utils.HandleError(c, apperror.MissingAuth("Unauthorized"), "Unauthorized")
	}

	if err := h.agentUC.Logout(c.Request().Context(), token); err != nil {
		return utils.HandleError(c, err, "Failed to log out")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}
