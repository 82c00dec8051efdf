package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/tenants"
)

// AuthHandler handles company signup and login
type AuthHandler struct {
	tenantUC tenants.TenantUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(tenantUC tenants.TenantUC) *AuthHandler {
	return &AuthHandler{tenantUC: tenantUC}
}

// Signup handles company registration
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for signup",
			logger.ErrorField(err),
			logger.String("endpoint", "Signup"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.tenantUC.Signup(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to create company")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Company created successfully", resp)
}

// Login handles company email and password login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.CompanyLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.tenantUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to login")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
