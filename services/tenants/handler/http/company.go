package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/dispatch/internal/pkg/context"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/tenants"
)

const maxSettingsBody = 64 << 10

// CompanyHandler handles the authenticated company endpoints
type CompanyHandler struct {
	tenantUC tenants.TenantUC
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(tenantUC tenants.TenantUC) *CompanyHandler {
	return &CompanyHandler{tenantUC: tenantUC}
}

// GetCompany returns the authenticated company
func (h *CompanyHandler) GetCompany(c echo.Context) error {
	id, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	company, err := h.tenantUC.GetCompany(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve company")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Company retrieved successfully", company)
}

// UpdateCompany updates the company profile
func (h *CompanyHandler) UpdateCompany(c echo.Context) error {
	id, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	var req models.CompanyUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	company, err := h.tenantUC.UpdateCompany(c.Request().Context(), id, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update company")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Company updated successfully", company)
}

// RegenerateKey issues a new API key
func (h *CompanyHandler) RegenerateKey(c echo.Context) error {
	id, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	var req models.RegenerateKeyRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "Invalid request payload")
		}
	}

	resp, err := h.tenantUC.RegenerateKey(c.Request().Context(), id, req.RegenerateCode)
	if err != nil {
		return utils.HandleError(c, err, "Failed to regenerate api key")
	}
	return utils.SuccessResponse(c, http.StatusOK, "API key regenerated successfully", resp)
}

// GetSettings returns the company settings
func (h *CompanyHandler) GetSettings(c echo.Context) error {
	id, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	settings, err := h.tenantUC.GetSettings(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve settings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Settings retrieved successfully", settings)
}

// UpdateSettings updates callback URL, feature flags and the webhook secret
func (h *CompanyHandler) UpdateSettings(c echo.Context) error {
	id, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	var req models.SettingsUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	settings, err := h.tenantUC.UpdateSettings(c.Request().Context(), id, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update settings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", settings)
}

// GetMapSettings returns the map settings
func (h *CompanyHandler) GetMapSettings(c echo.Context) error {
	id, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	settings, err := h.tenantUC.GetSettings(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve map settings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Map settings retrieved successfully", settings.Settings.Map)
}

// UpdateMapSettings patches the map settings
func (h *CompanyHandler) UpdateMapSettings(c echo.Context) error {
	id, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	patch, err := readBody(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	settings, err := h.tenantUC.UpdateMapSettings(c.Request().Context(), id, patch)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update map settings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Map settings updated successfully", settings)
}

// GetNotificationSettings returns the notification settings
func (h *CompanyHandler) GetNotificationSettings(c echo.Context) error {
	id, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	settings, err := h.tenantUC.GetSettings(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve notification settings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notification settings retrieved successfully", settings.Settings.Notifications)
}

// UpdateNotificationSettings patches the notification settings
func (h *CompanyHandler) UpdateNotificationSettings(c echo.Context) error {
	id, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	patch, err := readBody(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	settings, err := h.tenantUC.UpdateNotificationSettings(c.Request().Context(), id, patch)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update notification settings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notification settings updated successfully", settings)
}

func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxSettingsBody))
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return body, nil
}
