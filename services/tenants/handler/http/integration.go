package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/dispatch/internal/pkg/context"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
)

// ListIntegrations returns the partner integrations
func (h *CompanyHandler) ListIntegrations(c echo.Context) error {
	id, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	integrations, err := h.tenantUC.ListIntegrations(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve integrations")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Integrations retrieved successfully", integrations)
}

// CreateIntegration registers a partner integration
func (h *CompanyHandler) CreateIntegration(c echo.Context) error {
	id, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	var req models.IntegrationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	integration, err := h.tenantUC.CreateIntegration(c.Request().Context(), id, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to create integration")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Integration created successfully", integration)
}

// GetIntegration returns one integration
func (h *CompanyHandler) GetIntegration(c echo.Context) error {
	id, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}
	integrationID, err := utils.ParamUUID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid integration id")
	}

	integration, err := h.tenantUC.GetIntegration(c.Request().Context(), id, integrationID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve integration")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Integration retrieved successfully", integration)
}

// UpdateIntegration patches an integration
func (h *CompanyHandler) UpdateIntegration(c echo.Context) error {
	id, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}
	integrationID, err := utils.ParamUUID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid integration id")
	}

	var req models.IntegrationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	integration, err := h.tenantUC.UpdateIntegration(c.Request().Context(), id, integrationID, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update integration")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Integration updated successfully", integration)
}

// DeleteIntegration removes an integration
func (h *CompanyHandler) DeleteIntegration(c echo.Context) error {
	id, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}
	integrationID, err := utils.ParamUUID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid integration id")
	}

	if err := h.tenantUC.DeleteIntegration(c.Request().Context(), id, integrationID); err != nil {
		return utils.HandleError(c, err, "Failed to delete integration")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Integration deleted successfully", nil)
}
