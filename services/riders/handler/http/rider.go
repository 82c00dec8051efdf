package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/dispatch/internal/pkg/context"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/riders"
)

// RiderHandler handles tenant rider management requests
type RiderHandler struct {
	riderUC riders.RiderUC
}

// NewRiderHandler creates a new rider handler
func NewRiderHandler(riderUC riders.RiderUC) *RiderHandler {
	return &RiderHandler{
		riderUC: riderUC,
	}
}

// ListRiders returns the riders of the tenant
func (h *RiderHandler) ListRiders(c echo.Context) error {
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

	filter := models.RiderFilter{
		Status: models.RiderStatus(c.QueryParam("status")),
		Limit:  limit,
		Offset: offset,
	}
	list, err := h.riderUC.ListRiders(c.Request().Context(), companyID, filter)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve riders")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Riders retrieved successfully", list)
}

// CreateRider registers a rider
func (h *RiderHandler) CreateRider(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	var req models.CreateRiderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rider, err := h.riderUC.CreateRider(c.Request().Context(), companyID, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to create rider")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Rider created successfully", rider)
}

// GetRider returns one rider
func (h *RiderHandler) GetRider(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}
	riderID, err := utils.ParamUUID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid rider id")
	}

	rider, err := h.riderUC.GetRider(c.Request().Context(), companyID, riderID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve rider")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rider retrieved successfully", rider)
}

// UpdateRider patches a rider profile
func (h *RiderHandler) UpdateRider(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}
	riderID, err := utils.ParamUUID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid rider id")
	}

	var req models.UpdateRiderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rider, err := h.riderUC.UpdateRider(c.Request().Context(), companyID, riderID, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update rider")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rider updated successfully", rider)
}

// DeleteRider removes a rider
func (h *RiderHandler) DeleteRider(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}
	riderID, err := utils.ParamUUID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid rider id")
	}

	if err := h.riderUC.DeleteRider(c.Request().Context(), companyID, riderID); err != nil {
		return utils.HandleError(c, err, "Failed to delete rider")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rider deleted successfully", nil)
}

// UpdateLocation records a position for a rider on behalf of the tenant
func (h *RiderHandler) UpdateLocation(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}
	riderID, err := utils.ParamUUID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid rider id")
	}

	var req models.LocationUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rider, err := h.riderUC.UpdateLocation(c.Request().Context(), companyID, riderID, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update location")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", rider)
}

// ImportRiders creates riders in batch
func (h *RiderHandler) ImportRiders(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	var req models.RiderBatchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.riderUC.ImportRiders(c.Request().Context(), companyID, req.Riders)
	if err != nil {
		return utils.HandleError(c, err, "Failed to import riders")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Riders imported", result)
}

// SyncRiders upserts partner riders by external id
func (h *RiderHandler) SyncRiders(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	var req models.RiderBatchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.riderUC.SyncRiders(c.Request().Context(), companyID, req.Riders)
	if err != nil {
		return utils.HandleError(c, err, "Failed to sync riders")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Riders synced", result)
}

// FindNearby returns the riders closest to a point
func (h *RiderHandler) FindNearby(c echo.Context) error {
	companyID, err := appctx.RequireCompanyID(c)
	if err != nil {
		return utils.HandleError(c, err, "Unauthorized")
	}

	lat, okLat, err := utils.QueryFloat(c, "lat")
	if err != nil {
		return utils.HandleError(c, err, "Invalid lat")
	}
	lng, okLng, err := utils.QueryFloat(c, "lng")
	if err != nil {
		return utils.HandleError(c, err, "Invalid lng")
	}
	if !okLat || !okLng {
		return utils.BadRequestResponse(c, "lat and lng are required")
	}
	radius, ok, err := utils.QueryFloat(c, "radius_km")
	if err != nil {
		return utils.HandleError(c, err, "Invalid radius_km")
	}
	if !ok {
		radius = 5
	}
	limit, err := utils.QueryInt(c, "limit", 0)
	if err != nil {
		return utils.HandleError(c, err, "Invalid limit")
	}

	positions, err := h.riderUC.FindNearby(c.Request().Context(), companyID, lat, lng, radius, limit)
	if err != nil {
		return utils.HandleError(c, err, "Failed to search nearby riders")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby riders retrieved successfully", positions)
}
