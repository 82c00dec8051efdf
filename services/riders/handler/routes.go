package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	"github.com/piresc/dispatch/services/riders/handler/http"
)

// Handler coordinates the rider handlers
type Handler struct {
	riderHandler *http.RiderHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(riderHandler *http.RiderHandler) *Handler {
	return &Handler{
		riderHandler: riderHandler,
	}
}

// RegisterRoutes registers the tenant rider routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	riderGroup := e.Group("/v1/riders", mw.APIKey())
	riderGroup.GET("", h.riderHandler.ListRiders)
	riderGroup.POST("", h.riderHandler.CreateRider)
	riderGroup.POST("/import", h.riderHandler.ImportRiders)
	riderGroup.POST("/sync", h.riderHandler.SyncRiders)
	riderGroup.GET("/nearby", h.riderHandler.FindNearby)
	riderGroup.GET("/:id", h.riderHandler.GetRider)
	riderGroup.PATCH("/:id", h.riderHandler.UpdateRider)
	riderGroup.DELETE("/:id", h.riderHandler.DeleteRider)
	riderGroup.PATCH("/:id/location", h.riderHandler.UpdateLocation)
}
