package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	"github.com/piresc/dispatch/services/agents/handler/http"
)

// Handler coordinates the rider app and session admin handlers
type Handler struct {
	authHandler  *http.AuthHandler
	agentHandler *http.AgentHandler
	adminHandler *http.AdminHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	agentHandler *http.AgentHandler,
	adminHandler *http.AdminHandler,
) *Handler {
	return &Handler{
		authHandler:  authHandler,
		agentHandler: agentHandler,
		adminHandler: adminHandler,
	}
}

// RegisterRoutes registers the rider app and session admin routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	authGroup := e.Group("/agent/auth")
	authGroup.POST("/login", h.authHandler.Login, mw.RateLimit(constants.RateLimitAgentLogin))
	authGroup.POST("/logout", h.authHandler.Logout)

	agentGroup := e.Group("/agent", mw.AgentSession())
	agentGroup.GET("/profile", h.agentHandler.GetProfile)
	agentGroup.PATCH("/profile", h.agentHandler.UpdateProfile)
	agentGroup.GET("/location", h.agentHandler.GetLocation)
	agentGroup.POST("/location", h.agentHandler.UpdateLocation)
	agentGroup.GET("/orders", h.agentHandler.ListOrders)
	agentGroup.GET("/orders/:id", h.agentHandler.GetOrder)
	agentGroup.PATCH("/orders/:id", h.agentHandler.UpdateOrder)

	adminGroup := e.Group("/v1/agents", mw.APIKey())
	adminGroup.GET("/active", h.adminHandler.ActiveRoster)
	adminGroup.GET("/:id/sessions", h.adminHandler.ListSessions)
	adminGroup.POST("/:id/sessions", h.adminHandler.SetPin)
	adminGroup.DELETE("/:id/sessions", h.adminHandler.ForceLogout)
}
