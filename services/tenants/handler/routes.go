package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	"github.com/piresc/dispatch/services/tenants/handler/http"
)

// Handler coordinates the company account handlers
type Handler struct {
	authHandler    *http.AuthHandler
	companyHandler *http.CompanyHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	companyHandler *http.CompanyHandler,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		companyHandler: companyHandler,
	}
}

// RegisterRoutes registers the company routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	// Public routes
	authGroup := e.Group("/auth")
	authGroup.POST("/signup", h.authHandler.Signup, mw.RateLimit(constants.RateLimitSignup))
	authGroup.POST("/login", h.authHandler.Login, mw.RateLimit(constants.RateLimitCompanyLogin))

	// API key protected routes
	v1 := e.Group("/v1", mw.APIKey())

	company := v1.Group("/company")
	company.GET("", h.companyHandler.GetCompany)
	company.PATCH("", h.companyHandler.UpdateCompany)
	company.POST("/regenerate-key", h.companyHandler.RegenerateKey)

	settings := v1.Group("/settings")
	settings.GET("", h.companyHandler.GetSettings)
	settings.PATCH("", h.companyHandler.UpdateSettings)
	settings.GET("/map", h.companyHandler.GetMapSettings)
	settings.PATCH("/map", h.companyHandler.UpdateMapSettings)
	settings.GET("/notifications", h.companyHandler.GetNotificationSettings)
	settings.PATCH("/notifications", h.companyHandler.UpdateNotificationSettings)
	settings.GET("/integrations", h.companyHandler.ListIntegrations)
	settings.POST("/integrations", h.companyHandler.CreateIntegration)
	settings.GET("/integrations/:id", h.companyHandler.GetIntegration)
	settings.PATCH("/integrations/:id", h.companyHandler.UpdateIntegration)
	settings.DELETE("/integrations/:id", h.companyHandler.DeleteIntegration)
}
