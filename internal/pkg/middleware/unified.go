package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// Config holds the collaborators of the route middleware
type Config struct {
	APIKeys   APIKeyResolver
	Sessions  SessionValidator
	Counter   Counter
	RateLimit models.RateLimitConfig
}

// Middleware hands out the per-route middleware the services register with
type Middleware struct {
	config Config
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(config Config) *Middleware {
	return &Middleware{config: config}
}

// APIKey authenticates company requests
func (m *Middleware) APIKey() echo.MiddlewareFunc {
	return APIKeyAuth(m.config.APIKeys)
}

// AgentSession authenticates rider requests
func (m *Middleware) AgentSession() echo.MiddlewareFunc {
	return AgentSessionAuth(m.config.Sessions)
}

// RateLimit limits a public endpoint per client IP. It is a no-op when rate
// limiting is disabled or no counter store is configured.
func (m *Middleware) RateLimit(resource string) echo.MiddlewareFunc {
	cfg := m.config.RateLimit
	if !cfg.Enabled || m.config.Counter == nil || cfg.Limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return IPRateLimiter(m.config.Counter, resource, cfg.Limit, time.Duration(cfg.PeriodSeconds)*time.Second)
}
