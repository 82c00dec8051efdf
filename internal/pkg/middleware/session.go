package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	appctx "github.com/piresc/dispatch/internal/pkg/context"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
)

// SessionValidator validates a rider session token
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (models.AgentIdentity, error)
}

// AgentSessionAuth validates the bearer session token and hands the rider
// identity to the handlers.
func AgentSessionAuth(validator SessionValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return utils.HandleError(c, apperror.MissingAuth("Unauthorized"), "Unauthorized")
			}

			identity, err := validator.ValidateSession(c.Request().Context(), token)
			if err != nil {
				return utils.HandleError(c, err, "Failed to validate session")
			}

			appctx.SetAgent(c, identity)
			return next(c)
		}
	}
}
