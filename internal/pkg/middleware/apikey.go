package middleware

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/apperror"
	appctx "github.com/piresc/dispatch/internal/pkg/context"
	"github.com/piresc/dispatch/internal/utils"
)

// APIKeyResolver maps a company API key to its company
type APIKeyResolver interface {
	AuthenticateAPIKey(ctx context.Context, apiKey string) (uuid.UUID, error)
}

// BearerToken extracts the credential of an "Authorization: Bearer <token>" header
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// APIKeyAuth resolves the bearer API key to a company on every request and
// stores the company id for the handlers. Nothing is cached between requests.
func APIKeyAuth(resolver APIKeyResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey, ok := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return utils.HandleError(c, apperror.MissingAuth("Unauthorized"), "Unauthorized")
			}

			companyID, err := resolver.AuthenticateAPIKey(c.Request().Context(), apiKey)
			if err != nil {
				return utils.HandleError(c, err, "Failed to authenticate request")
			}

			appctx.SetCompany(c, companyID)
			return next(c)
		}
	}
}
