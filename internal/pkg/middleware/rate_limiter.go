package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/utils"
)

// Counter is a fixed-window counter, implemented by database.RedisClient
type Counter interface {
	IncrWithExpire(ctx context.Context, key string, expiration time.Duration) (int64, error)
}

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Counter  Counter
	Resource string        // Key segment naming the limited endpoint
	Limit    int           // Maximum number of requests
	Period   time.Duration // Time period for the limit
}

// RateLimiterMiddleware limits requests per client IP. When the counter
// store fails the request is let through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf(constants.KeyRateLimit, config.Resource, c.RealIP())

			count, err := config.Counter.IncrWithExpire(c.Request().Context(), key, config.Period)
			if err != nil {
				logger.WarnCtx(c.Request().Context(), "Rate limiter unavailable, allowing request",
					logger.String("resource", config.Resource),
					logger.Err(err))
				return next(c)
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > config.Limit {
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(config.Period.Seconds())))
				return utils.TooManyRequestsResponse(c, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates a per-IP limiter for one resource
func IPRateLimiter(counter Counter, resource string, limit int, period time.Duration) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		Counter:  counter,
		Resource: resource,
		Limit:    limit,
		Period:   period,
	})
}
