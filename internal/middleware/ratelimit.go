package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "feedbackpulse/internal/errors"
)

// RateLimitKeyPrefix namespaces ingestion counters in redis.
const RateLimitKeyPrefix = "ratelimit:feedback:"

// Counter increments a windowed counter. cache.Client implements it.
type Counter interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// RateLimit allows at most limit requests per client IP in each window.
// When the counter store is unavailable requests are let through.
func RateLimit(counter Counter, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if counter == nil || limit <= 0 {
			return next
		}
		return func(c echo.Context) error {
			count, err := counter.Incr(c.Request().Context(), RateLimitKeyPrefix+c.RealIP(), window)
			if err != nil || count == 0 {
				// fail open
				return next(c)
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(limit))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit) {
				h.Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				return echo.NewHTTPError(http.StatusTooManyRequests, apperrors.ErrorResponse{
					Error: apperrors.ErrRateLimited.Error(),
					Code:  "RATE_LIMITED",
				})
			}
			return next(c)
		}
	}
}
