package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"qrstudio/internal/infrastructure/ratelimit"
	"qrstudio/pkg/logger"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles the given action per client IP.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, wait := m.limiter.Allow(ip, action)
			if !allowed {
				logger.Warn("Rate limit hit: ip=%s action=%s retry in %v", ip, action, wait)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(wait / time.Second),
				})
			}

			return next(c)
		}
	}
}
