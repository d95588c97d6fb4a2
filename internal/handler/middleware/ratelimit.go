package middleware

import (
	"log/slog"
	"net/http"

	"salon-backend/internal/handler/httperr"
	"salon-backend/internal/infra/ratelimit"
	"salon-backend/internal/pkg/config"
	"salon-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var (
	errRateLimited        = errs.New("rate limit exceeded")
	errLimiterUnavailable = errs.New("rate limiter unavailable")
)

// RateLimit counts requests per client IP and scope. With FailOpen a limiter
// outage lets traffic through instead of answering 503.
func RateLimit(limiter ratelimit.Limiter, cfg config.RateLimitConfig, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}
		ok, err := limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			slog.WarnContext(c.Request.Context(), "rate limiter error", "error", err, "scope", scope)
			if cfg.FailOpen {
				c.Next()
				return
			}
			httperr.AbortWithError(c, http.StatusServiceUnavailable, errLimiterUnavailable, "Rate limiter unavailable", nil)
			return
		}
		if !ok {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
