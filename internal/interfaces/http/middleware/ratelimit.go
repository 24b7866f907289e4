package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fixmylab/internal/infrastructure/ratelimit"
	"fixmylab/internal/shared/config"
	"fixmylab/internal/shared/logger"
	"fixmylab/internal/shared/utils"
)

// IntakeRateLimit throttles the public intake endpoint per client IP. The
// limiter failing open is deliberate: a Redis outage must not take the
// intake form down with it.
func IntakeRateLimit(limiter ratelimit.RateLimiter, cfg *config.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	limit := ratelimit.Limit{
		Requests: cfg.IntakePerHour,
		Window:   time.Duration(cfg.WindowSizeSeconds) * time.Second,
	}

	return func(c *gin.Context) {
		if !cfg.Enabled || limiter == nil {
			c.Next()
			return
		}

		allowed, err := limiter.Allow("intake:"+c.ClientIP(), limit)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(),
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
