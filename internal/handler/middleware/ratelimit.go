package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"hall-booking/internal/handler/httperr"
	"hall-booking/internal/pkg/config"
	"hall-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimit applies a fixed-window counter per client IP backed by
// Redis. When Redis is unreachable the request is allowed through;
// availability wins over throttling accuracy.
func RateLimit(cfg config.RateLimitConfig, client *redis.Client) gin.HandlerFunc {
	if !cfg.Enabled || client == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err.Error())
			c.Next()
			return
		}
		if count == 1 {
			if err := client.Expire(ctx, key, cfg.Window).Err(); err != nil {
				slog.Warn("failed to set rate limit window", "error", err.Error())
			}
		}

		if count > int64(cfg.Limit) {
			c.Header("Retry-After", fmt.Sprintf("%.0f", cfg.Window.Seconds()))
			httperr.AbortWithError(c, http.StatusTooManyRequests,
				errs.New("rate limit exceeded"), "Too many requests", nil)
			return
		}
		c.Next()
	}
}
