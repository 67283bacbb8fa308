package middleware

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/barberia-app/barberia-api/internal/httperr"
)

// AuthRateLimit caps credential and token-exchange endpoints per IP.
var AuthRateLimit = redis_rate.Limit{Rate: 10, Burst: 10, Period: time.Minute}

// RateLimitMiddleware throttles requests per client IP using a sliding
// window in Redis. On Redis errors it fails open: an unreachable
// limiter must not take the whole API down with it.
func RateLimitMiddleware(rdb *redis.Client, limit redis_rate.Limit, log *zap.Logger) gin.HandlerFunc {
	limiter := redis_rate.NewLimiter(rdb)

	return func(c *gin.Context) {
		key := "ratelimit:ip:" + clientIP(c)

		res, err := limiter.Allow(c.Request.Context(), key, limit)
		if err != nil {
			log.Warn("rate limiter unavailable, failing open",
				zap.String("key", key),
				zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit.Rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if res.Allowed == 0 {
			retryAfter := int(res.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			httperr.TooManyRequests(c, "rate_limited", "too many requests, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}

func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[len(ips)-1])
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}
