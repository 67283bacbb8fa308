package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/barberia-app/barberia-api/internal/config"
)

// NewRedis connects the client used by the rate limiter. Redis being down
// is not fatal: the limiter fails open, so a nil-safe client is returned
// and the caller keeps going.
func NewRedis(cfg *config.Config, log *zap.Logger) *redis.Client {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal("invalid redis url", zap.Error(err))
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, rate limiting degrades to fail-open", zap.Error(err))
	}

	return client
}
