// Package redis holds the Redis-backed session infrastructure: the
// credential store that lets a visitor's login survive a restart, and the
// fixed-window rate limiter guarding the contact and forgot-password routes.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/manara-academy/platform-api/internal/infrastructure/config"
)

const pingTimeout = 5 * time.Second

// Connect opens the client shared by the credential store and the rate
// limiter. It fails fast on an unreachable server: without Redis, logins
// would appear to work but silently stop persisting across visits.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
