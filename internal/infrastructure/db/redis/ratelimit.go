package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter throttles abuse-prone endpoints (forgot-password, contact) with a
// fixed window counter per caller key.
// Key format: ratelimit:<route>:<caller_key>
type Limiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLimiter allows limit calls per window for each key.
func NewLimiter(client *redis.Client, limit int64, window time.Duration) *Limiter {
	return &Limiter{client: client, limit: limit, window: window}
}

// Allow reports whether another call is permitted for this key. The counter
// expires with the window, so a quiet key resets itself.
func (l *Limiter) Allow(ctx context.Context, route, key string) (bool, error) {
	k := fmt.Sprintf("ratelimit:%s:%s", route, key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return n <= l.limit, nil
}
