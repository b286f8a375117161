package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultAttemptLimit  = 20
	defaultAttemptWindow = time.Minute
)

// AttemptLimiter counts failed authentications per subject (a client IP) in
// a fixed window. Only failures are counted.
// Key format: auth:fail:<subject>
type AttemptLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewAttemptLimiter returns a limiter allowing limit failures per window.
// Non-positive values select the defaults.
func NewAttemptLimiter(client *redis.Client, limit int, window time.Duration) *AttemptLimiter {
	if limit <= 0 {
		limit = defaultAttemptLimit
	}
	if window <= 0 {
		window = defaultAttemptWindow
	}
	return &AttemptLimiter{client: client, limit: int64(limit), window: window}
}

// Blocked reports whether subject already used up its failure budget.
func (l *AttemptLimiter) Blocked(ctx context.Context, subject string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(subject)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("attempt check: %w", err)
	}
	return n >= l.limit, nil
}

// Fail records one failed attempt. The window starts at the first failure
// and is not extended by later ones. INCR and EXPIRE NX run in one
// MULTI/EXEC, so a counter always carries a TTL; a key left without one is
// given the window on its next failure.
func (l *AttemptLimiter) Fail(ctx context.Context, subject string) error {
	key := l.key(subject)

	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return fmt.Errorf("attempt record: %w", err)
	}
	return nil
}

func (l *AttemptLimiter) key(subject string) string {
	return fmt.Sprintf("auth:fail:%s", subject)
}
