// FilePath: internal/ratelimit/ratelimit.go
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Result describes the outcome of a single Allow call
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter decides whether a client identified by key may proceed
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// Counter increments a key that expires after ttl and returns the new value
type Counter interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// FixedWindow allows limit requests per key in each aligned window
type FixedWindow struct {
	counter Counter
	limit   int
	window  time.Duration
	prefix  string
	now     func() time.Time
}

func NewFixedWindow(counter Counter, limit int, window time.Duration) *FixedWindow {
	return &FixedWindow{
		counter: counter,
		limit:   limit,
		window:  window,
		prefix:  "binsight:ratelimit",
		now:     time.Now,
	}
}

func (l *FixedWindow) Allow(ctx context.Context, key string) (Result, error) {
	now := l.now()
	bucket := now.UnixNano() / int64(l.window)
	windowEnd := time.Unix(0, (bucket+1)*int64(l.window))

	count, err := l.counter.Incr(ctx, fmt.Sprintf("%s:%s:%d", l.prefix, key, bucket), l.window)
	if err != nil {
		return Result{}, fmt.Errorf("incrementing rate counter: %w", err)
	}

	res := Result{
		Allowed:   count <= int64(l.limit),
		Limit:     l.limit,
		Remaining: max(0, l.limit-int(count)),
	}
	if !res.Allowed {
		res.RetryAfter = windowEnd.Sub(now)
	}
	return res, nil
}

// RedisCounter keeps window counters in Redis
type RedisCounter struct {
	client redis.Cmdable
}

func NewRedisCounter(client redis.Cmdable) *RedisCounter {
	return &RedisCounter{client: client}
}

func (c *RedisCounter) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
