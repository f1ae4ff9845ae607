// Package ratelimit implements a fixed-window request limiter backed by Redis.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type counterStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	PTTL(ctx context.Context, key string) *redis.DurationCmd
}

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter allows at most Limit hits per key within each window.
type Limiter struct {
	store  counterStore
	prefix string
	limit  int
	window time.Duration
}

func New(store counterStore, prefix string, limit int, window time.Duration) (*Limiter, error) {
	if limit <= 0 || window <= 0 {
		return nil, errors.New("ratelimit: limit and window must be positive")
	}
	return &Limiter{store: store, prefix: prefix, limit: limit, window: window}, nil
}

// Allow records a hit for key and reports whether it is within the limit.
// A key left without a TTL (a failed EXPIRE after INCR) gets its window
// re-applied on the next hit, so the counter always expires.
func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	k := l.prefix + key
	count, err := l.store.Incr(ctx, k).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit: incr %s: %w", k, err)
	}

	retry := l.window
	needsExpiry := count == 1
	if !needsExpiry {
		ttl, err := l.store.PTTL(ctx, k).Result()
		if err != nil {
			return Decision{}, fmt.Errorf("ratelimit: pttl %s: %w", k, err)
		}
		if ttl > 0 {
			retry = ttl
		} else {
			// -1: the key has no expiry
			needsExpiry = true
		}
	}
	if needsExpiry {
		if err := l.store.Expire(ctx, k, l.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("ratelimit: expire %s: %w", k, err)
		}
	}

	if count <= int64(l.limit) {
		return Decision{Allowed: true, Remaining: l.limit - int(count)}, nil
	}
	return Decision{Allowed: false, RetryAfter: retry}, nil
}
