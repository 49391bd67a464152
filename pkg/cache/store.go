package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Store is the key-value storage abstraction the engine persists through.
// Values are JSON-encoded; a zero ttl means no expiry.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// SetNX sets the key only if it does not exist. Returns true when the
	// key was set by this call. Used for prefetch locks.
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)

	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) bool

	// Incr atomically increments a counter, applying ttl when the counter
	// is created by this call. Used by the fixed-window rate limiter.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)

	Ping(ctx context.Context) error
}
