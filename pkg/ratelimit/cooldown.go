package ratelimit

import (
	"context"
	"time"

	"seatwise/pkg/cache"
)

// Cooldown records a throttling signal from an upstream source and answers
// whether fetching is currently allowed. One key, global to the fetch layer.
type Cooldown struct {
	store  cache.Store
	key    string
	window time.Duration
}

func NewCooldown(store cache.Store, key string, window time.Duration) *Cooldown {
	return &Cooldown{store: store, key: key, window: window}
}

// Trip opens the cooldown window. Called after a 429-class upstream failure.
func (c *Cooldown) Trip(ctx context.Context) error {
	return c.store.Set(ctx, c.key, time.Now().Unix(), c.window)
}

// Active reports whether the window is still open.
func (c *Cooldown) Active(ctx context.Context) bool {
	return c.store.Exists(ctx, c.key)
}
