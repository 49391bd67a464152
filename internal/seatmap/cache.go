package seatmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"seatwise/internal/shared/config"
	"seatwise/internal/shared/constants"
	"seatwise/pkg/cache"
	"seatwise/pkg/logger"
	"seatwise/pkg/ratelimit"
)

// cachedPayload wraps the raw body with its fetch timestamp so freshness is
// enforced at read time, never relied on implicitly.
type cachedPayload struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Body      json.RawMessage `json:"body"`
}

// PayloadCache stores unparsed seat-map responses per (offer, segment) with
// a TTL and a prefetch lock preventing duplicate concurrent fetches.
type PayloadCache struct {
	store    cache.Store
	cooldown *ratelimit.Cooldown
	logger   *logger.Logger

	ttl      time.Duration
	lockTTL  time.Duration
	lockWait time.Duration
	lockTick time.Duration

	now func() time.Time
}

func NewPayloadCache(store cache.Store, cfg *config.Config, log *logger.Logger) *PayloadCache {
	return &PayloadCache{
		store:    store,
		cooldown: ratelimit.NewCooldown(store, constants.UpstreamCooldownKey, cfg.Upstream.Cooldown),
		logger:   log,
		ttl:      cfg.Redis.PayloadTTL,
		lockTTL:  cfg.Redis.PrefetchLockTTL,
		lockWait: cfg.Upstream.LockWait,
		lockTick: cfg.Upstream.LockTick,
		now:      time.Now,
	}
}

// GetOrFetch resolves the raw payload for one segment. Lookup order:
// segment-specific key, bare-offer key, waiting on another caller's
// in-flight fetch, and only then the fetcher itself, honoring any recorded
// rate-limit cooldown.
func (c *PayloadCache) GetOrFetch(ctx context.Context, offerID, segmentToken, currency string, fetcher Fetcher, forceRefresh bool) (json.RawMessage, error) {
	segmentKey := constants.SeatMapPayloadKey(offerID, segmentToken)
	offerKey := constants.SeatMapPayloadKey(offerID, "")

	if !forceRefresh {
		if body, ok := c.read(ctx, segmentKey); ok {
			return body, nil
		}
		if body, ok := c.read(ctx, offerKey); ok {
			return body, nil
		}

		// Someone else may already be fetching this token; wait and reread
		// rather than issuing a duplicate upstream call.
		lockKey := constants.SeatMapLockKey(segmentToken)
		acquired, err := c.store.SetNX(ctx, lockKey, c.now().Unix(), c.lockTTL)
		if err == nil && !acquired {
			if body, ok := c.awaitPrefetch(ctx, segmentKey, offerKey); ok {
				return body, nil
			}
			// The other fetch never landed; take the lock path ourselves.
			acquired, err = c.store.SetNX(ctx, lockKey, c.now().Unix(), c.lockTTL)
			if err == nil && !acquired {
				return nil, fmt.Errorf("%w: concurrent fetch still in flight", ErrUnavailable)
			}
		}
		if acquired {
			defer c.unlock(ctx, lockKey)
		}
	}

	return c.fetch(ctx, offerID, segmentToken, currency, fetcher, segmentKey, offerKey)
}

// read returns a cached body when present and fresh.
func (c *PayloadCache) read(ctx context.Context, key string) (json.RawMessage, bool) {
	var cached cachedPayload
	if err := c.store.Get(ctx, key, &cached); err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			c.logger.WithError(err).Warn("seat map cache read failed")
		}
		return nil, false
	}

	// Freshness is checked here, the key expiry is only a backstop.
	if c.now().Sub(cached.FetchedAt) > c.ttl {
		return nil, false
	}

	return cached.Body, true
}

// awaitPrefetch waits on another caller's fetch, rechecking the cache on
// every tick up to the bounded wait interval.
func (c *PayloadCache) awaitPrefetch(ctx context.Context, keys ...string) (json.RawMessage, bool) {
	deadline := c.now().Add(c.lockWait)
	ticker := time.NewTicker(c.lockTick)
	defer ticker.Stop()

	for c.now().Before(deadline) {
		select {
		case <-ctx.Done():
			return nil, false
		case <-ticker.C:
		}

		for _, key := range keys {
			if body, ok := c.read(ctx, key); ok {
				return body, true
			}
		}
	}

	return nil, false
}

func (c *PayloadCache) fetch(ctx context.Context, offerID, segmentToken, currency string, fetcher Fetcher, segmentKey, offerKey string) (json.RawMessage, error) {
	if c.cooldown.Active(ctx) {
		c.logger.LogUpstreamCooldown(ctx, segmentToken)
		return nil, ErrCoolingDown
	}

	start := c.now()
	body, err := fetcher.FetchSeatMap(ctx, segmentToken, currency)
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			if trip := c.cooldown.Trip(ctx); trip != nil {
				c.logger.WithError(trip).Warn("failed to record upstream cooldown")
			}
			return nil, fmt.Errorf("%w: %v", ErrCoolingDown, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	c.logger.LogSeatMapFetched(ctx, segmentToken, len(body), c.now().Sub(start))

	// Written under both keys: some airlines answer every segment at once,
	// so the bare-offer key serves sibling segments too.
	cached := cachedPayload{FetchedAt: c.now(), Body: body}
	for _, key := range []string{segmentKey, offerKey} {
		if err := c.store.Set(ctx, key, cached, c.ttl); err != nil {
			c.logger.WithError(err).Warn("seat map cache write failed")
		}
	}

	return body, nil
}

func (c *PayloadCache) unlock(ctx context.Context, lockKey string) {
	if err := c.store.Delete(ctx, lockKey); err != nil {
		c.logger.WithError(err).Warn("failed to release prefetch lock")
	}
}
