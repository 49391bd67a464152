package seatmap

import (
	"context"
	"errors"
	"testing"
	"time"

	"seatwise/internal/shared/config"
	"seatwise/internal/shared/constants"
	"seatwise/pkg/cache"
	"seatwise/pkg/logger"
)

func testCacheConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Redis.PayloadTTL = 30 * time.Minute
	cfg.Redis.PrefetchLockTTL = 10 * time.Second
	cfg.Upstream.Cooldown = time.Minute
	cfg.Upstream.LockWait = 50 * time.Millisecond
	cfg.Upstream.LockTick = 5 * time.Millisecond
	return cfg
}

type countingFetcher struct {
	body  []byte
	err   error
	calls int
}

func (f *countingFetcher) FetchSeatMap(context.Context, string, string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

func TestPayloadCacheGetOrFetch(t *testing.T) {
	ctx := context.Background()
	body := []byte(`{"rows":[]}`)

	t.Run("fetches once then serves from cache", func(t *testing.T) {
		store := cache.NewMemoryStore()
		pc := NewPayloadCache(store, testCacheConfig(), logger.GetDefault())
		fetcher := &countingFetcher{body: body}

		for i := 0; i < 3; i++ {
			got, err := pc.GetOrFetch(ctx, "offer-1", "tok-0", "EUR", fetcher, false)
			if err != nil {
				t.Fatalf("GetOrFetch #%d returned error: %v", i, err)
			}
			if string(got) != string(body) {
				t.Fatalf("GetOrFetch #%d body = %s, want %s", i, got, body)
			}
		}

		if fetcher.calls != 1 {
			t.Errorf("fetcher calls = %d, want 1", fetcher.calls)
		}
	})

	t.Run("bare-offer key serves sibling segments", func(t *testing.T) {
		store := cache.NewMemoryStore()
		pc := NewPayloadCache(store, testCacheConfig(), logger.GetDefault())
		fetcher := &countingFetcher{body: body}

		if _, err := pc.GetOrFetch(ctx, "offer-1", "tok-0", "EUR", fetcher, false); err != nil {
			t.Fatalf("GetOrFetch returned error: %v", err)
		}
		// A different segment token of the same offer hits the bare-offer key.
		if _, err := pc.GetOrFetch(ctx, "offer-1", "tok-1", "EUR", fetcher, false); err != nil {
			t.Fatalf("GetOrFetch returned error: %v", err)
		}

		if fetcher.calls != 1 {
			t.Errorf("fetcher calls = %d, want 1", fetcher.calls)
		}
	})

	t.Run("force refresh bypasses cache", func(t *testing.T) {
		store := cache.NewMemoryStore()
		pc := NewPayloadCache(store, testCacheConfig(), logger.GetDefault())
		fetcher := &countingFetcher{body: body}

		pc.GetOrFetch(ctx, "offer-1", "tok-0", "EUR", fetcher, false)
		pc.GetOrFetch(ctx, "offer-1", "tok-0", "EUR", fetcher, true)

		if fetcher.calls != 2 {
			t.Errorf("fetcher calls = %d, want 2", fetcher.calls)
		}
	})

	t.Run("expired payload is refetched", func(t *testing.T) {
		store := cache.NewMemoryStore()
		pc := NewPayloadCache(store, testCacheConfig(), logger.GetDefault())
		fetcher := &countingFetcher{body: body}

		pc.GetOrFetch(ctx, "offer-1", "tok-0", "EUR", fetcher, false)

		// Advance both the cache clock and the freshness clock past the TTL.
		later := time.Now().Add(31 * time.Minute)
		store.SetClock(func() time.Time { return later })
		pc.now = func() time.Time { return later }

		if _, err := pc.GetOrFetch(ctx, "offer-1", "tok-0", "EUR", fetcher, false); err != nil {
			t.Fatalf("GetOrFetch returned error: %v", err)
		}
		if fetcher.calls != 2 {
			t.Errorf("fetcher calls = %d, want 2", fetcher.calls)
		}
	})

	t.Run("rate limit trips cooldown", func(t *testing.T) {
		store := cache.NewMemoryStore()
		pc := NewPayloadCache(store, testCacheConfig(), logger.GetDefault())
		limited := &countingFetcher{err: ErrRateLimited}

		if _, err := pc.GetOrFetch(ctx, "offer-1", "tok-0", "EUR", limited, false); !errors.Is(err, ErrCoolingDown) {
			t.Fatalf("err = %v, want ErrCoolingDown", err)
		}

		// A healthy fetcher is still refused while the cooldown holds.
		healthy := &countingFetcher{body: body}
		if _, err := pc.GetOrFetch(ctx, "offer-2", "tok-9", "EUR", healthy, false); !errors.Is(err, ErrCoolingDown) {
			t.Fatalf("err = %v, want ErrCoolingDown during cooldown", err)
		}
		if healthy.calls != 0 {
			t.Errorf("fetcher calls during cooldown = %d, want 0", healthy.calls)
		}
	})

	t.Run("fetch failure maps to unavailable", func(t *testing.T) {
		store := cache.NewMemoryStore()
		pc := NewPayloadCache(store, testCacheConfig(), logger.GetDefault())
		fetcher := &countingFetcher{err: errors.New("upstream 500")}

		if _, err := pc.GetOrFetch(ctx, "offer-1", "tok-0", "EUR", fetcher, false); !errors.Is(err, ErrUnavailable) {
			t.Fatalf("err = %v, want ErrUnavailable", err)
		}
	})

	t.Run("waits on another caller's fetch", func(t *testing.T) {
		store := cache.NewMemoryStore()
		cfg := testCacheConfig()
		pc := NewPayloadCache(store, cfg, logger.GetDefault())
		fetcher := &countingFetcher{body: body}

		// Simulate an in-flight fetch elsewhere: lock held, then the
		// payload lands while this caller is waiting.
		lockKey := constants.SeatMapLockKey("tok-0")
		if ok, _ := store.SetNX(ctx, lockKey, time.Now().Unix(), cfg.Redis.PrefetchLockTTL); !ok {
			t.Fatal("failed to seed the prefetch lock")
		}
		go func() {
			time.Sleep(15 * time.Millisecond)
			store.Set(ctx, constants.SeatMapPayloadKey("offer-1", "tok-0"),
				cachedPayload{FetchedAt: time.Now(), Body: body}, cfg.Redis.PayloadTTL)
		}()

		got, err := pc.GetOrFetch(ctx, "offer-1", "tok-0", "EUR", fetcher, false)
		if err != nil {
			t.Fatalf("GetOrFetch returned error: %v", err)
		}
		if string(got) != string(body) {
			t.Fatalf("body = %s, want %s", got, body)
		}
		if fetcher.calls != 0 {
			t.Errorf("fetcher calls = %d, want 0 (served by the other caller)", fetcher.calls)
		}
	})
}
