package ratelimit

import (
	"context"
	"testing"
	"time"

	"seatwise/internal/shared/constants"
	"seatwise/pkg/cache"
)

func newTestLimiter(requests int) *RateLimiter {
	return NewRateLimiter(cache.NewMemoryStore(), &Config{
		Enabled:        true,
		WindowDuration: time.Minute,
		Requests:       requests,
	})
}

func TestIsAllowedWithinLimit(t *testing.T) {
	l := newTestLimiter(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		result, err := l.IsAllowed(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("IsAllowed error: %v", err)
		}
		if !result.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	result, err := l.IsAllowed(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("IsAllowed error: %v", err)
	}
	if result.Allowed {
		t.Error("fourth request should be rejected")
	}
	if result.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", result.Remaining)
	}
}

func TestIsAllowedPerClient(t *testing.T) {
	l := newTestLimiter(1)
	ctx := context.Background()

	if r, _ := l.IsAllowed(ctx, "10.0.0.1"); !r.Allowed {
		t.Error("first client's first request should pass")
	}
	if r, _ := l.IsAllowed(ctx, "10.0.0.2"); !r.Allowed {
		t.Error("second client should have its own window")
	}
	if r, _ := l.IsAllowed(ctx, "10.0.0.1"); r.Allowed {
		t.Error("first client's second request should be rejected")
	}
}

func TestWhitelistedIPBypasses(t *testing.T) {
	l := NewRateLimiter(cache.NewMemoryStore(), &Config{
		Enabled:        true,
		WindowDuration: time.Minute,
		Requests:       1,
		WhitelistedIPs: []string{"192.168.1.1"},
	})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if r, _ := l.IsAllowed(ctx, "192.168.1.1"); !r.Allowed {
			t.Fatal("whitelisted IP should never be limited")
		}
	}
}

func TestDisabledLimiterAllowsAll(t *testing.T) {
	l := NewRateLimiter(cache.NewMemoryStore(), &Config{Enabled: false, Requests: 1, WindowDuration: time.Minute})
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if r, _ := l.IsAllowed(ctx, "10.0.0.1"); !r.Allowed {
			t.Fatal("disabled limiter should allow everything")
		}
	}
}

func TestCooldown(t *testing.T) {
	store := cache.NewMemoryStore()
	cd := NewCooldown(store, constants.UpstreamCooldownKey, time.Minute)
	ctx := context.Background()

	if cd.Active(ctx) {
		t.Error("cooldown should start inactive")
	}
	if err := cd.Trip(ctx); err != nil {
		t.Fatalf("Trip error: %v", err)
	}
	if !cd.Active(ctx) {
		t.Error("cooldown should be active after Trip")
	}
}

func TestCooldownExpires(t *testing.T) {
	store := cache.NewMemoryStore()
	now := time.Now()
	store.SetClock(func() time.Time { return now })

	cd := NewCooldown(store, constants.UpstreamCooldownKey, time.Minute)
	ctx := context.Background()

	if err := cd.Trip(ctx); err != nil {
		t.Fatalf("Trip error: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if cd.Active(ctx) {
		t.Error("cooldown should expire after its window")
	}
}
