package ratelimit

import (
	"context"
	"time"

	"seatwise/internal/shared/constants"
	"seatwise/pkg/cache"
)

// Config holds inbound rate limiting configuration
type Config struct {
	Enabled        bool          `json:"enabled"`
	WindowDuration time.Duration `json:"window_duration"`
	Requests       int           `json:"requests"`
	WhitelistedIPs []string      `json:"whitelisted_ips"`
}

// Result represents rate limit check result
type Result struct {
	Allowed   bool  `json:"allowed"`
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	ResetTime int64 `json:"reset_time"`
}

// RateLimiter enforces a fixed window per client IP
type RateLimiter struct {
	store  cache.Store
	config *Config
	now    func() time.Time
}

func NewRateLimiter(store cache.Store, config *Config) *RateLimiter {
	return &RateLimiter{
		store:  store,
		config: config,
		now:    time.Now,
	}
}

// IsAllowed counts the request against the client's current window
func (r *RateLimiter) IsAllowed(ctx context.Context, clientIP string) (Result, error) {
	if !r.config.Enabled || r.isWhitelisted(clientIP) {
		return Result{Allowed: true, Limit: r.config.Requests, Remaining: r.config.Requests}, nil
	}

	window := int64(r.config.WindowDuration.Seconds())
	windowStart := r.now().Unix() / window * window
	key := constants.RateLimitKey(clientIP, windowStart)

	count, err := r.store.Incr(ctx, key, r.config.WindowDuration)
	if err != nil {
		// Fail open: a broken limiter must not take the API down
		return Result{Allowed: true, Limit: r.config.Requests, Remaining: 0}, err
	}

	remaining := r.config.Requests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   int(count) <= r.config.Requests,
		Limit:     r.config.Requests,
		Remaining: remaining,
		ResetTime: windowStart + window,
	}, nil
}

func (r *RateLimiter) isWhitelisted(clientIP string) bool {
	for _, ip := range r.config.WhitelistedIPs {
		if ip == clientIP {
			return true
		}
	}
	return false
}
