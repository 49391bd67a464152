package constants

import (
	"fmt"
	"time"
)

// Redis key and TTL catalog for the seatwise service.
// Pattern: seatwise:{module}:{operation}:{identifier}

const CachePrefix = "seatwise"

// ================== CACHE TTL DURATIONS ==================

const (
	// Raw airline seat-map payloads. Enforced at read time as well via
	// the stored fetch timestamp, the key expiry is a backstop only.
	TTLSeatMapPayload = 30 * time.Minute

	// Prefetch lock held while one caller fetches a segment token.
	TTLPrefetchLock = 20 * time.Second

	// Hot mirror of a segment's persisted selection state.
	TTLSelectionMirror = 24 * time.Hour

	// Cooldown recorded after an upstream 429.
	TTLUpstreamCooldown = 60 * time.Second
)

// ================== SEAT MAP MODULE ==================

// SeatMapPayloadKey keys a cached raw payload. An empty segmentToken yields
// the bare-offer key used by airlines that return every segment at once.
func SeatMapPayloadKey(offerID, segmentToken string) string {
	if segmentToken == "" {
		return fmt.Sprintf("%s:seatmap:payload:offer:%s", CachePrefix, offerID)
	}
	return fmt.Sprintf("%s:seatmap:payload:offer:%s:token:%s", CachePrefix, offerID, segmentToken)
}

// SeatMapLockKey keys the prefetch lock for one segment token.
func SeatMapLockKey(segmentToken string) string {
	return fmt.Sprintf("%s:seatmap:lock:token:%s", CachePrefix, segmentToken)
}

// UpstreamCooldownKey is global to the fetch layer, one upstream.
const UpstreamCooldownKey = CachePrefix + ":seatmap:upstream:cooldown"

// ================== SELECTION MODULE ==================

// SelectionKey keys the mirrored selection state for one (offer, segment).
func SelectionKey(offerID string, segmentIndex int) string {
	return fmt.Sprintf("%s:selection:offer:%s:segment:%d", CachePrefix, offerID, segmentIndex)
}

// ================== RATE LIMITING ==================

// RateLimitKey keys an inbound fixed-window counter per client.
func RateLimitKey(clientIP string, windowStart int64) string {
	return fmt.Sprintf("%s:ratelimit:ip:%s:window:%d", CachePrefix, clientIP, windowStart)
}
