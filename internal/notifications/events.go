package notifications

import "time"

// Selection change actions
const (
	ActionAssign   = "assign"
	ActionClear    = "clear"
	ActionSanitize = "sanitize"
)

// SelectionChangedEvent signals that a segment's persisted seat selection
// changed, so other views of the same itinerary can recompute their totals.
type SelectionChangedEvent struct {
	OfferID      string    `json:"offer_id"`
	SegmentIndex int       `json:"segment_index"`
	Action       string    `json:"action"`
	SeatIDs      []string  `json:"seat_ids"`
	Timestamp    time.Time `json:"timestamp"`
}
