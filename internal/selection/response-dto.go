package selection

import "seatwise/internal/shared/money"

// SelectionResponse is the per-segment selection for display
// ("Selected: 07C, 12A").
type SelectionResponse struct {
	OfferID      string                  `json:"offer_id"`
	SegmentIndex int                     `json:"segment_index"`
	SeatIDs      []string                `json:"seat_ids"`
	ShownPrice   map[string]money.Amount `json:"shown_price"`
}

func ToSelectionResponse(offerID string, segmentIndex int, state *State) SelectionResponse {
	return SelectionResponse{
		OfferID:      offerID,
		SegmentIndex: segmentIndex,
		SeatIDs:      state.SeatIDs,
		ShownPrice:   state.ShownPrice,
	}
}
