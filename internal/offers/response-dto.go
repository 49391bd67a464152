package offers

import "time"

type OfferResponse struct {
	ID           string            `json:"id"`
	Currency     string            `json:"currency"`
	Adults       int               `json:"adults"`
	ChildrenAges []int             `json:"children_ages"`
	Segments     []SegmentResponse `json:"segments"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type SegmentResponse struct {
	SegmentIndex int    `json:"segment_index"`
	Token        string `json:"token"`
	CabinClass   string `json:"cabin_class"`
}

func ToOfferResponse(offer *Offer) OfferResponse {
	resp := OfferResponse{
		ID:           offer.ID,
		Currency:     offer.Currency,
		Adults:       offer.Adults,
		ChildrenAges: offer.ChildrenAges,
		UpdatedAt:    offer.UpdatedAt,
	}
	for _, seg := range offer.Segments {
		resp.Segments = append(resp.Segments, SegmentResponse{
			SegmentIndex: seg.SegmentIndex,
			Token:        seg.Token,
			CabinClass:   seg.CabinClass,
		})
	}
	return resp
}
