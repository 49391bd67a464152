package offers

// RegisterOfferRequest registers or replaces the itinerary context for an
// offer. Cabin class values follow the upstream vocabulary.
type RegisterOfferRequest struct {
	Currency     string           `json:"currency" validate:"required,len=3"`
	Adults       int              `json:"adults" validate:"required,min=1"`
	ChildrenAges []int            `json:"children_ages" validate:"omitempty,dive,min=0,max=17"`
	Segments     []SegmentRequest `json:"segments" validate:"required,min=1,dive"`
}

type SegmentRequest struct {
	Token      string `json:"token" validate:"required"`
	CabinClass string `json:"cabin_class" validate:"required,oneof=ECONOMY PREMIUM_ECONOMY BUSINESS FIRST"`
}

// ToModel builds the persisted Offer for the given id.
func (r *RegisterOfferRequest) ToModel(id string) *Offer {
	offer := &Offer{
		ID:           id,
		Currency:     r.Currency,
		Adults:       r.Adults,
		ChildrenAges: r.ChildrenAges,
	}
	for i, seg := range r.Segments {
		offer.Segments = append(offer.Segments, OfferSegment{
			OfferID:      id,
			SegmentIndex: i,
			Token:        seg.Token,
			CabinClass:   seg.CabinClass,
		})
	}
	return offer
}
