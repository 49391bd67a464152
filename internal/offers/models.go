package offers

import (
	"time"

	"github.com/google/uuid"
)

// Offer is the itinerary context the booking flow registers before seat
// selection opens: traveller composition, display currency and the flight
// segments the seat maps belong to.
type Offer struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Currency     string         `gorm:"size:3;not null" json:"currency"`
	Adults       int            `gorm:"not null" json:"adults"`
	ChildrenAges []int          `gorm:"serializer:json" json:"children_ages"`
	Segments     []OfferSegment `gorm:"foreignKey:OfferID;references:ID" json:"segments"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// OfferSegment is one flight leg of the itinerary. The token is the opaque
// handle the upstream seat-map source understands.
type OfferSegment struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"-"`
	OfferID      string    `gorm:"not null;uniqueIndex:idx_offer_segment" json:"-"`
	SegmentIndex int       `gorm:"not null;uniqueIndex:idx_offer_segment" json:"segment_index"`
	Token        string    `gorm:"not null" json:"token"`
	CabinClass   string    `gorm:"not null" json:"cabin_class"`
	CreatedAt    time.Time `json:"-"`
}

// TravellerCount is the seat selection capacity for the whole itinerary.
func (o *Offer) TravellerCount() int {
	return o.Adults + len(o.ChildrenAges)
}

// SegmentByIndex returns the segment at the given index.
func (o *Offer) SegmentByIndex(index int) (*OfferSegment, bool) {
	for i := range o.Segments {
		if o.Segments[i].SegmentIndex == index {
			return &o.Segments[i], true
		}
	}
	return nil, false
}
