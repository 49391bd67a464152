package selection

import (
	"time"

	"seatwise/internal/shared/money"

	"github.com/google/uuid"
)

// SegmentSelection is the persisted row for one (offer, segment). The full
// selection state lives JSON-encoded in one column so every write replaces
// the whole object in a single step; partial field updates would allow
// interleaved corruption between concurrent writers.
type SegmentSelection struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	OfferID      string    `gorm:"not null;uniqueIndex:idx_selection_offer_segment"`
	SegmentIndex int       `gorm:"not null;uniqueIndex:idx_selection_offer_segment"`
	State        string    `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// State is the per-segment selection: a FIFO-bounded seat list plus the
// exact price shown at assignment time. Shown prices are deliberately
// decoupled from later re-fetches so totals never drift retroactively.
type State struct {
	SeatIDs    []string                `json:"seat_ids"`
	ShownPrice map[string]money.Amount `json:"shown_price"`
}

func NewState() *State {
	return &State{
		SeatIDs:    []string{},
		ShownPrice: make(map[string]money.Amount),
	}
}

// Contains reports whether the seat is already selected.
func (s *State) Contains(seatID string) bool {
	for _, id := range s.SeatIDs {
		if id == seatID {
			return true
		}
	}
	return false
}

// Assign adds a seat under the capacity bound. At capacity the oldest entry
// is evicted and its shown price deleted in the same operation. Returns
// whether the state changed.
func (s *State) Assign(seatID string, shown money.Amount, capacity int) bool {
	if capacity <= 0 || s.Contains(seatID) {
		return false
	}

	if len(s.SeatIDs) >= capacity {
		evicted := s.SeatIDs[0]
		s.SeatIDs = append(s.SeatIDs[:0], s.SeatIDs[1:]...)
		delete(s.ShownPrice, evicted)
	}

	s.SeatIDs = append(s.SeatIDs, seatID)
	if s.ShownPrice == nil {
		s.ShownPrice = make(map[string]money.Amount)
	}
	s.ShownPrice[seatID] = shown
	return true
}

// Sanitize drops seats that no longer pass keep, then re-truncates to
// capacity keeping the most recent entries. Returns whether anything was
// removed.
func (s *State) Sanitize(keep func(seatID string) bool, capacity int) bool {
	kept := s.SeatIDs[:0]
	changed := false
	for _, id := range s.SeatIDs {
		if keep(id) {
			kept = append(kept, id)
		} else {
			delete(s.ShownPrice, id)
			changed = true
		}
	}
	s.SeatIDs = kept

	if capacity >= 0 && len(s.SeatIDs) > capacity {
		for _, id := range s.SeatIDs[:len(s.SeatIDs)-capacity] {
			delete(s.ShownPrice, id)
		}
		s.SeatIDs = append(s.SeatIDs[:0], s.SeatIDs[len(s.SeatIDs)-capacity:]...)
		changed = true
	}

	return changed
}

// Empty reports whether nothing is selected.
func (s *State) Empty() bool {
	return len(s.SeatIDs) == 0
}
