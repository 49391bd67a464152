package seatmap

import (
	"fmt"
	"strings"

	"seatwise/internal/shared/money"
)

// CabinClass is the class of service for one segment's cabin.
type CabinClass string

const (
	CabinEconomy        CabinClass = "ECONOMY"
	CabinPremiumEconomy CabinClass = "PREMIUM_ECONOMY"
	CabinBusiness       CabinClass = "BUSINESS"
	CabinFirst          CabinClass = "FIRST"
)

// ParseCabinClass maps the stored segment cabin class onto a known value.
// Unrecognized input falls back to economy, the stricter selectability rule.
func ParseCabinClass(s string) CabinClass {
	switch CabinClass(strings.ToUpper(strings.TrimSpace(s))) {
	case CabinPremiumEconomy:
		return CabinPremiumEconomy
	case CabinBusiness:
		return CabinBusiness
	case CabinFirst:
		return CabinFirst
	default:
		return CabinEconomy
	}
}

// Premium reports whether seats in this cabin sell without announced fees.
func (c CabinClass) Premium() bool {
	return c == CabinBusiness || c == CabinFirst
}

// SeatTag is a physical or regulatory descriptor on a seat.
type SeatTag string

const (
	TagWindow   SeatTag = "WINDOW"
	TagAisle    SeatTag = "AISLE"
	TagExit     SeatTag = "EXIT"
	TagBulkhead SeatTag = "BULKHEAD"
)

// SlotType distinguishes physical columns from synthetic aisle gaps.
type SlotType string

const (
	SlotColumn SlotType = "column"
	SlotGap    SlotType = "gap"
)

// Slot is one render position in a row: a seat column or an aisle gap.
type Slot struct {
	Type   SlotType `json:"type"`
	Column string   `json:"column,omitempty"`
}

// AisleLayout states whether aisle gaps could be derived for the observed
// column count. Unusual widths are flagged rather than guessed.
type AisleLayout string

const (
	AisleLayoutKnown   AisleLayout = "known"
	AisleLayoutUnknown AisleLayout = "unknown"
)

// SeatRecord is the canonical per-seat state after normalization.
type SeatRecord struct {
	ID     string `json:"id"`
	Row    int    `json:"row"`
	Column string `json:"column"`

	// Exists is false when the raw payload had no entry for this
	// position: the spot is physically blocked, not merely unavailable.
	Exists bool `json:"exists"`

	RawAvailable bool          `json:"raw_available"`
	Price        *money.Amount `json:"price,omitempty"`

	// Selectable is the only field the UI may act on.
	Selectable bool `json:"selectable"`

	Tags []SeatTag `json:"tags,omitempty"`
}

// HasTag reports whether the seat carries the given tag.
func (s *SeatRecord) HasTag(tag SeatTag) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CabinLayout is the canonical cabin grid rebuilt per segment. Derived and
// disposable; only the raw payload behind it is cached.
type CabinLayout struct {
	CabinClass  CabinClass             `json:"cabin_class"`
	RowIDs      []int                  `json:"row_ids"`
	Columns     []string               `json:"columns"`
	Slots       []Slot                 `json:"slots"`
	ExitRows    []int                  `json:"exit_rows,omitempty"`
	AisleLayout AisleLayout            `json:"aisle_layout"`
	Seats       map[string]*SeatRecord `json:"seats"`
	MinPrice    *money.Amount          `json:"min_price,omitempty"`

	// Fallback marks the generic placeholder grid served after a
	// malformed payload. Never a silent success.
	Fallback bool `json:"fallback,omitempty"`
}

// SeatID builds the canonical seat identifier: zero-padded row + column.
func SeatID(row int, column string) string {
	return fmt.Sprintf("%02d%s", row, column)
}

// Seat returns the record at (row, column), nil when outside the grid.
func (l *CabinLayout) Seat(row int, column string) *SeatRecord {
	return l.Seats[SeatID(row, column)]
}

// IsSelectableSeat answers whether a persisted seat id is still assignable
// in this layout. Used by stale-selection sanitization.
func (l *CabinLayout) IsSelectableSeat(seatID string) bool {
	seat, ok := l.Seats[seatID]
	return ok && seat.Selectable
}

// fallbackColumns is the generic placeholder width.
var fallbackColumns = []string{"A", "B", "C", "D", "E", "F"}

const fallbackRowCount = 30

// FallbackLayout builds the fully-available placeholder grid served when a
// payload matches no supported shape, so the user is never blocked entirely.
func FallbackLayout(class CabinClass) *CabinLayout {
	layout := &CabinLayout{
		CabinClass:  class,
		Columns:     fallbackColumns,
		AisleLayout: AisleLayoutKnown,
		Seats:       make(map[string]*SeatRecord),
		Fallback:    true,
	}
	layout.Slots = buildSlots(layout.Columns, aisleSplits[len(layout.Columns)])

	for row := 1; row <= fallbackRowCount; row++ {
		layout.RowIDs = append(layout.RowIDs, row)
		for i, col := range layout.Columns {
			seat := &SeatRecord{
				ID:           SeatID(row, col),
				Row:          row,
				Column:       col,
				Exists:       true,
				RawAvailable: true,
				Selectable:   true,
			}
			if i == 0 || i == len(layout.Columns)-1 {
				seat.Tags = []SeatTag{TagWindow}
			}
			layout.Seats[seat.ID] = seat
		}
	}

	return layout
}
