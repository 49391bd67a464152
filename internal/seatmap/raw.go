package seatmap

import (
	"strings"

	"seatwise/internal/shared/money"
)

// Raw payload types. The airline source returns loosely-typed JSON in one of
// several shapes; schema is not contractually fixed and every field here is
// optional. Everything downstream of Normalize operates only on CabinLayout.

// RawPayload is the top-level seat-map response for a segment. Some sources
// wrap cabins in a list, some return a single cabin inline.
type RawPayload struct {
	Cabins   []RawCabin `json:"cabins"`
	SeatMaps []RawCabin `json:"seatMaps"`
	RawCabin
}

// SelectCabin picks the cabin for the requested class: an explicit class
// match first, otherwise the first cabin, otherwise the inline one.
func (p *RawPayload) SelectCabin(class CabinClass) *RawCabin {
	lists := [][]RawCabin{p.Cabins, p.SeatMaps}
	for _, cabins := range lists {
		if len(cabins) == 0 {
			continue
		}
		for i := range cabins {
			if ParseCabinClass(cabins[i].ClassName()) == class && cabins[i].ClassName() != "" {
				return &cabins[i]
			}
		}
		return &cabins[0]
	}
	if p.RawCabin.hasShape() {
		return &p.RawCabin
	}
	return nil
}

// RawCabin is one cabin blob in any of the three recognized shapes.
type RawCabin struct {
	Class      string `json:"class"`
	CabinClass string `json:"cabinClass"`

	Columns []RawColumn `json:"columns"`
	Rows    []RawRow    `json:"rows"`
	Seats   []RawSeat   `json:"seats"`
}

func (c *RawCabin) ClassName() string {
	if c.CabinClass != "" {
		return c.CabinClass
	}
	return c.Class
}

func (c *RawCabin) hasShape() bool {
	return len(c.Columns) > 0 || len(c.Rows) > 0 || len(c.Seats) > 0
}

// RawColumn is an explicit column descriptor.
type RawColumn struct {
	ID          string   `json:"id"`
	Description []string `json:"description"`
}

// IsGapMarker reports whether the entry encodes an aisle/void position
// rather than a physical column.
func (c *RawColumn) IsGapMarker() bool {
	if c.ID == "" {
		return true
	}
	for _, d := range c.Description {
		switch strings.ToUpper(strings.TrimSpace(d)) {
		case "GAP", "VOID", "EMPTY":
			return true
		}
	}
	return false
}

// RawRow is one row in shape (a): an id plus seats keyed by colId.
// The id is decoded as a float to survive sentinel values like -1 and
// fractional garbage from upstream.
type RawRow struct {
	ID          *float64  `json:"id"`
	Description []string  `json:"description"`
	Seats       []RawSeat `json:"seats"`
}

// RawSeat is a seat entry from either the nested or the flat shape.
type RawSeat struct {
	ColID  string   `json:"colId"`
	Column string   `json:"column"`
	Row    *float64 `json:"row"`

	Available        *bool  `json:"available"`
	IsAvailable      *bool  `json:"isAvailable"`
	Status           string `json:"status"`
	SeatAvailability string `json:"seatAvailability"`

	Description []string `json:"description"`

	PriceBreakdown *RawPriceBreakdown `json:"priceBreakdown"`
	Price          *RawPrice          `json:"price"`
	SeatPrice      *RawPrice          `json:"seatPrice"`
	Pricing        *RawPrice          `json:"pricing"`
	Amount         *RawPrice          `json:"amount"`
}

// ColumnID returns whichever column identifier the seat carries.
func (s *RawSeat) ColumnID() string {
	if s.ColID != "" {
		return s.ColID
	}
	return s.Column
}

type RawPriceBreakdown struct {
	Total *RawPrice `json:"total"`
}

// RawPrice is a loosely-shaped monetary object.
type RawPrice struct {
	Units        *float64 `json:"units"`
	Nanos        *float64 `json:"nanos"`
	Amount       *float64 `json:"amount"`
	CurrencyCode string   `json:"currencyCode"`
	Currency     string   `json:"currency"`
}

// Valid reports structural validity: a numeric major-unit field exists.
// A zero price is valid; "free" and "unpriced" are different facts.
func (p *RawPrice) Valid() bool {
	return p != nil && (p.Units != nil || p.Amount != nil)
}

// ToAmount converts to the canonical money form, defaulting the currency to
// the itinerary's when the payload omits one.
func (p *RawPrice) ToAmount(defaultCurrency string) money.Amount {
	currency := p.CurrencyCode
	if currency == "" {
		currency = p.Currency
	}
	if currency == "" {
		currency = defaultCurrency
	}

	if p.Units != nil {
		var nanos int32
		if p.Nanos != nil {
			nanos = int32(*p.Nanos)
		}
		return money.FromUnits(currency, int64(*p.Units), nanos)
	}
	return money.FromFloat(currency, *p.Amount)
}

// Availability resolution: an ordered rule chain, first match wins. Each
// rule is named so diagnostics can say which one fired.

type availabilityRule struct {
	name string
	eval func(seat *RawSeat) (available bool, matched bool)
}

var availabilityRules = []availabilityRule{
	{
		name: "explicit-boolean",
		eval: func(seat *RawSeat) (bool, bool) {
			if seat.Available != nil {
				return *seat.Available, true
			}
			if seat.IsAvailable != nil {
				return *seat.IsAvailable, true
			}
			return false, false
		},
	},
	{
		name: "status-string",
		eval: func(seat *RawSeat) (bool, bool) {
			status := seat.Status
			if status == "" {
				status = seat.SeatAvailability
			}
			if status == "" {
				return false, false
			}
			return strings.EqualFold(status, "AVAILABLE"), true
		},
	},
	{
		name: "price-implies-available",
		eval: func(seat *RawSeat) (bool, bool) {
			if extractPrice(seat) != nil {
				return true, true
			}
			return false, false
		},
	},
}

// resolveAvailability runs the chain; with no match the seat is unavailable.
func resolveAvailability(seat *RawSeat) bool {
	for _, rule := range availabilityRules {
		if available, matched := rule.eval(seat); matched {
			return available
		}
	}
	return false
}

// Price extraction: ordered sources, first structurally valid one wins.

var priceSources = []struct {
	name    string
	extract func(seat *RawSeat) *RawPrice
}{
	{"price-breakdown-total", func(s *RawSeat) *RawPrice {
		if s.PriceBreakdown == nil {
			return nil
		}
		return s.PriceBreakdown.Total
	}},
	{"price", func(s *RawSeat) *RawPrice { return s.Price }},
	{"seat-price", func(s *RawSeat) *RawPrice { return s.SeatPrice }},
	{"pricing", func(s *RawSeat) *RawPrice { return s.Pricing }},
	{"amount", func(s *RawSeat) *RawPrice { return s.Amount }},
}

func extractPrice(seat *RawSeat) *RawPrice {
	for _, source := range priceSources {
		if p := source.extract(seat); p.Valid() {
			return p
		}
	}
	return nil
}

// resolvePrice returns the seat's announced price, nil when none exists.
func resolvePrice(seat *RawSeat, defaultCurrency string) *money.Amount {
	raw := extractPrice(seat)
	if raw == nil {
		return nil
	}
	amount := raw.ToAmount(defaultCurrency)
	return &amount
}
