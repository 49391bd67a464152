package money

import (
	"fmt"
	"math"
)

const nanosPerUnit = 1_000_000_000

// Amount is a monetary value: integer major units plus a fractional
// remainder in nanos, tagged with an ISO currency code. Seat prices are
// carried in this form end to end so no float drift reaches totals.
type Amount struct {
	Currency string `json:"currency"`
	Units    int64  `json:"units"`
	Nanos    int32  `json:"nanos"`
}

// FromFloat converts a raw payload number into an Amount.
func FromFloat(currency string, value float64) Amount {
	units := int64(math.Trunc(value))
	nanos := int32(math.Round((value - float64(units)) * nanosPerUnit))
	return normalize(Amount{Currency: currency, Units: units, Nanos: nanos})
}

// FromUnits builds an Amount from already-split units and nanos.
func FromUnits(currency string, units int64, nanos int32) Amount {
	return normalize(Amount{Currency: currency, Units: units, Nanos: nanos})
}

// Zero returns the zero amount in the given currency.
func Zero(currency string) Amount {
	return Amount{Currency: currency}
}

// normalize carries nanos overflow into units and aligns signs.
func normalize(a Amount) Amount {
	total := a.Units*nanosPerUnit + int64(a.Nanos)
	a.Units = total / nanosPerUnit
	a.Nanos = int32(total % nanosPerUnit)
	return a
}

// IsZero reports whether the amount has no value.
func (a Amount) IsZero() bool {
	return a.Units == 0 && a.Nanos == 0
}

// Add returns a+b. Currencies must match; the caller filters first.
func (a Amount) Add(b Amount) Amount {
	return normalize(Amount{
		Currency: a.Currency,
		Units:    a.Units + b.Units,
		Nanos:    a.Nanos + b.Nanos,
	})
}

// Less reports whether a is strictly smaller than b.
func (a Amount) Less(b Amount) bool {
	if a.Units != b.Units {
		return a.Units < b.Units
	}
	return a.Nanos < b.Nanos
}

// Float converts back to a display float. Display only, never summed.
func (a Amount) Float() float64 {
	return float64(a.Units) + float64(a.Nanos)/nanosPerUnit
}

// String renders e.g. "USD 12.50".
func (a Amount) String() string {
	return fmt.Sprintf("%s %.2f", a.Currency, a.Float())
}
