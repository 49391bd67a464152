package offers

// Verdict is the eligibility answer for the whole itinerary. When not
// eligible the reason is the fixed message the UI shows instead of a grid.
type Verdict struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// Fixed ineligibility reasons. These are deliberate business rules, not
// errors, and each one gates the entire itinerary.
const (
	ReasonMultipleAdults  = "seat selection is not available for more than one adult traveller"
	ReasonChildren        = "seat selection is not available for itineraries that include children"
	ReasonTooManySegments = "seat selection is not available for itineraries with more than three flight segments"
)

// Limits are the airline policy thresholds, overridable via config.
type Limits struct {
	MaxAdults   int
	MaxChildren int
	MaxSegments int
}

// DefaultLimits matches the airline policy: one adult, no children, at most
// three segments.
func DefaultLimits() Limits {
	return Limits{MaxAdults: 1, MaxChildren: 0, MaxSegments: 3}
}

// Eligibility decides whether seat selection is offered at all for a given
// passenger and segment composition. Pure and total.
func Eligibility(adults, childrenCount, segmentCount int, limits Limits) Verdict {
	switch {
	case adults > limits.MaxAdults:
		return Verdict{Eligible: false, Reason: ReasonMultipleAdults}
	case childrenCount > limits.MaxChildren:
		return Verdict{Eligible: false, Reason: ReasonChildren}
	case segmentCount > limits.MaxSegments:
		return Verdict{Eligible: false, Reason: ReasonTooManySegments}
	default:
		return Verdict{Eligible: true}
	}
}
