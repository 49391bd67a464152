package seatmap

// IsSelectable decides whether a seat may be assigned. Pure and total:
// every input combination has a defined answer.
//
// Business/First sell without announced fees, so raw availability alone
// qualifies. In economy a seat with no announced price is not actually
// offerable, never free. Bulkhead rows are frequently crew-restricted and
// only qualify through an announced price or a premium cabin.
func IsSelectable(rawAvailable, hasPrice bool, class CabinClass, isBulkhead bool) bool {
	if !rawAvailable {
		return false
	}
	if isBulkhead {
		return hasPrice || class.Premium()
	}
	if class.Premium() {
		return true
	}
	return hasPrice
}
