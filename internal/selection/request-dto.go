package selection

import "seatwise/internal/shared/money"

// AssignSeatRequest assigns one seat with the exact price the UI showed.
type AssignSeatRequest struct {
	SeatID     string        `json:"seat_id" binding:"required"`
	ShownPrice AmountRequest `json:"shown_price"`
}

// AmountRequest mirrors money.Amount; the currency defaults to the offer's
// when omitted.
type AmountRequest struct {
	Currency string `json:"currency" binding:"omitempty,len=3"`
	Units    int64  `json:"units" binding:"min=0"`
	Nanos    int32  `json:"nanos" binding:"min=0,max=999999999"`
}

func (r AmountRequest) ToAmount() money.Amount {
	return money.FromUnits(r.Currency, r.Units, r.Nanos)
}
