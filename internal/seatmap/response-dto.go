package seatmap

import "seatwise/internal/shared/money"

// SeatMapResponse is the render-ready layout handed to the UI collaborator.
type SeatMapResponse struct {
	CabinClass  CabinClass             `json:"cabin_class"`
	RowIDs      []int                  `json:"row_ids"`
	Columns     []string               `json:"columns"`
	Slots       []Slot                 `json:"slots"`
	ExitRows    []int                  `json:"exit_rows,omitempty"`
	AisleLayout AisleLayout            `json:"aisle_layout"`
	Seats       map[string]*SeatRecord `json:"seats"`
	MinPrice    *money.Amount          `json:"min_price,omitempty"`
	Fallback    bool                   `json:"fallback,omitempty"`
	Warning     string                 `json:"warning,omitempty"`
}

// FallbackWarning is attached whenever the placeholder grid is served.
const FallbackWarning = "seat map data could not be interpreted; a generic layout is shown"

func ToSeatMapResponse(layout *CabinLayout) SeatMapResponse {
	resp := SeatMapResponse{
		CabinClass:  layout.CabinClass,
		RowIDs:      layout.RowIDs,
		Columns:     layout.Columns,
		Slots:       layout.Slots,
		ExitRows:    layout.ExitRows,
		AisleLayout: layout.AisleLayout,
		Seats:       layout.Seats,
		MinPrice:    layout.MinPrice,
		Fallback:    layout.Fallback,
	}
	if layout.Fallback {
		resp.Warning = FallbackWarning
	}
	return resp
}
