package seatmap

import "testing"

func TestResolveAvailability(t *testing.T) {
	price := &RawPrice{Units: f64(10), CurrencyCode: "EUR"}

	tests := []struct {
		name string
		seat RawSeat
		want bool
	}{
		{"explicit true", RawSeat{Available: boolPtr(true)}, true},
		{"explicit false", RawSeat{Available: boolPtr(false)}, false},
		{"isAvailable variant", RawSeat{IsAvailable: boolPtr(true)}, true},
		// An explicit boolean outranks a contradicting status string.
		{"explicit false beats AVAILABLE status", RawSeat{Available: boolPtr(false), Status: "AVAILABLE"}, false},
		{"status available", RawSeat{Status: "AVAILABLE"}, true},
		{"status case insensitive", RawSeat{Status: "available"}, true},
		{"status occupied", RawSeat{Status: "OCCUPIED"}, false},
		{"seatAvailability variant", RawSeat{SeatAvailability: "AVAILABLE"}, true},
		// A status string outranks price inference.
		{"blocked status beats price", RawSeat{Status: "BLOCKED", Price: price}, false},
		{"price implies available", RawSeat{Price: price}, true},
		{"no signal", RawSeat{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveAvailability(&tt.seat); got != tt.want {
				t.Errorf("resolveAvailability = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractPriceOrdering(t *testing.T) {
	breakdown := &RawPriceBreakdown{Total: &RawPrice{Units: f64(1)}}
	price := &RawPrice{Units: f64(2)}
	seatPrice := &RawPrice{Units: f64(3)}

	seat := RawSeat{PriceBreakdown: breakdown, Price: price, SeatPrice: seatPrice}
	if got := extractPrice(&seat); got != breakdown.Total {
		t.Errorf("extractPrice = %v, want the breakdown total", got)
	}

	// An invalid earlier source is skipped, not treated as absent pricing.
	seat = RawSeat{PriceBreakdown: &RawPriceBreakdown{Total: &RawPrice{}}, Price: price}
	if got := extractPrice(&seat); got != price {
		t.Errorf("extractPrice = %v, want the price field", got)
	}

	if got := extractPrice(&RawSeat{}); got != nil {
		t.Errorf("extractPrice = %v, want nil for an unpriced seat", got)
	}
}

func TestRawPriceToAmount(t *testing.T) {
	t.Run("units and nanos", func(t *testing.T) {
		p := RawPrice{Units: f64(12), Nanos: f64(500000000), CurrencyCode: "EUR"}
		got := p.ToAmount("GBP")
		if got.Currency != "EUR" || got.Units != 12 || got.Nanos != 500000000 {
			t.Errorf("ToAmount = %+v", got)
		}
	})

	t.Run("float amount", func(t *testing.T) {
		p := RawPrice{Amount: f64(9.99), Currency: "USD"}
		got := p.ToAmount("EUR")
		if got.Currency != "USD" || got.Units != 9 {
			t.Errorf("ToAmount = %+v", got)
		}
	})

	t.Run("defaults currency", func(t *testing.T) {
		p := RawPrice{Units: f64(5)}
		if got := p.ToAmount("EUR"); got.Currency != "EUR" {
			t.Errorf("currency = %q, want EUR", got.Currency)
		}
	})

	t.Run("zero price is valid", func(t *testing.T) {
		p := RawPrice{Units: f64(0)}
		if !p.Valid() {
			t.Error("a zero price must be structurally valid")
		}
	})
}

func TestSelectCabin(t *testing.T) {
	t.Run("class match wins", func(t *testing.T) {
		payload := RawPayload{Cabins: []RawCabin{
			{CabinClass: "ECONOMY", Rows: []RawRow{{ID: f64(1)}}},
			{CabinClass: "BUSINESS", Rows: []RawRow{{ID: f64(2)}}},
		}}
		got := payload.SelectCabin(CabinBusiness)
		if got == nil || got.CabinClass != "BUSINESS" {
			t.Errorf("SelectCabin = %+v, want the business cabin", got)
		}
	})

	t.Run("first cabin when no class matches", func(t *testing.T) {
		payload := RawPayload{Cabins: []RawCabin{
			{Class: "ECONOMY", Rows: []RawRow{{ID: f64(1)}}},
		}}
		if got := payload.SelectCabin(CabinFirst); got != &payload.Cabins[0] {
			t.Errorf("SelectCabin = %+v, want the first cabin", got)
		}
	})

	t.Run("inline cabin", func(t *testing.T) {
		payload := RawPayload{}
		payload.Rows = []RawRow{{ID: f64(1)}}
		if got := payload.SelectCabin(CabinEconomy); got == nil {
			t.Error("inline cabin shape must be selected")
		}
	})

	t.Run("nothing to select", func(t *testing.T) {
		payload := RawPayload{}
		if got := payload.SelectCabin(CabinEconomy); got != nil {
			t.Errorf("SelectCabin = %+v, want nil", got)
		}
	})
}
