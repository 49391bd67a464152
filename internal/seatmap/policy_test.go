package seatmap

import "testing"

func TestIsSelectable(t *testing.T) {
	tests := []struct {
		name       string
		available  bool
		hasPrice   bool
		class      CabinClass
		isBulkhead bool
		want       bool
	}{
		{"unavailable is never selectable", false, true, CabinBusiness, false, false},
		{"economy with price", true, true, CabinEconomy, false, true},
		{"economy without price", true, false, CabinEconomy, false, false},
		{"premium economy without price", true, false, CabinPremiumEconomy, false, false},
		{"premium economy with price", true, true, CabinPremiumEconomy, false, true},
		{"business without price", true, false, CabinBusiness, false, true},
		{"first without price", true, false, CabinFirst, false, true},
		{"economy bulkhead without price", true, false, CabinEconomy, true, false},
		{"economy bulkhead with price", true, true, CabinEconomy, true, true},
		{"business bulkhead without price", true, false, CabinBusiness, true, true},
		{"first bulkhead without price", true, false, CabinFirst, true, true},
		{"unavailable bulkhead business", false, false, CabinBusiness, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSelectable(tt.available, tt.hasPrice, tt.class, tt.isBulkhead); got != tt.want {
				t.Errorf("IsSelectable(%v, %v, %s, %v) = %v, want %v",
					tt.available, tt.hasPrice, tt.class, tt.isBulkhead, got, tt.want)
			}
		})
	}
}

func TestParseCabinClass(t *testing.T) {
	tests := []struct {
		in   string
		want CabinClass
	}{
		{"ECONOMY", CabinEconomy},
		{"business", CabinBusiness},
		{" First ", CabinFirst},
		{"PREMIUM_ECONOMY", CabinPremiumEconomy},
		{"COACH", CabinEconomy},
		{"", CabinEconomy},
	}

	for _, tt := range tests {
		if got := ParseCabinClass(tt.in); got != tt.want {
			t.Errorf("ParseCabinClass(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
