package money

import "testing"

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		units int64
		nanos int32
	}{
		{"whole", 42, 42, 0},
		{"half", 12.5, 12, 500000000},
		{"cents", 0.99, 0, 990000000},
		{"zero", 0, 0, 0},
		{"negative", -3.25, -3, -250000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromFloat("USD", tt.value)
			if got.Units != tt.units || got.Nanos != tt.nanos {
				t.Errorf("FromFloat(%v) = %d units, %d nanos; want %d, %d",
					tt.value, got.Units, got.Nanos, tt.units, tt.nanos)
			}
			if got.Currency != "USD" {
				t.Errorf("currency = %q, want USD", got.Currency)
			}
		})
	}
}

func TestAddCarriesNanos(t *testing.T) {
	a := FromUnits("EUR", 1, 700000000)
	b := FromUnits("EUR", 2, 600000000)

	sum := a.Add(b)
	if sum.Units != 4 || sum.Nanos != 300000000 {
		t.Errorf("Add = %d units, %d nanos; want 4, 300000000", sum.Units, sum.Nanos)
	}
}

func TestLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Amount
		want bool
	}{
		{"smaller units", FromUnits("USD", 5, 0), FromUnits("USD", 6, 0), true},
		{"equal units smaller nanos", FromUnits("USD", 5, 100), FromUnits("USD", 5, 200), true},
		{"equal", FromUnits("USD", 5, 0), FromUnits("USD", 5, 0), false},
		{"larger", FromUnits("USD", 7, 0), FromUnits("USD", 5, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("Less = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZeroAndIsZero(t *testing.T) {
	z := Zero("GBP")
	if !z.IsZero() {
		t.Error("Zero amount should report IsZero")
	}
	if FromFloat("GBP", 0.01).IsZero() {
		t.Error("non-zero amount should not report IsZero")
	}
}
