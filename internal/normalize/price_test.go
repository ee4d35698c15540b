package normalize

import "testing"

func TestPrice(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantAmount int
		wantFree   bool
	}{
		{"naira symbol with commas", "₦15,000", 15000, false},
		{"naira symbol plain", "₦5000", 5000, false},
		{"ngn code", "NGN 25,000", 25000, false},
		{"currency word", "3,000 naira", 3000, false},
		{"free lowercase", "free", 0, true},
		{"free mixed case", "Free entry", 0, true},
		{"free embedded", "ADMISSION IS FREE", 0, true},
		{"empty defaults to free", "", 0, true},
		{"no digits", "call for price", 0, false},
		{"digits in longer text", "Tickets from ₦2,500 per person", 2500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, free := Price(tt.raw)
			if amount != tt.wantAmount || free != tt.wantFree {
				t.Errorf("Price(%q) = (%d, %v), want (%d, %v)",
					tt.raw, amount, free, tt.wantAmount, tt.wantFree)
			}
		})
	}
}
