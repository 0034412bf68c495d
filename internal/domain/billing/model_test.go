package billing

import (
	"testing"
)

func TestParseBillStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    BillStatus
		wantErr bool
	}{
		{"", BillStatusUnpaid, false},
		{"unpaid", BillStatusUnpaid, false},
		{"paid", BillStatusPaid, false},
		{"partially_paid", BillStatusPartiallyPaid, false},
		{"void", BillStatusVoid, false},
		{"Paid", "", true},
		{"overdue", "", true},
		{"deleted'; --", "", true},
	}
	for _, tt := range tests {
		got, err := ParseBillStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBillStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBillStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.234, 1.23},
		{1.235, 1.24},
		{200.01, 200.01},
		// Two items at 100.005 each: the sum rounds half away from zero.
		{2 * 100.005, 200.01},
		{-1.005, -1.01},
	}
	for _, tt := range tests {
		if got := RoundAmount(tt.in); got != tt.want {
			t.Errorf("RoundAmount(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, MinQuantity},
		{0, MinQuantity},
		{1, 1},
		{42, 42},
		{MaxQuantity, MaxQuantity},
		{MaxQuantity + 1, MaxQuantity},
	}
	for _, tt := range tests {
		if got := ClampQuantity(tt.in); got != tt.want {
			t.Errorf("ClampQuantity(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", DefaultCurrency},
		{"  ", DefaultCurrency},
		{"usd", "USD"},
		{"EUR", "EUR"},
		{"euros", "EUR"},
	}
	for _, tt := range tests {
		if got := NormalizeCurrency(tt.in); got != tt.want {
			t.Errorf("NormalizeCurrency(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLineTotal(t *testing.T) {
	it := &BillItem{Quantity: 3, UnitPrice: 12.5}
	if got := it.LineTotal(); got != 37.5 {
		t.Errorf("LineTotal() = %v, want 37.5", got)
	}
}
