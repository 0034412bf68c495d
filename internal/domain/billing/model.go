package billing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BillStatus is the closed set of bill lifecycle states. Values outside the
// set are rejected at the boundary, never silently defaulted.
type BillStatus string

const (
	BillStatusUnpaid        BillStatus = "unpaid"
	BillStatusPaid          BillStatus = "paid"
	BillStatusPartiallyPaid BillStatus = "partially_paid"
	BillStatusVoid          BillStatus = "void"
)

// ParseBillStatus maps a wire value to a BillStatus. The empty string means
// "caller did not choose" and resolves to unpaid.
func ParseBillStatus(s string) (BillStatus, error) {
	switch BillStatus(s) {
	case "":
		return BillStatusUnpaid, nil
	case BillStatusUnpaid, BillStatusPaid, BillStatusPartiallyPaid, BillStatusVoid:
		return BillStatus(s), nil
	default:
		return "", fmt.Errorf("invalid bill status: %s", s)
	}
}

// Bill maps to the bills table. TotalAmount is derived state: it always
// equals the rounded sum of quantity*unit_price over the bill's items and is
// only ever written by the item-append recompute.
type Bill struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	BillNumber  string     `db:"bill_number" json:"bill_number"`
	PatientID   uuid.UUID  `db:"patient_id" json:"patient_id"`
	BillDate    time.Time  `db:"bill_date" json:"bill_date"`
	Currency    string     `db:"currency" json:"currency"`
	TotalAmount float64    `db:"total_amount" json:"total_amount"`
	Status      BillStatus `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// BillItem maps to the billing_items table.
type BillItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	BillID      uuid.UUID `db:"bill_id" json:"bill_id"`
	Description string    `db:"description" json:"description"`
	Quantity    int       `db:"quantity" json:"quantity"`
	UnitPrice   float64   `db:"unit_price" json:"unit_price"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// LineTotal returns the item's contribution to the bill total, unrounded.
func (it *BillItem) LineTotal() float64 {
	return float64(it.Quantity) * it.UnitPrice
}

const (
	MinQuantity = 1
	MaxQuantity = 100000

	DefaultCurrency = "DZD"
)

// RoundAmount rounds a monetary amount to 2 decimal places, half away from
// zero. Matches PostgreSQL ROUND(numeric, 2) so Go-side recomputation (mocks,
// invariant checks) agrees with the SQL aggregate.
func RoundAmount(x float64) float64 {
	return math.Round(x*100) / 100
}

// ClampQuantity forces a quantity into [MinQuantity, MaxQuantity].
// Zero and negative quantities store as MinQuantity.
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// NormalizeCurrency upper-cases and truncates a currency code to 3 letters,
// falling back to DefaultCurrency when empty.
func NormalizeCurrency(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return DefaultCurrency
	}
	if len(s) > 3 {
		s = s[:3]
	}
	return s
}
