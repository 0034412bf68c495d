package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospitalops/hospitalops/internal/platform/web"
)

// Referential failures surfaced by the repository. Both are validation
// errors from the caller's point of view: the request named a row that is
// not there.
var (
	ErrPatientNotFound     = web.Invalid("patient not found")
	ErrBillNotFound        = web.Invalid("bill not found")
	ErrDuplicateBillNumber = web.Invalid("bill number already exists")
)

type Repository interface {
	// CreateBill inserts a bill with total_amount 0. Returns
	// ErrPatientNotFound if the patient reference is dangling and
	// ErrDuplicateBillNumber on a bill_number collision.
	CreateBill(ctx context.Context, b *Bill) error
	GetBill(ctx context.Context, id uuid.UUID) (*Bill, error)
	ListBills(ctx context.Context, limit, offset int) ([]*Bill, int, error)

	// AddItem appends an item and recomputes the owning bill's total as one
	// linearizable operation: concurrent appends to the same bill must not
	// observe a stale total. Returns the recomputed total. Returns
	// ErrBillNotFound if the bill does not exist.
	AddItem(ctx context.Context, item *BillItem) (float64, error)

	// ListItems returns the items of a bill, oldest first. An unknown bill
	// id yields an empty slice, not an error.
	ListItems(ctx context.Context, billID uuid.UUID) ([]*BillItem, error)
}
