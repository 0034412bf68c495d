package billing

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalops/hospitalops/internal/platform/web"
)

type Service struct {
	repo Repository
	seq  uint64 // bill number sequence, see nextBillNumber
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateBillInput is the POST /api/billing payload.
type CreateBillInput struct {
	PatientID  uuid.UUID `json:"patient_id"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	BillNumber string    `json:"bill_number"`
	BillDate   string    `json:"bill_date"` // YYYY-MM-DD, defaults to today
}

func (s *Service) CreateBill(ctx context.Context, in CreateBillInput) (*Bill, error) {
	if in.PatientID == uuid.Nil {
		return nil, web.Invalid("patient_id is required")
	}

	status, err := ParseBillStatus(in.Status)
	if err != nil {
		return nil, web.Invalid("%s", err)
	}

	billDate := time.Now()
	if in.BillDate != "" {
		billDate, err = time.Parse("2006-01-02", in.BillDate)
		if err != nil {
			return nil, web.Invalid("bill_date must be YYYY-MM-DD")
		}
	}

	number := strings.TrimSpace(in.BillNumber)
	if number == "" {
		number = s.nextBillNumber(time.Now())
	}

	b := &Bill{
		BillNumber: number,
		PatientID:  in.PatientID,
		BillDate:   billDate,
		Currency:   NormalizeCurrency(in.Currency),
		Status:     status,
	}
	if err := s.repo.CreateBill(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// nextBillNumber generates BILL-<year>-<6 digits>. The suffix mixes the
// current time with an atomic counter, so bills created in the same process
// tick still receive distinct numbers.
func (s *Service) nextBillNumber(now time.Time) string {
	suffix := (uint64(now.UnixMicro()) + atomic.AddUint64(&s.seq, 1)) % 1000000
	return fmt.Sprintf("BILL-%d-%06d", now.Year(), suffix)
}

// AddItemInput is the POST /api/billing/items payload. Quantity is a float
// on the wire and coerced to an integer, matching the form-driven clients.
type AddItemInput struct {
	BillID      uuid.UUID `json:"bill_id"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
}

// AddItem validates the input, appends the item, and returns it together
// with the recomputed bill total.
func (s *Service) AddItem(ctx context.Context, in AddItemInput) (*BillItem, float64, error) {
	if in.BillID == uuid.Nil {
		return nil, 0, web.Invalid("bill_id is required")
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, 0, web.Invalid("description is required")
	}
	if math.IsNaN(in.UnitPrice) || math.IsInf(in.UnitPrice, 0) || in.UnitPrice < 0 {
		return nil, 0, web.Invalid("unit_price must be a finite number >= 0")
	}

	item := &BillItem{
		BillID:      in.BillID,
		Description: desc,
		Quantity:    ClampQuantity(int(in.Quantity)),
		UnitPrice:   in.UnitPrice,
	}
	total, err := s.repo.AddItem(ctx, item)
	if err != nil {
		return nil, 0, err
	}
	return item, total, nil
}

func (s *Service) GetBill(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return s.repo.GetBill(ctx, id)
}

func (s *Service) ListBills(ctx context.Context, limit, offset int) ([]*Bill, int, error) {
	return s.repo.ListBills(ctx, limit, offset)
}

func (s *Service) ListItems(ctx context.Context, billID uuid.UUID) ([]*BillItem, error) {
	return s.repo.ListItems(ctx, billID)
}
