package billing

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalops/hospitalops/internal/platform/web"
)

// mockRepo is an in-memory Repository that mirrors the store's contract,
// including the atomic recompute on AddItem.
type mockRepo struct {
	mu       sync.Mutex
	bills    map[uuid.UUID]*Bill
	items    map[uuid.UUID][]*BillItem
	patients map[uuid.UUID]bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		bills:    make(map[uuid.UUID]*Bill),
		items:    make(map[uuid.UUID][]*BillItem),
		patients: make(map[uuid.UUID]bool),
	}
}

func (m *mockRepo) addPatient() uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.patients[id] = true
	return id
}

func (m *mockRepo) CreateBill(_ context.Context, b *Bill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.patients[b.PatientID] {
		return ErrPatientNotFound
	}
	for _, existing := range m.bills {
		if existing.BillNumber == b.BillNumber {
			return ErrDuplicateBillNumber
		}
	}
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	cp := *b
	m.bills[b.ID] = &cp
	return nil
}

func (m *mockRepo) GetBill(_ context.Context, id uuid.UUID) (*Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bills[id]
	if !ok {
		return nil, ErrBillNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *mockRepo) ListBills(_ context.Context, limit, offset int) ([]*Bill, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*Bill, 0, len(m.bills))
	for _, b := range m.bills {
		cp := *b
		all = append(all, &cp)
	}
	total := len(all)
	if offset > len(all) {
		offset = len(all)
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (m *mockRepo) AddItem(_ context.Context, item *BillItem) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bill, ok := m.bills[item.BillID]
	if !ok {
		return 0, ErrBillNotFound
	}
	item.ID = uuid.New()
	item.CreatedAt = time.Now()
	cp := *item
	m.items[item.BillID] = append(m.items[item.BillID], &cp)

	var sum float64
	for _, it := range m.items[item.BillID] {
		sum += it.LineTotal()
	}
	bill.TotalAmount = RoundAmount(sum)
	return bill.TotalAmount, nil
}

func (m *mockRepo) ListItems(_ context.Context, billID uuid.UUID) ([]*BillItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*BillItem, 0, len(m.items[billID]))
	for _, it := range m.items[billID] {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func TestCreateBill(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	patientID := repo.addPatient()

	bill, err := svc.CreateBill(context.Background(), CreateBillInput{
		PatientID: patientID,
		Currency:  "usd",
	})
	if err != nil {
		t.Fatalf("CreateBill() error = %v", err)
	}
	if bill.Status != BillStatusUnpaid {
		t.Errorf("default status = %q, want unpaid", bill.Status)
	}
	if bill.Currency != "USD" {
		t.Errorf("currency = %q, want USD", bill.Currency)
	}
	if bill.TotalAmount != 0 {
		t.Errorf("new bill total = %v, want 0", bill.TotalAmount)
	}
	if !strings.HasPrefix(bill.BillNumber, fmt.Sprintf("BILL-%d-", time.Now().Year())) {
		t.Errorf("bill number %q missing BILL-<year>- prefix", bill.BillNumber)
	}
}

func TestCreateBillValidation(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	patientID := repo.addPatient()

	tests := []struct {
		name string
		in   CreateBillInput
	}{
		{"missing patient", CreateBillInput{}},
		{"unknown patient", CreateBillInput{PatientID: uuid.New()}},
		{"bad status", CreateBillInput{PatientID: patientID, Status: "overdue"}},
		{"bad date", CreateBillInput{PatientID: patientID, BillDate: "25/08/2026"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateBill(context.Background(), tt.in); !web.IsValidation(err) {
				t.Errorf("CreateBill() error = %v, want validation error", err)
			}
		})
	}
}

func TestCreateBillNumbersDistinct(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	patientID := repo.addPatient()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		bill, err := svc.CreateBill(context.Background(), CreateBillInput{PatientID: patientID})
		if err != nil {
			t.Fatalf("CreateBill() #%d error = %v", i, err)
		}
		if seen[bill.BillNumber] {
			t.Fatalf("duplicate bill number %q", bill.BillNumber)
		}
		seen[bill.BillNumber] = true
	}
}

func TestAddItem(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	patientID := repo.addPatient()
	bill, err := svc.CreateBill(context.Background(), CreateBillInput{PatientID: patientID})
	if err != nil {
		t.Fatalf("CreateBill() error = %v", err)
	}

	item, total, err := svc.AddItem(context.Background(), AddItemInput{
		BillID:      bill.ID,
		Description: "  X-ray, chest  ",
		Quantity:    2,
		UnitPrice:   150.25,
	})
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if item.Description != "X-ray, chest" {
		t.Errorf("description = %q, want trimmed", item.Description)
	}
	if total != 300.5 {
		t.Errorf("total = %v, want 300.5", total)
	}

	// Zero quantity is stored as 1, not rejected.
	_, total, err = svc.AddItem(context.Background(), AddItemInput{
		BillID:      bill.ID,
		Description: "Consultation",
		Quantity:    0,
		UnitPrice:   99.5,
	})
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if total != 400.0 {
		t.Errorf("total = %v, want 400.0", total)
	}

	// A zero unit price is valid and leaves the total unchanged.
	_, total, err = svc.AddItem(context.Background(), AddItemInput{
		BillID:      bill.ID,
		Description: "Complimentary supplies",
		Quantity:    3,
		UnitPrice:   0,
	})
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if total != 400.0 {
		t.Errorf("total = %v, want 400.0", total)
	}
}

func TestAddItemRounding(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	patientID := repo.addPatient()
	bill, _ := svc.CreateBill(context.Background(), CreateBillInput{PatientID: patientID})

	var total float64
	for i := 0; i < 2; i++ {
		var err error
		_, total, err = svc.AddItem(context.Background(), AddItemInput{
			BillID:      bill.ID,
			Description: "Dressing",
			Quantity:    1,
			UnitPrice:   100.005,
		})
		if err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}
	}
	// The total is the rounded sum, not the sum of rounded lines.
	if total != 200.01 {
		t.Errorf("total = %v, want 200.01", total)
	}
}

func TestAddItemValidation(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	patientID := repo.addPatient()
	bill, _ := svc.CreateBill(context.Background(), CreateBillInput{PatientID: patientID})

	tests := []struct {
		name string
		in   AddItemInput
	}{
		{"missing bill", AddItemInput{Description: "x", UnitPrice: 1}},
		{"unknown bill", AddItemInput{BillID: uuid.New(), Description: "x", UnitPrice: 1}},
		{"blank description", AddItemInput{BillID: bill.ID, Description: "   ", UnitPrice: 1}},
		{"negative price", AddItemInput{BillID: bill.ID, Description: "x", UnitPrice: -0.01}},
		{"NaN price", AddItemInput{BillID: bill.ID, Description: "x", UnitPrice: math.NaN()}},
		{"Inf price", AddItemInput{BillID: bill.ID, Description: "x", UnitPrice: math.Inf(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.AddItem(context.Background(), tt.in); !web.IsValidation(err) {
				t.Errorf("AddItem() error = %v, want validation error", err)
			}
		})
	}
}

// Concurrent appends to one bill must never lose an item's contribution:
// the final total equals the rounded sum over everything appended.
func TestAddItemConcurrent(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	patientID := repo.addPatient()
	bill, err := svc.CreateBill(context.Background(), CreateBillInput{PatientID: patientID})
	if err != nil {
		t.Fatalf("CreateBill() error = %v", err)
	}

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := svc.AddItem(context.Background(), AddItemInput{
				BillID:      bill.ID,
				Description: fmt.Sprintf("procedure %d", i),
				Quantity:    float64(i%3 + 1),
				UnitPrice:   9.99,
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}
	}

	items, err := svc.ListItems(context.Background(), bill.ID)
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(items) != n {
		t.Fatalf("len(items) = %d, want %d", len(items), n)
	}
	var sum float64
	for _, it := range items {
		sum += it.LineTotal()
	}
	got, err := svc.GetBill(context.Background(), bill.ID)
	if err != nil {
		t.Fatalf("GetBill() error = %v", err)
	}
	if got.TotalAmount != RoundAmount(sum) {
		t.Errorf("total = %v, want %v", got.TotalAmount, RoundAmount(sum))
	}
}
