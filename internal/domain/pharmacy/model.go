package pharmacy

import (
	"time"

	"github.com/google/uuid"
)

const placeholder = "—"

// StockStatus is the closed set of inventory states.
type StockStatus string

const (
	StatusInStock    StockStatus = "in_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusOutOfStock StockStatus = "out_of_stock"
)

// statusLabels maps stored statuses to the dashboard's display strings.
var statusLabels = map[StockStatus]string{
	StatusInStock:    "In stock",
	StatusLowStock:   "Low stock",
	StatusOutOfStock: "Out of stock",
}

// Label returns the display string for a status. Unknown values pass
// through unchanged rather than crashing the list view.
func (s StockStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Item is one pharmacy inventory row.
type Item struct {
	ID         uuid.UUID   `db:"id" json:"id"`
	Name       string      `db:"name" json:"name"`
	Category   *string     `db:"category" json:"category,omitempty"`
	Quantity   int         `db:"quantity" json:"quantity"`
	Unit       *string     `db:"unit" json:"unit,omitempty"`
	Status     StockStatus `db:"status" json:"status"`
	ExpiryDate *time.Time  `db:"expiry_date" json:"expiry_date,omitempty"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
}

// ItemView is the display row for GET /api/pharmacy.
type ItemView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Quantity int       `json:"quantity"`
	Unit     string    `json:"unit"`
	Status   string    `json:"status"`
	Expiry   string    `json:"expiry"`
}

// View maps an item to its display row: status label applied, nulls
// replaced with "—".
func (it *Item) View() ItemView {
	v := ItemView{
		ID:       it.ID,
		Name:     it.Name,
		Category: placeholder,
		Quantity: it.Quantity,
		Unit:     placeholder,
		Status:   it.Status.Label(),
		Expiry:   placeholder,
	}
	if it.Category != nil && *it.Category != "" {
		v.Category = *it.Category
	}
	if it.Unit != nil && *it.Unit != "" {
		v.Unit = *it.Unit
	}
	if it.ExpiryDate != nil {
		v.Expiry = it.ExpiryDate.Format("2006-01-02")
	}
	return v
}
