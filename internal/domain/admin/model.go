package admin

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// placeholder fills null display fields in list views.
const placeholder = "—"

// Department groups doctors and beds.
type Department struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description,omitempty"`
	Floor       *int      `db:"floor" json:"floor,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// DepartmentView is the display shape for GET /api/departments.
type DepartmentView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Floor       string    `json:"floor"`
	DoctorCount int       `json:"doctor_count"`
}

// View maps a department to its display row, with "—" for missing fields.
func (d *Department) View(doctorCount int) DepartmentView {
	v := DepartmentView{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Floor:       placeholder,
		DoctorCount: doctorCount,
	}
	if v.Description == "" {
		v.Description = placeholder
	}
	if d.Floor != nil {
		v.Floor = fmt.Sprintf("%d", *d.Floor)
	}
	return v
}

// BedStatus is the closed set of bed states.
type BedStatus string

const (
	BedStatusAvailable   BedStatus = "available"
	BedStatusOccupied    BedStatus = "occupied"
	BedStatusMaintenance BedStatus = "maintenance"
)

func ParseBedStatus(s string) (BedStatus, error) {
	switch BedStatus(s) {
	case "":
		return BedStatusAvailable, nil
	case BedStatusAvailable, BedStatusOccupied, BedStatusMaintenance:
		return BedStatus(s), nil
	default:
		return "", fmt.Errorf("invalid bed status: %s", s)
	}
}

// Bed is a physical bed. PatientID is nil when the bed is vacant.
type Bed struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	BedNumber    string     `db:"bed_number" json:"bed_number"`
	DepartmentID *uuid.UUID `db:"department_id" json:"department_id,omitempty"`
	PatientID    *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	Status       BedStatus  `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// BedView is the display shape for GET /api/beds: the roster row with the
// department and occupant resolved to names.
type BedView struct {
	ID         uuid.UUID `json:"id"`
	BedNumber  string    `json:"bed_number"`
	Department string    `json:"department"`
	Patient    string    `json:"patient"`
	Status     BedStatus `json:"status"`
}
