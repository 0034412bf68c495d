package identity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a registered person receiving care. DateOfBirth and the contact
// fields are optional at registration time.
type Patient struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	FirstName   string     `db:"first_name" json:"first_name"`
	LastName    string     `db:"last_name" json:"last_name"`
	Gender      string     `db:"gender" json:"gender,omitempty"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Phone       string     `db:"phone" json:"phone,omitempty"`
	Email       string     `db:"email" json:"email,omitempty"`
	Address     string     `db:"address" json:"address,omitempty"`
	BloodType   string     `db:"blood_type" json:"blood_type,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// FullName joins first and last name for display rows.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Doctor is a practitioner, optionally attached to a department.
type Doctor struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	FirstName    string     `db:"first_name" json:"first_name"`
	LastName     string     `db:"last_name" json:"last_name"`
	Specialty    string     `db:"specialty" json:"specialty"`
	DepartmentID *uuid.UUID `db:"department_id" json:"department_id,omitempty"`
	Phone        string     `db:"phone" json:"phone,omitempty"`
	Email        string     `db:"email" json:"email,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

func (d *Doctor) FullName() string {
	return "Dr. " + d.FirstName + " " + d.LastName
}
