package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospitalops/hospitalops/internal/platform/web"
)

var (
	ErrPatientNotFound    = web.Invalid("patient not found")
	ErrDoctorNotFound     = web.Invalid("doctor not found")
	ErrDepartmentNotFound = web.Invalid("department not found")
)

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
}

type DoctorRepository interface {
	// Create returns ErrDepartmentNotFound when department_id references
	// no department.
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	List(ctx context.Context, limit, offset int) ([]*Doctor, int, error)
}
