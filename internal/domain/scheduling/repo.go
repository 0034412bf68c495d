package scheduling

import (
	"context"

	"github.com/hospitalops/hospitalops/internal/platform/web"
)

var (
	ErrPatientNotFound = web.Invalid("patient not found")
	ErrDoctorNotFound  = web.Invalid("doctor not found")
)

type Repository interface {
	// Create returns ErrPatientNotFound or ErrDoctorNotFound when the
	// referenced rows are missing.
	Create(ctx context.Context, a *Appointment) error

	// List returns display-shaped appointments, soonest first. DayToday
	// restricts to appointments scheduled on the current date.
	List(ctx context.Context, day DayFilter) ([]AppointmentView, error)
}
