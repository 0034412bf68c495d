package scheduling

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const placeholder = "—"

// AppointmentStatus is the closed set of appointment states.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case "":
		return StatusScheduled, nil
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("invalid appointment status: %s", s)
	}
}

// Appointment links a patient to an optional doctor at a point in time.
type Appointment struct {
	ID          uuid.UUID         `db:"id" json:"id"`
	PatientID   uuid.UUID         `db:"patient_id" json:"patient_id"`
	DoctorID    *uuid.UUID        `db:"doctor_id" json:"doctor_id,omitempty"`
	ScheduledAt time.Time         `db:"scheduled_at" json:"scheduled_at"`
	Reason      string            `db:"reason" json:"reason,omitempty"`
	Status      AppointmentStatus `db:"status" json:"status"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
}

// AppointmentView is the display row for GET /api/appointments, with the
// patient and doctor resolved to names.
type AppointmentView struct {
	ID          uuid.UUID         `json:"id"`
	Patient     string            `json:"patient"`
	Doctor      string            `json:"doctor"`
	ScheduledAt time.Time         `json:"scheduled_at"`
	Reason      string            `json:"reason"`
	Status      AppointmentStatus `json:"status"`
}

// DayFilter selects which appointments to list.
type DayFilter string

const (
	DayToday DayFilter = "today"
	DayAll   DayFilter = "all"
)

// ParseDayFilter maps the ?day= query value. Empty means today; anything
// other than "all" also falls back to today, matching the dashboard's
// default card.
func ParseDayFilter(s string) DayFilter {
	if s == string(DayAll) {
		return DayAll
	}
	return DayToday
}
