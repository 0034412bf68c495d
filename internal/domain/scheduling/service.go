package scheduling

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalops/hospitalops/internal/platform/web"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateAppointmentInput is the POST /api/appointments payload.
type CreateAppointmentInput struct {
	PatientID   uuid.UUID  `json:"patient_id"`
	DoctorID    *uuid.UUID `json:"doctor_id"`
	ScheduledAt string     `json:"scheduled_at"` // RFC 3339
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
}

func (s *Service) Create(ctx context.Context, in CreateAppointmentInput) (*Appointment, error) {
	if in.PatientID == uuid.Nil {
		return nil, web.Invalid("patient_id is required")
	}
	if in.ScheduledAt == "" {
		return nil, web.Invalid("scheduled_at is required")
	}
	when, err := time.Parse(time.RFC3339, in.ScheduledAt)
	if err != nil {
		return nil, web.Invalid("scheduled_at must be RFC 3339")
	}
	status, err := ParseAppointmentStatus(in.Status)
	if err != nil {
		return nil, web.Invalid("%s", err)
	}

	a := &Appointment{
		PatientID:   in.PatientID,
		DoctorID:    in.DoctorID,
		ScheduledAt: when,
		Reason:      strings.TrimSpace(in.Reason),
		Status:      status,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, day DayFilter) ([]AppointmentView, error) {
	return s.repo.List(ctx, day)
}
