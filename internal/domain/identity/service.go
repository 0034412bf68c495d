package identity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalops/hospitalops/internal/platform/web"
)

type Service struct {
	patients PatientRepository
	doctors  DoctorRepository
}

func NewService(patients PatientRepository, doctors DoctorRepository) *Service {
	return &Service{patients: patients, doctors: doctors}
}

var validGenders = map[string]bool{
	"": true, "male": true, "female": true, "other": true,
}

// CreatePatientInput is the POST /api/patients payload.
type CreatePatientInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
	BloodType   string `json:"blood_type"`
}

func (s *Service) CreatePatient(ctx context.Context, in CreatePatientInput) (*Patient, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return nil, web.Invalid("first_name and last_name are required")
	}
	gender := strings.ToLower(strings.TrimSpace(in.Gender))
	if !validGenders[gender] {
		return nil, web.Invalid("invalid gender: %s", in.Gender)
	}

	var dob *time.Time
	if in.DateOfBirth != "" {
		t, err := time.Parse("2006-01-02", in.DateOfBirth)
		if err != nil {
			return nil, web.Invalid("date_of_birth must be YYYY-MM-DD")
		}
		dob = &t
	}

	p := &Patient{
		FirstName:   first,
		LastName:    last,
		Gender:      gender,
		DateOfBirth: dob,
		Phone:       strings.TrimSpace(in.Phone),
		Email:       strings.TrimSpace(in.Email),
		Address:     strings.TrimSpace(in.Address),
		BloodType:   strings.ToUpper(strings.TrimSpace(in.BloodType)),
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}

// CreateDoctorInput is the POST /api/doctors payload.
type CreateDoctorInput struct {
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Specialty    string     `json:"specialty"`
	DepartmentID *uuid.UUID `json:"department_id"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email" validate:"omitempty,email"`
}

func (s *Service) CreateDoctor(ctx context.Context, in CreateDoctorInput) (*Doctor, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return nil, web.Invalid("first_name and last_name are required")
	}
	specialty := strings.TrimSpace(in.Specialty)
	if specialty == "" {
		return nil, web.Invalid("specialty is required")
	}

	d := &Doctor{
		FirstName:    first,
		LastName:     last,
		Specialty:    specialty,
		DepartmentID: in.DepartmentID,
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
	}
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, limit, offset)
}
