package dashboard

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Stats feeds the dashboard cards.
type Stats struct {
	Patients          int `json:"patients"`
	Doctors           int `json:"doctors"`
	AppointmentsToday int `json:"appointments_today"`
	Departments       int `json:"departments"`
	AvailableBeds     int `json:"available_beds"`
	PendingLabTests   int `json:"pending_lab_tests"`
	UnpaidBills       int `json:"unpaid_bills"`
}

type Repository interface {
	Stats(ctx context.Context) (*Stats, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

// Stats gathers every card count in one round trip.
func (r *repoPG) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM patients),
			(SELECT COUNT(*) FROM doctors),
			(SELECT COUNT(*) FROM appointments WHERE scheduled_at::date = CURRENT_DATE),
			(SELECT COUNT(*) FROM departments),
			(SELECT COUNT(*) FROM beds WHERE status = 'available'),
			(SELECT COUNT(*) FROM lab_tests WHERE status = 'pending'),
			(SELECT COUNT(*) FROM bills WHERE status = 'unpaid')`).
		Scan(&s.Patients, &s.Doctors, &s.AppointmentsToday, &s.Departments,
			&s.AvailableBeds, &s.PendingLabTests, &s.UnpaidBills)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
