package scheduling

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospitalops/hospitalops/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO appointments (id, patient_id, doctor_id, scheduled_at, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.PatientID, a.DoctorID, a.ScheduledAt, a.Reason, a.Status)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		if pgErr.ConstraintName == "appointments_doctor_id_fkey" {
			return ErrDoctorNotFound
		}
		return ErrPatientNotFound
	}
	return err
}

func (r *repoPG) List(ctx context.Context, day DayFilter) ([]AppointmentView, error) {
	query := `
		SELECT a.id, a.scheduled_at, a.reason, a.status,
		       p.first_name, p.last_name,
		       doc.first_name, doc.last_name
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		LEFT JOIN doctors doc ON doc.id = a.doctor_id`
	if day == DayToday {
		query += `
		WHERE a.scheduled_at::date = CURRENT_DATE`
	}
	query += `
		ORDER BY a.scheduled_at`

	rows, err := r.conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AppointmentView
	for rows.Next() {
		var v AppointmentView
		var patFirst, patLast string
		var docFirst, docLast *string
		if err := rows.Scan(&v.ID, &v.ScheduledAt, &v.Reason, &v.Status,
			&patFirst, &patLast, &docFirst, &docLast); err != nil {
			return nil, err
		}
		v.Patient = patFirst + " " + patLast
		v.Doctor = placeholder
		if docFirst != nil && docLast != nil {
			v.Doctor = "Dr. " + *docFirst + " " + *docLast
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
