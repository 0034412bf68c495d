package laboratory

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) List(ctx context.Context) ([]TestView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.test_name, t.status, t.result, t.created_at,
		       p.first_name, p.last_name
		FROM lab_tests t
		JOIN patients p ON p.id = t.patient_id
		ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TestView
	for rows.Next() {
		var v TestView
		var status TestStatus
		var result *string
		var created time.Time
		var first, last string
		if err := rows.Scan(&v.ID, &v.TestName, &status, &result, &created, &first, &last); err != nil {
			return nil, err
		}
		v.Patient = first + " " + last
		v.Status = status.Label()
		v.Result = placeholder
		if result != nil && *result != "" {
			v.Result = *result
		}
		v.Ordered = created.Format("2006-01-02")
		out = append(out, v)
	}
	return out, rows.Err()
}
