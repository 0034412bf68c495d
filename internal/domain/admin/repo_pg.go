package admin

import (
	"context"

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

func (r *repoPG) ListDepartments(ctx context.Context) ([]DepartmentView, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT d.id, d.name, d.description, d.floor, d.created_at, COUNT(doc.id)
		FROM departments d
		LEFT JOIN doctors doc ON doc.department_id = d.id
		GROUP BY d.id
		ORDER BY d.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DepartmentView
	for rows.Next() {
		var d Department
		var count int
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Floor, &d.CreatedAt, &count); err != nil {
			return nil, err
		}
		out = append(out, d.View(count))
	}
	return out, rows.Err()
}

func (r *repoPG) ListBeds(ctx context.Context) ([]BedView, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT b.id, b.bed_number, b.status,
		       d.name,
		       p.first_name, p.last_name
		FROM beds b
		LEFT JOIN departments d ON d.id = b.department_id
		LEFT JOIN patients p ON p.id = b.patient_id
		ORDER BY b.bed_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BedView
	for rows.Next() {
		var v BedView
		var dept, first, last *string
		if err := rows.Scan(&v.ID, &v.BedNumber, &v.Status, &dept, &first, &last); err != nil {
			return nil, err
		}
		v.Department = placeholder
		if dept != nil {
			v.Department = *dept
		}
		v.Patient = placeholder
		if first != nil && last != nil {
			v.Patient = *first + " " + *last
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
