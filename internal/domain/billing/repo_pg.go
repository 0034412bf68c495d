package billing

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

const billCols = `id, bill_number, patient_id, bill_date, currency, total_amount, status, created_at`

func scanBill(row pgx.Row) (*Bill, error) {
	var b Bill
	err := row.Scan(&b.ID, &b.BillNumber, &b.PatientID, &b.BillDate,
		&b.Currency, &b.TotalAmount, &b.Status, &b.CreatedAt)
	return &b, err
}

func (r *repoPG) CreateBill(ctx context.Context, b *Bill) error {
	b.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO bills (id, bill_number, patient_id, bill_date, currency, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, 0, $6)`,
		b.ID, b.BillNumber, b.PatientID, b.BillDate, b.Currency, b.Status)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation
			return ErrPatientNotFound
		case "23505": // unique_violation
			return ErrDuplicateBillNumber
		}
	}
	return err
}

func (r *repoPG) GetBill(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return scanBill(r.conn(ctx).QueryRow(ctx, `SELECT `+billCols+` FROM bills WHERE id = $1`, id))
}

func (r *repoPG) ListBills(ctx context.Context, limit, offset int) ([]*Bill, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM bills`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+billCols+` FROM bills ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var bills []*Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, 0, err
		}
		bills = append(bills, b)
	}
	return bills, total, rows.Err()
}

// AddItem inserts the item and recomputes the owning bill's total inside one
// transaction. The bill row is locked first, so concurrent appends to the
// same bill serialize on the lock while appends to different bills proceed
// in parallel.
func (r *repoPG) AddItem(ctx context.Context, item *BillItem) (float64, error) {
	item.ID = uuid.New()
	var total float64

	err := db.WithTx(ctx, r.pool, func(ctx context.Context) error {
		q := r.conn(ctx)

		var billID uuid.UUID
		if err := q.QueryRow(ctx, `SELECT id FROM bills WHERE id = $1 FOR UPDATE`, item.BillID).Scan(&billID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrBillNotFound
			}
			return err
		}

		if _, err := q.Exec(ctx, `
			INSERT INTO billing_items (id, bill_id, description, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.BillID, item.Description, item.Quantity, item.UnitPrice); err != nil {
			return err
		}

		// Full re-sum over the bill's items, not an incremental add: the
		// stored total always reflects what is actually in the table.
		return q.QueryRow(ctx, `
			UPDATE bills SET total_amount = (
				SELECT COALESCE(ROUND(SUM(quantity * unit_price), 2), 0)
				FROM billing_items WHERE bill_id = $1
			)
			WHERE id = $1
			RETURNING total_amount`, item.BillID).Scan(&total)
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *repoPG) ListItems(ctx context.Context, billID uuid.UUID) ([]*BillItem, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, bill_id, description, quantity, unit_price, created_at
		FROM billing_items WHERE bill_id = $1 ORDER BY created_at`, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*BillItem
	for rows.Next() {
		var it BillItem
		if err := rows.Scan(&it.ID, &it.BillID, &it.Description, &it.Quantity, &it.UnitPrice, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
