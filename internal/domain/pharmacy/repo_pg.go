package pharmacy

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) List(ctx context.Context) ([]*Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, category, quantity, unit, status, expiry_date, created_at
		FROM pharmacy_items ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Quantity,
			&it.Unit, &it.Status, &it.ExpiryDate, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}
