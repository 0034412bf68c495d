package pharmacy

import "context"

type Repository interface {
	// List returns the full inventory, name-ordered.
	List(ctx context.Context) ([]*Item, error)
}
