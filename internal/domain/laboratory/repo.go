package laboratory

import "context"

type Repository interface {
	// List returns display-shaped lab tests, newest first, with the
	// patient resolved to a name and pending results shown as "—".
	List(ctx context.Context) ([]TestView, error)
}
