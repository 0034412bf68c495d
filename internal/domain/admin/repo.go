package admin

import (
	"context"
)

type Repository interface {
	// ListDepartments returns every department with its doctor count,
	// already display-shaped.
	ListDepartments(ctx context.Context) ([]DepartmentView, error)

	// ListBeds returns the bed roster with department and occupant names
	// resolved; vacant slots come back as "—".
	ListBeds(ctx context.Context) ([]BedView, error)
}
