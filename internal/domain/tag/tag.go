package tag

import (
	"context"

	"github.com/google/uuid"
)

// Tag is a child row of a project. It has no identity beyond its owning
// project; order among a project's tags is insertion order.
type Tag struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Tag       string
}

type Repository interface {
	// BulkInsert creates one tag row per name for the project and returns
	// the created rows in insertion order.
	BulkInsert(ctx context.Context, projectID uuid.UUID, names []string) ([]Tag, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]Tag, error)
	// ListByProjects returns tags grouped by owning project id.
	ListByProjects(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID][]Tag, error)
	// DeleteByProject removes all tag rows of the project. Zero rows is not
	// an error.
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}
