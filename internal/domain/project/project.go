package project

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Project is one portfolio project. Its tag rows live in the tag package;
// the store does not cascade, so deleting a project must remove its tags
// first at the application layer.
type Project struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Description string
	URL         *string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Repository interface {
	List(ctx context.Context) ([]*Project, error)
	MaxSortOrder(ctx context.Context) (int, error)
	Save(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}
