package skill

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Skill is one entry of the ordered skills collection. Category is a
// free-text grouping label, Icon a display glyph. SortOrder is assigned at
// creation and never reassigned; deletes leave gaps.
type Skill struct {
	ID        uuid.UUID
	Name      string
	Category  string
	Icon      string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository interface {
	// List returns all skills ordered by sort order ascending.
	List(ctx context.Context) ([]*Skill, error)
	// MaxSortOrder returns the highest assigned sort order, 0 when empty.
	MaxSortOrder(ctx context.Context) (int, error)
	Save(ctx context.Context, s *Skill) error
	// Delete removes the row if present. A missing id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
