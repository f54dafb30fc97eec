package experience

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Experience is one work-experience entry. StartDate and EndDate are plain
// date strings as entered by the admin, not parsed timestamps.
type Experience struct {
	ID          uuid.UUID
	Title       string
	Company     string
	Description string
	IsCurrent   bool
	StartDate   *string
	EndDate     *string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Repository interface {
	List(ctx context.Context) ([]*Experience, error)
	MaxSortOrder(ctx context.Context) (int, error)
	Save(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
}
