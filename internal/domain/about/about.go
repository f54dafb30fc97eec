package about

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// About is the singleton about-section row, same get-or-create lifecycle as
// userinfo.UserInfo.
type About struct {
	ID         uuid.UUID
	MainIntro  string
	Paragraph1 string
	Paragraph2 string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Repository interface {
	Find(ctx context.Context) (*About, error)
	Create(ctx context.Context, a *About) error
	Update(ctx context.Context, a *About) error
}
