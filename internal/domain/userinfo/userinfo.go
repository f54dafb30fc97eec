package userinfo

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserInfo is the singleton personal-info row. At most one row exists; the
// first PUT creates it and later PUTs modify that same row in place.
type UserInfo struct {
	ID        uuid.UUID
	FullName  string
	JobTitle  string
	Email     string
	Phone     string
	Location  string
	BirthDate string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository interface {
	// Find returns the current row, or nil (no error) when none exists yet.
	Find(ctx context.Context) (*UserInfo, error)
	Create(ctx context.Context, u *UserInfo) error
	Update(ctx context.Context, u *UserInfo) error
}
