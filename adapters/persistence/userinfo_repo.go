package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ojunaidi/portfolio/internal/domain/userinfo"
	"github.com/ojunaidi/portfolio/pkg/apperror"
	"github.com/ojunaidi/portfolio/pkg/logger"
)

type postgresUserInfoRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresUserInfoRepo(db *pgxpool.Pool, logger logger.Logger) userinfo.Repository {
	return &postgresUserInfoRepo{db: db, logger: logger}
}

func (r *postgresUserInfoRepo) Find(ctx context.Context) (*userinfo.UserInfo, error) {
	query := `
		SELECT id, full_name, job_title, email, phone, location, birth_date, created_at, updated_at
		FROM user_info
		LIMIT 1
	`
	u := &userinfo.UserInfo{}
	err := r.db.QueryRow(ctx, query).Scan(
		&u.ID,
		&u.FullName,
		&u.JobTitle,
		&u.Email,
		&u.Phone,
		&u.Location,
		&u.BirthDate,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// absence is a valid empty state, not an error
			return nil, nil
		}
		return nil, apperror.NewInternal("Failed to fetch user info", err)
	}
	return u, nil
}

func (r *postgresUserInfoRepo) Create(ctx context.Context, u *userinfo.UserInfo) error {
	query := `
		INSERT INTO user_info (id, full_name, job_title, email, phone, location, birth_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.FullName, u.JobTitle, u.Email, u.Phone, u.Location, u.BirthDate,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("Failed to update user info", err)
	}
	return nil
}

func (r *postgresUserInfoRepo) Update(ctx context.Context, u *userinfo.UserInfo) error {
	query := `
		UPDATE user_info SET
			full_name = $2, job_title = $3, email = $4, phone = $5,
			location = $6, birth_date = $7, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.FullName, u.JobTitle, u.Email, u.Phone, u.Location, u.BirthDate,
	)
	if err != nil {
		return apperror.NewInternal("Failed to update user info", err)
	}
	return nil
}
