package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ojunaidi/portfolio/internal/domain/about"
	"github.com/ojunaidi/portfolio/pkg/apperror"
	"github.com/ojunaidi/portfolio/pkg/logger"
)

type postgresAboutRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAboutRepo(db *pgxpool.Pool, logger logger.Logger) about.Repository {
	return &postgresAboutRepo{db: db, logger: logger}
}

func (r *postgresAboutRepo) Find(ctx context.Context) (*about.About, error) {
	query := `
		SELECT id, main_intro, paragraph1, paragraph2, created_at, updated_at
		FROM about_info
		LIMIT 1
	`
	a := &about.About{}
	err := r.db.QueryRow(ctx, query).Scan(
		&a.ID,
		&a.MainIntro,
		&a.Paragraph1,
		&a.Paragraph2,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("Failed to fetch about info", err)
	}
	return a, nil
}

func (r *postgresAboutRepo) Create(ctx context.Context, a *about.About) error {
	query := `
		INSERT INTO about_info (id, main_intro, paragraph1, paragraph2, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.MainIntro, a.Paragraph1, a.Paragraph2, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("Failed to update about info", err)
	}
	return nil
}

func (r *postgresAboutRepo) Update(ctx context.Context, a *about.About) error {
	query := `
		UPDATE about_info SET
			main_intro = $2, paragraph1 = $3, paragraph2 = $4, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, a.ID, a.MainIntro, a.Paragraph1, a.Paragraph2)
	if err != nil {
		return apperror.NewInternal("Failed to update about info", err)
	}
	return nil
}
