package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ojunaidi/portfolio/internal/domain/experience"
	"github.com/ojunaidi/portfolio/pkg/apperror"
	"github.com/ojunaidi/portfolio/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

var psqlExperience = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func scanExperience(row pgx.Row) (*experience.Experience, error) {
	e := &experience.Experience{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Company, &e.Description, &e.IsCurrent,
		&e.StartDate, &e.EndDate, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, apperror.NewInternal("Failed to fetch experience", err)
	}
	return e, nil
}

func (r *postgresExperienceRepo) List(ctx context.Context) ([]*experience.Experience, error) {
	builder := psqlExperience.Select("id, title, company, description, is_current, start_date, end_date, sort_order, created_at, updated_at").
		From("experiences").
		OrderBy("sort_order ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("Failed to fetch experience", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("Failed to fetch experience", err)
	}
	defer rows.Close()

	items := make([]*experience.Experience, 0)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("Failed to fetch experience", err)
	}
	return items, nil
}

func (r *postgresExperienceRepo) MaxSortOrder(ctx context.Context) (int, error) {
	var max int
	err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(sort_order), 0) FROM experiences`).Scan(&max)
	if err != nil {
		return 0, apperror.NewInternal("Failed to create experience", err)
	}
	return max, nil
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	query := `
		INSERT INTO experiences (id, title, company, description, is_current, start_date, end_date, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.Title, e.Company, e.Description, e.IsCurrent,
		e.StartDate, e.EndDate, e.SortOrder, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("Failed to create experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("Failed to delete experience", err)
	}
	return nil
}
