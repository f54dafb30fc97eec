package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ojunaidi/portfolio/internal/domain/tag"
	"github.com/ojunaidi/portfolio/pkg/apperror"
	"github.com/ojunaidi/portfolio/pkg/logger"
)

type postgresTagRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresTagRepo(db *pgxpool.Pool, logger logger.Logger) tag.Repository {
	return &postgresTagRepo{db: db, logger: logger}
}

func (r *postgresTagRepo) BulkInsert(ctx context.Context, projectID uuid.UUID, names []string) ([]tag.Tag, error) {
	if len(names) == 0 {
		return []tag.Tag{}, nil
	}

	tags := make([]tag.Tag, len(names))
	rowsToInsert := make([][]interface{}, len(names))
	for i, name := range names {
		tags[i] = tag.Tag{ID: uuid.New(), ProjectID: projectID, Tag: name}
		rowsToInsert[i] = []interface{}{tags[i].ID, projectID, name}
	}

	// the seq column preserves insertion order for ListByProject
	_, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"tags"},
		[]string{"id", "project_id", "tag"},
		pgx.CopyFromRows(rowsToInsert),
	)
	if err != nil {
		return nil, apperror.NewInternal("Failed to create project tags", err)
	}
	return tags, nil
}

func (r *postgresTagRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]tag.Tag, error) {
	query := `SELECT id, project_id, tag FROM tags WHERE project_id = $1 ORDER BY seq ASC`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperror.NewInternal("Failed to fetch tags", err)
	}
	defer rows.Close()

	return collectTags(rows)
}

func (r *postgresTagRepo) ListByProjects(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID][]tag.Tag, error) {
	grouped := make(map[uuid.UUID][]tag.Tag, len(projectIDs))
	if len(projectIDs) == 0 {
		return grouped, nil
	}

	query := `SELECT id, project_id, tag FROM tags WHERE project_id = ANY($1) ORDER BY seq ASC`
	rows, err := r.db.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, apperror.NewInternal("Failed to fetch tags", err)
	}
	defer rows.Close()

	tags, err := collectTags(rows)
	if err != nil {
		return nil, err
	}
	for _, t := range tags {
		grouped[t.ProjectID] = append(grouped[t.ProjectID], t)
	}
	return grouped, nil
}

func (r *postgresTagRepo) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tags WHERE project_id = $1`, projectID)
	if err != nil {
		return apperror.NewInternal("Failed to delete project tags", err)
	}
	return nil
}

func collectTags(rows pgx.Rows) ([]tag.Tag, error) {
	tags := make([]tag.Tag, 0)
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Tag); err != nil {
			return nil, apperror.NewInternal("Failed to fetch tags", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("Failed to fetch tags", err)
	}
	return tags, nil
}
