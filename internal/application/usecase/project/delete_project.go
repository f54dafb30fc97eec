package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ojunaidi/portfolio/internal/domain/project"
	"github.com/ojunaidi/portfolio/internal/domain/tag"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	tagRepo     tag.Repository
}

func NewDeleteProjectUseCase(pRepo project.Repository, tRepo tag.Repository) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: pRepo, tagRepo: tRepo}
}

type DeleteProjectInput struct {
	ProjectID uuid.UUID
}

// Execute removes the tag rows before the project row. The store has no
// cascade on tags.project_id, so the order matters; both steps succeed on
// an already-absent id.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	if err := uc.tagRepo.DeleteByProject(ctx, input.ProjectID); err != nil {
		return fmt.Errorf("delete project tags failed: %w", err)
	}

	if err := uc.projectRepo.Delete(ctx, input.ProjectID); err != nil {
		return fmt.Errorf("delete project failed: %w", err)
	}
	return nil
}
