package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ojunaidi/portfolio/internal/domain/project"
	"github.com/ojunaidi/portfolio/internal/domain/tag"
	"github.com/ojunaidi/portfolio/pkg/logger"
)

type CreateProjectUseCase struct {
	projectRepo project.Repository
	tagRepo     tag.Repository
	logger      logger.Logger
}

func NewCreateProjectUseCase(pRepo project.Repository, tRepo tag.Repository, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{projectRepo: pRepo, tagRepo: tRepo, logger: log}
}

type CreateProjectInput struct {
	Name        string
	Category    string
	Description string
	URL         *string
	Tags        []string
}

type CreateProjectOutput struct {
	Project *project.Project
	Tags    []tag.Tag
}

// Execute assigns the next sort order, saves the project, then inserts its
// tag rows. The tag insert is best-effort: if it fails after the project
// row committed, the project stays without its tags and the failure is only
// logged (no rollback).
func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	max, err := uc.projectRepo.MaxSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("read max sort order failed: %w", err)
	}

	now := time.Now().UTC()
	newProject := &project.Project{
		ID:          uuid.New(),
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		URL:         input.URL,
		SortOrder:   max + 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, fmt.Errorf("save project failed: %w", err)
	}

	tags, err := uc.tagRepo.BulkInsert(ctx, newProject.ID, input.Tags)
	if err != nil {
		uc.logger.Warn("created project but tag insert failed",
			zap.String("project_id", newProject.ID.String()), zap.Error(err))
		tags = []tag.Tag{}
	}

	return &CreateProjectOutput{Project: newProject, Tags: tags}, nil
}
