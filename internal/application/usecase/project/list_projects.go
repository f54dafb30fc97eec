package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ojunaidi/portfolio/internal/domain/project"
	"github.com/ojunaidi/portfolio/internal/domain/tag"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
	tagRepo     tag.Repository
}

func NewListProjectsUseCase(pRepo project.Repository, tRepo tag.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: pRepo, tagRepo: tRepo}
}

type ProjectWithTags struct {
	Project *project.Project
	Tags    []tag.Tag
}

type ListProjectsOutput struct {
	Projects []ProjectWithTags
}

// Execute returns all projects ordered by sort order, each annotated with
// its tag rows in insertion order.
func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects failed: %w", err)
	}

	ids := make([]uuid.UUID, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}

	tagsByProject, err := uc.tagRepo.ListByProjects(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list project tags failed: %w", err)
	}

	out := make([]ProjectWithTags, len(projects))
	for i, p := range projects {
		tags := tagsByProject[p.ID]
		if tags == nil {
			tags = []tag.Tag{}
		}
		out[i] = ProjectWithTags{Project: p, Tags: tags}
	}
	return &ListProjectsOutput{Projects: out}, nil
}
