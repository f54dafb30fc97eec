package experience

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ojunaidi/portfolio/internal/domain/experience"
)

type ExperienceUseCase struct {
	experienceRepo experience.Repository
}

func NewExperienceUseCase(repo experience.Repository) *ExperienceUseCase {
	return &ExperienceUseCase{experienceRepo: repo}
}

type ListExperienceOutput struct {
	Items []*experience.Experience
}

func (uc *ExperienceUseCase) ExecuteList(ctx context.Context) (*ListExperienceOutput, error) {
	items, err := uc.experienceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list experience failed: %w", err)
	}
	return &ListExperienceOutput{Items: items}, nil
}

type CreateExperienceInput struct {
	Title       string
	Company     string
	Description string
	IsCurrent   bool
	StartDate   *string
	EndDate     *string
}

type CreateExperienceOutput struct {
	Experience *experience.Experience
}

// ExecuteCreate uses the same max+1 sort-order assignment as skills,
// including the tolerated concurrent-create race.
func (uc *ExperienceUseCase) ExecuteCreate(ctx context.Context, input CreateExperienceInput) (*CreateExperienceOutput, error) {
	max, err := uc.experienceRepo.MaxSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("read max sort order failed: %w", err)
	}

	now := time.Now().UTC()
	newExperience := &experience.Experience{
		ID:          uuid.New(),
		Title:       input.Title,
		Company:     input.Company,
		Description: input.Description,
		IsCurrent:   input.IsCurrent,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		SortOrder:   max + 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.experienceRepo.Save(ctx, newExperience); err != nil {
		return nil, fmt.Errorf("save experience failed: %w", err)
	}
	return &CreateExperienceOutput{Experience: newExperience}, nil
}

type DeleteExperienceInput struct {
	ExperienceID uuid.UUID
}

func (uc *ExperienceUseCase) ExecuteDelete(ctx context.Context, input DeleteExperienceInput) error {
	if err := uc.experienceRepo.Delete(ctx, input.ExperienceID); err != nil {
		return fmt.Errorf("delete experience failed: %w", err)
	}
	return nil
}
