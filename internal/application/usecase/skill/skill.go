package skill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ojunaidi/portfolio/internal/domain/skill"
)

type SkillUseCase struct {
	skillRepo skill.Repository
}

func NewSkillUseCase(repo skill.Repository) *SkillUseCase {
	return &SkillUseCase{skillRepo: repo}
}

type ListSkillsOutput struct {
	Skills []*skill.Skill
}

func (uc *SkillUseCase) ExecuteList(ctx context.Context) (*ListSkillsOutput, error) {
	skills, err := uc.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills failed: %w", err)
	}
	return &ListSkillsOutput{Skills: skills}, nil
}

type CreateSkillInput struct {
	Name     string
	Category string
	Icon     string
}

type CreateSkillOutput struct {
	Skill *skill.Skill
}

// ExecuteCreate assigns sort order as current max + 1 (1 on an empty
// collection). Reading the max and inserting are two store calls, so
// concurrent creates can assign the same order; that matches the single
// admin session the tool is built for.
func (uc *SkillUseCase) ExecuteCreate(ctx context.Context, input CreateSkillInput) (*CreateSkillOutput, error) {
	max, err := uc.skillRepo.MaxSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("read max sort order failed: %w", err)
	}

	now := time.Now().UTC()
	newSkill := &skill.Skill{
		ID:        uuid.New(),
		Name:      input.Name,
		Category:  input.Category,
		Icon:      input.Icon,
		SortOrder: max + 1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.skillRepo.Save(ctx, newSkill); err != nil {
		return nil, fmt.Errorf("save skill failed: %w", err)
	}
	return &CreateSkillOutput{Skill: newSkill}, nil
}

type DeleteSkillInput struct {
	SkillID uuid.UUID
}

// ExecuteDelete is idempotent: deleting an id that does not exist succeeds
// and leaves the collection unchanged.
func (uc *SkillUseCase) ExecuteDelete(ctx context.Context, input DeleteSkillInput) error {
	if err := uc.skillRepo.Delete(ctx, input.SkillID); err != nil {
		return fmt.Errorf("delete skill failed: %w", err)
	}
	return nil
}
