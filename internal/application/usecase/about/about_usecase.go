package about

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ojunaidi/portfolio/internal/domain/about"
)

type AboutUseCase struct {
	aboutRepo about.Repository
}

func NewAboutUseCase(repo about.Repository) *AboutUseCase {
	return &AboutUseCase{aboutRepo: repo}
}

type GetAboutOutput struct {
	About *about.About
}

func (uc *AboutUseCase) ExecuteGet(ctx context.Context) (*GetAboutOutput, error) {
	a, err := uc.aboutRepo.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("get about info failed: %w", err)
	}
	return &GetAboutOutput{About: a}, nil
}

type UpsertAboutInput struct {
	MainIntro  string
	Paragraph1 string
	Paragraph2 string
}

type UpsertAboutOutput struct {
	About *about.About
}

// ExecuteUpsert mirrors the user-info get-or-create flow: update in place
// when a row exists, otherwise create the singleton.
func (uc *AboutUseCase) ExecuteUpsert(ctx context.Context, input UpsertAboutInput) (*UpsertAboutOutput, error) {
	existing, err := uc.aboutRepo.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("get about info failed: %w", err)
	}

	now := time.Now().UTC()

	if existing != nil {
		existing.MainIntro = input.MainIntro
		existing.Paragraph1 = input.Paragraph1
		existing.Paragraph2 = input.Paragraph2
		existing.UpdatedAt = now

		if err := uc.aboutRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update about info failed: %w", err)
		}
		return &UpsertAboutOutput{About: existing}, nil
	}

	created := &about.About{
		ID:         uuid.New(),
		MainIntro:  input.MainIntro,
		Paragraph1: input.Paragraph1,
		Paragraph2: input.Paragraph2,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.aboutRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("create about info failed: %w", err)
	}
	return &UpsertAboutOutput{About: created}, nil
}
