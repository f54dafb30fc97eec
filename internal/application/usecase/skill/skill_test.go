package skill

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojunaidi/portfolio/internal/domain/skill"
)

type fakeSkillRepo struct {
	items   []*skill.Skill
	saveErr error
}

func (r *fakeSkillRepo) List(ctx context.Context) ([]*skill.Skill, error) {
	return r.items, nil
}

func (r *fakeSkillRepo) MaxSortOrder(ctx context.Context) (int, error) {
	max := 0
	for _, s := range r.items {
		if s.SortOrder > max {
			max = s.SortOrder
		}
	}
	return max, nil
}

func (r *fakeSkillRepo) Save(ctx context.Context, s *skill.Skill) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.items = append(r.items, s)
	return nil
}

func (r *fakeSkillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.items[:0]
	for _, s := range r.items {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	r.items = kept
	return nil
}

func TestCreateSkill_FirstRowGetsSortOrderOne(t *testing.T) {
	repo := &fakeSkillRepo{}
	uc := NewSkillUseCase(repo)

	out, err := uc.ExecuteCreate(context.Background(), CreateSkillInput{
		Name: "X", Category: "تقنية", Icon: "💡",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Skill.SortOrder)
	assert.NotEqual(t, uuid.Nil, out.Skill.ID)
	assert.Equal(t, "X", out.Skill.Name)
}

func TestCreateSkill_ContinuesFromCurrentMax(t *testing.T) {
	repo := &fakeSkillRepo{items: []*skill.Skill{
		{ID: uuid.New(), Name: "A", SortOrder: 1},
		// a gap left by a delete must not be refilled
		{ID: uuid.New(), Name: "C", SortOrder: 7},
	}}
	uc := NewSkillUseCase(repo)

	out, err := uc.ExecuteCreate(context.Background(), CreateSkillInput{Name: "D"})
	require.NoError(t, err)

	assert.Equal(t, 8, out.Skill.SortOrder)
}

func TestCreateSkill_SaveFailurePropagates(t *testing.T) {
	repo := &fakeSkillRepo{saveErr: errors.New("connection refused")}
	uc := NewSkillUseCase(repo)

	_, err := uc.ExecuteCreate(context.Background(), CreateSkillInput{Name: "X"})
	require.Error(t, err)
	assert.Empty(t, repo.items)
}

func TestDeleteSkill_MissingIDSucceeds(t *testing.T) {
	repo := &fakeSkillRepo{items: []*skill.Skill{{ID: uuid.New(), SortOrder: 1}}}
	uc := NewSkillUseCase(repo)

	err := uc.ExecuteDelete(context.Background(), DeleteSkillInput{SkillID: uuid.New()})
	require.NoError(t, err)
	assert.Len(t, repo.items, 1)
}
