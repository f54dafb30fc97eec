package project

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojunaidi/portfolio/internal/domain/project"
	"github.com/ojunaidi/portfolio/internal/domain/tag"
	"github.com/ojunaidi/portfolio/pkg/logger"
)

type fakeProjectRepo struct {
	items     []*project.Project
	deleteLog *[]string
}

func (r *fakeProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	return r.items, nil
}

func (r *fakeProjectRepo) MaxSortOrder(ctx context.Context) (int, error) {
	max := 0
	for _, p := range r.items {
		if p.SortOrder > max {
			max = p.SortOrder
		}
	}
	return max, nil
}

func (r *fakeProjectRepo) Save(ctx context.Context, p *project.Project) error {
	r.items = append(r.items, p)
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.deleteLog != nil {
		*r.deleteLog = append(*r.deleteLog, "project")
	}
	kept := r.items[:0]
	for _, p := range r.items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.items = kept
	return nil
}

type fakeTagRepo struct {
	byProject map[uuid.UUID][]tag.Tag
	insertErr error
	deleteLog *[]string
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{byProject: make(map[uuid.UUID][]tag.Tag)}
}

func (r *fakeTagRepo) BulkInsert(ctx context.Context, projectID uuid.UUID, names []string) ([]tag.Tag, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	tags := make([]tag.Tag, len(names))
	for i, name := range names {
		tags[i] = tag.Tag{ID: uuid.New(), ProjectID: projectID, Tag: name}
	}
	r.byProject[projectID] = append(r.byProject[projectID], tags...)
	return tags, nil
}

func (r *fakeTagRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]tag.Tag, error) {
	return r.byProject[projectID], nil
}

func (r *fakeTagRepo) ListByProjects(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID][]tag.Tag, error) {
	return r.byProject, nil
}

func (r *fakeTagRepo) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	if r.deleteLog != nil {
		*r.deleteLog = append(*r.deleteLog, "tags")
	}
	delete(r.byProject, projectID)
	return nil
}

func TestCreateProject_AssignsOrderAndTags(t *testing.T) {
	projectRepo := &fakeProjectRepo{}
	tagRepo := newFakeTagRepo()
	uc := NewCreateProjectUseCase(projectRepo, tagRepo, logger.NewZapLogger("development"))

	out, err := uc.Execute(context.Background(), CreateProjectInput{
		Name: "BLACK WOOD", Category: "تحف خشبية", Tags: []string{"تصميم", "إدارة المتجر"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Project.SortOrder)
	require.Len(t, out.Tags, 2)
	assert.Equal(t, out.Project.ID, out.Tags[0].ProjectID)
	assert.Equal(t, "تصميم", out.Tags[0].Tag)
}

func TestCreateProject_TagFailureKeepsProject(t *testing.T) {
	projectRepo := &fakeProjectRepo{}
	tagRepo := newFakeTagRepo()
	tagRepo.insertErr = errors.New("copy failed")
	uc := NewCreateProjectUseCase(projectRepo, tagRepo, logger.NewZapLogger("development"))

	out, err := uc.Execute(context.Background(), CreateProjectInput{
		Name: "BEPAIR", Tags: []string{"a"},
	})
	require.NoError(t, err)

	// non-transactional by contract: the project row commits, tags are lost
	assert.Len(t, projectRepo.items, 1)
	assert.Empty(t, out.Tags)
}

func TestDeleteProject_RemovesTagsBeforeProject(t *testing.T) {
	var order []string
	projectID := uuid.New()
	projectRepo := &fakeProjectRepo{
		items:     []*project.Project{{ID: projectID, Name: "BRANLY AI", SortOrder: 1}},
		deleteLog: &order,
	}
	tagRepo := newFakeTagRepo()
	tagRepo.deleteLog = &order
	tagRepo.byProject[projectID] = []tag.Tag{{ID: uuid.New(), ProjectID: projectID, Tag: "أتمتة"}}

	uc := NewDeleteProjectUseCase(projectRepo, tagRepo)
	err := uc.Execute(context.Background(), DeleteProjectInput{ProjectID: projectID})
	require.NoError(t, err)

	assert.Equal(t, []string{"tags", "project"}, order)
	assert.Empty(t, projectRepo.items)
	assert.Empty(t, tagRepo.byProject[projectID])
}

func TestListProjects_AnnotatesTagsPerProject(t *testing.T) {
	p1 := &project.Project{ID: uuid.New(), Name: "A", SortOrder: 1}
	p2 := &project.Project{ID: uuid.New(), Name: "B", SortOrder: 2}
	projectRepo := &fakeProjectRepo{items: []*project.Project{p1, p2}}
	tagRepo := newFakeTagRepo()
	tagRepo.byProject[p1.ID] = []tag.Tag{{ID: uuid.New(), ProjectID: p1.ID, Tag: "x"}}

	uc := NewListProjectsUseCase(projectRepo, tagRepo)
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Projects, 2)
	assert.Len(t, out.Projects[0].Tags, 1)
	// a project with no tags still carries an empty slice, never nil
	assert.NotNil(t, out.Projects[1].Tags)
	assert.Len(t, out.Projects[1].Tags, 0)
}
