package persistence

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/ojunaidi/portfolio/internal/domain/skill"
	"github.com/ojunaidi/portfolio/internal/domain/userinfo"
	"github.com/ojunaidi/portfolio/pkg/logger"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	s.dbPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to connect postgres: %s", err)
	}

	s.testLogger = logger.NewZapLogger("development")
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		s.pgContainer.Terminate(context.Background())
	}
}

func (s *RepoIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	for _, table := range []string{"tags", "projects", "experiences", "skills", "about_info", "user_info"} {
		_, err := s.dbPool.Exec(ctx, "DELETE FROM "+table)
		s.Require().NoError(err)
	}
}

func TestRepoIntegration(t *testing.T) {
	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TESTS=1 to run.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func (s *RepoIntegrationTestSuite) Test_UserInfo_FindCreateUpdate() {
	ctx := context.Background()
	repo := NewPostgresUserInfoRepo(s.dbPool, s.testLogger)

	found, err := repo.Find(ctx)
	s.Require().NoError(err)
	s.Nil(found)

	now := time.Now().UTC()
	row := &userinfo.UserInfo{
		ID:        uuid.New(),
		FullName:  "أسامة",
		JobTitle:  "مسوق",
		Email:     "o@example.com",
		BirthDate: "2003-11-14",
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Require().NoError(repo.Create(ctx, row))

	found, err = repo.Find(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(row.ID, found.ID)
	s.Equal("أسامة", found.FullName)

	found.FullName = "أسامة محمد"
	s.Require().NoError(repo.Update(ctx, found))

	again, err := repo.Find(ctx)
	s.Require().NoError(err)
	s.Equal(row.ID, again.ID)
	s.Equal("أسامة محمد", again.FullName)

	var count int
	s.Require().NoError(s.dbPool.QueryRow(ctx, "SELECT COUNT(*) FROM user_info").Scan(&count))
	s.Equal(1, count)
}

func (s *RepoIntegrationTestSuite) Test_Skills_MaxSortOrderAndOrderedList() {
	ctx := context.Background()
	repo := NewPostgresSkillRepo(s.dbPool, s.testLogger)

	max, err := repo.MaxSortOrder(ctx)
	s.Require().NoError(err)
	s.Equal(0, max)

	now := time.Now().UTC()
	for i, name := range []string{"A", "B", "C"} {
		s.Require().NoError(repo.Save(ctx, &skill.Skill{
			ID: uuid.New(), Name: name, Category: "تقنية", Icon: "💻",
			SortOrder: i + 1, CreatedAt: now, UpdatedAt: now,
		}))
	}

	max, err = repo.MaxSortOrder(ctx)
	s.Require().NoError(err)
	s.Equal(3, max)

	listed, err := repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(listed, 3)
	s.Equal("A", listed[0].Name)
	s.Equal("C", listed[2].Name)
}

func (s *RepoIntegrationTestSuite) Test_Skills_DeleteMissingIDSucceeds() {
	ctx := context.Background()
	repo := NewPostgresSkillRepo(s.dbPool, s.testLogger)

	s.Require().NoError(repo.Delete(ctx, uuid.New()))
}

func (s *RepoIntegrationTestSuite) Test_Tags_InsertOrderAndCascade() {
	ctx := context.Background()
	projectRepo := NewPostgresProjectRepo(s.dbPool, s.testLogger)
	tagRepo := NewPostgresTagRepo(s.dbPool, s.testLogger)

	now := time.Now().UTC()
	projectID := uuid.New()
	_, err := s.dbPool.Exec(ctx,
		`INSERT INTO projects (id, name, category, description, sort_order, created_at, updated_at)
		 VALUES ($1, 'BLACK WOOD', 'تحف', '', 1, $2, $2)`, projectID, now)
	s.Require().NoError(err)

	inserted, err := tagRepo.BulkInsert(ctx, projectID, []string{"تصميم", "إدارة", "محتوى"})
	s.Require().NoError(err)
	s.Require().Len(inserted, 3)

	listed, err := tagRepo.ListByProject(ctx, projectID)
	s.Require().NoError(err)
	s.Require().Len(listed, 3)
	s.Equal("تصميم", listed[0].Tag)
	s.Equal("محتوى", listed[2].Tag)

	// tags first, then the project: the schema has no cascade
	s.Require().NoError(tagRepo.DeleteByProject(ctx, projectID))
	s.Require().NoError(projectRepo.Delete(ctx, projectID))

	listed, err = tagRepo.ListByProject(ctx, projectID)
	s.Require().NoError(err)
	s.Empty(listed)
}
