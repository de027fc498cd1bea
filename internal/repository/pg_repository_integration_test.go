package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"docgen-server/internal/database"
	"docgen-server/internal/models"
	"docgen-server/internal/repository"
)

type RepositoryTestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	pool        *pgxpool.Pool
	logger      *zap.Logger

	userRepo       repository.UserRepository
	projectRepo    repository.ProjectRepository
	contentRepo    repository.ContentRepository
	commentRepo    repository.CommentRepository
	feedbackRepo   repository.FeedbackRepository
	refinementRepo repository.RefinementRepository
}

func (s *RepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = zap.NewNop()
	var err error

	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(s.T(), err, "Failed to start postgres container")

	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	s.pool, err = pgxpool.New(s.ctx, connStr)
	require.NoError(s.T(), err)

	require.NoError(s.T(), database.NewMigrator(s.pool, s.logger).Up(s.ctx))

	s.userRepo = repository.NewPgUserRepository(s.pool, s.logger)
	s.projectRepo = repository.NewPgProjectRepository(s.pool, s.logger)
	s.contentRepo = repository.NewPgContentRepository(s.pool, s.logger)
	s.commentRepo = repository.NewPgCommentRepository(s.pool, s.logger)
	s.feedbackRepo = repository.NewPgFeedbackRepository(s.pool, s.logger)
	s.refinementRepo = repository.NewPgRefinementRepository(s.pool, s.logger)
}

func (s *RepositoryTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

func (s *RepositoryTestSuite) createUser(email string) *models.User {
	user := &models.User{Email: email, Name: "Test User", PasswordHash: "fake-hash"}
	require.NoError(s.T(), s.userRepo.CreateUser(s.ctx, user))
	return user
}

func (s *RepositoryTestSuite) createProject(userID uuid.UUID, projectType models.ProjectType) *models.Project {
	project := &models.Project{
		UserID: userID,
		Name:   "Test Project",
		Type:   projectType,
		Topic:  "Testing",
		Status: models.StatusConfiguring,
	}
	require.NoError(s.T(), s.projectRepo.Create(s.ctx, project))
	return project
}

func (s *RepositoryTestSuite) TestUserLifecycle() {
	user := s.createUser("lifecycle@example.com")
	s.Require().NotEqual(uuid.Nil, user.ID)

	byEmail, err := s.userRepo.GetUserByEmail(s.ctx, "lifecycle@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, byEmail.ID)

	byID, err := s.userRepo.GetUserByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("lifecycle@example.com", byID.Email)

	_, err = s.userRepo.GetUserByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, models.ErrUserNotFound)

	dup := &models.User{Email: "lifecycle@example.com", PasswordHash: "other"}
	s.ErrorIs(s.userRepo.CreateUser(s.ctx, dup), models.ErrEmailAlreadyExists)
}

func (s *RepositoryTestSuite) TestProjectLifecycle() {
	user := s.createUser("projects@example.com")
	project := s.createProject(user.ID, models.ProjectTypeWord)
	s.Require().NotEqual(uuid.Nil, project.ID)

	loaded, err := s.projectRepo.GetByID(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusConfiguring, loaded.Status)

	updated, err := s.projectRepo.Update(s.ctx, project.ID, "Renamed", "New topic")
	s.Require().NoError(err)
	s.Equal("Renamed", updated.Name)
	s.Equal("New topic", updated.Topic)

	s.Require().NoError(s.projectRepo.UpdateStatus(s.ctx, project.ID, models.StatusReadyForRefinement))
	loaded, err = s.projectRepo.GetByID(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusReadyForRefinement, loaded.Status)

	list, err := s.projectRepo.ListByUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Len(list, 1)

	s.Require().NoError(s.projectRepo.Delete(s.ctx, project.ID))
	_, err = s.projectRepo.GetByID(s.ctx, project.ID)
	s.ErrorIs(err, models.ErrProjectNotFound)
}

func (s *RepositoryTestSuite) TestListByUserOrdersByRecentUpdate() {
	user := s.createUser("ordering@example.com")
	first := s.createProject(user.ID, models.ProjectTypeWord)
	second := s.createProject(user.ID, models.ProjectTypeWord)

	_, err := s.projectRepo.Update(s.ctx, second.ID, "Touched Second", "topic")
	s.Require().NoError(err)

	list, err := s.projectRepo.ListByUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(second.ID, list[0].ID)

	// Touching the older project moves it to the front.
	_, err = s.projectRepo.Update(s.ctx, first.ID, "Touched First", "topic")
	s.Require().NoError(err)

	list, err = s.projectRepo.ListByUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(first.ID, list[0].ID)
}

func (s *RepositoryTestSuite) TestSectionReplacementAssignsPositions() {
	user := s.createUser("sections@example.com")
	project := s.createProject(user.ID, models.ProjectTypeWord)

	sections, err := s.contentRepo.ReplaceSections(s.ctx, project.ID, []string{"Intro", "Body", "Outro"})
	s.Require().NoError(err)
	s.Require().Len(sections, 3)
	for i, section := range sections {
		s.Equal(i, section.Position)
		s.Nil(section.Content)
	}

	// Replacement drops earlier sections, including generated content.
	s.Require().NoError(s.contentRepo.UpdateSectionContent(s.ctx, sections[0].ID, "generated"))
	replaced, err := s.contentRepo.ReplaceSections(s.ctx, project.ID, []string{"Only"})
	s.Require().NoError(err)
	s.Require().Len(replaced, 1)
	s.Equal("Only", replaced[0].Header)
	s.Nil(replaced[0].Content)

	listed, err := s.contentRepo.ListSections(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Len(listed, 1)
}

func (s *RepositoryTestSuite) TestSlideContentAndImage() {
	user := s.createUser("slides@example.com")
	project := s.createProject(user.ID, models.ProjectTypePowerPoint)

	slides, err := s.contentRepo.ReplaceSlides(s.ctx, project.ID, []string{"Overview"})
	s.Require().NoError(err)
	s.Require().Len(slides, 1)

	s.Require().NoError(s.contentRepo.UpdateSlideContent(s.ctx, slides[0].ID, "slide text"))
	s.Require().NoError(s.contentRepo.SetSlideImage(s.ctx, slides[0].ID, "https://example.com/img.png", models.PlacementBackground))

	slide, err := s.contentRepo.GetSlideByID(s.ctx, slides[0].ID)
	s.Require().NoError(err)
	s.Equal("slide text", *slide.Content)
	s.Equal("https://example.com/img.png", *slide.ImageURL)
	s.Equal(models.PlacementBackground, *slide.ImagePlacement)

	_, err = s.contentRepo.GetSlideByID(s.ctx, uuid.New())
	s.ErrorIs(err, models.ErrSlideNotFound)
}

func (s *RepositoryTestSuite) TestFeedbackUpsertReplacesReaction() {
	user := s.createUser("feedback@example.com")
	project := s.createProject(user.ID, models.ProjectTypeWord)
	sections, err := s.contentRepo.ReplaceSections(s.ctx, project.ID, []string{"Intro"})
	s.Require().NoError(err)

	first := &models.Feedback{UnitType: models.UnitSection, UnitID: sections[0].ID, UserID: user.ID, Kind: models.FeedbackLike}
	s.Require().NoError(s.feedbackRepo.Upsert(s.ctx, first))

	second := &models.Feedback{UnitType: models.UnitSection, UnitID: sections[0].ID, UserID: user.ID, Kind: models.FeedbackDislike}
	s.Require().NoError(s.feedbackRepo.Upsert(s.ctx, second))

	list, err := s.feedbackRepo.ListByUnit(s.ctx, models.UnitSection, sections[0].ID)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(models.FeedbackDislike, list[0].Kind)
}

func (s *RepositoryTestSuite) TestRefinementHistoryIsAppendOnly() {
	user := s.createUser("refine@example.com")
	project := s.createProject(user.ID, models.ProjectTypeWord)
	sections, err := s.contentRepo.ReplaceSections(s.ctx, project.ID, []string{"Intro"})
	s.Require().NoError(err)

	previous := "draft text"
	for _, prompt := range []string{"shorter", "more formal"} {
		entry := &models.Refinement{
			UnitType:        models.UnitSection,
			UnitID:          sections[0].ID,
			UserID:          user.ID,
			Prompt:          prompt,
			PreviousContent: &previous,
			NewContent:      "refined for: " + prompt,
		}
		s.Require().NoError(s.refinementRepo.Create(s.ctx, entry))
	}

	history, err := s.refinementRepo.ListByUnit(s.ctx, models.UnitSection, sections[0].ID)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal("shorter", history[0].Prompt)
	s.Equal("more formal", history[1].Prompt)
}

func (s *RepositoryTestSuite) TestCommentLifecycle() {
	user := s.createUser("comments@example.com")
	project := s.createProject(user.ID, models.ProjectTypeWord)
	sections, err := s.contentRepo.ReplaceSections(s.ctx, project.ID, []string{"Intro"})
	s.Require().NoError(err)

	comment := &models.Comment{
		UnitType: models.UnitSection,
		UnitID:   sections[0].ID,
		UserID:   user.ID,
		Text:     "needs work",
	}
	s.Require().NoError(s.commentRepo.Create(s.ctx, comment))

	updated, err := s.commentRepo.Update(s.ctx, comment.ID, "much better now")
	s.Require().NoError(err)
	s.Equal("much better now", updated.Text)

	list, err := s.commentRepo.ListByUnit(s.ctx, models.UnitSection, sections[0].ID)
	s.Require().NoError(err)
	s.Len(list, 1)

	s.Require().NoError(s.commentRepo.Delete(s.ctx, comment.ID))
	_, err = s.commentRepo.GetByID(s.ctx, comment.ID)
	s.ErrorIs(err, models.ErrCommentNotFound)

	// Deleting the project cascades to its content and comments.
	s.Require().NoError(s.projectRepo.Delete(s.ctx, project.ID))
	remaining, err := s.contentRepo.ListSections(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Empty(remaining)
}

func TestRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(RepositoryTestSuite))
}
