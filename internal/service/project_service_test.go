package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"docgen-server/internal/models"
	repoMocks "docgen-server/internal/repository/mocks"
	"docgen-server/internal/service"
)

func TestCreateProject(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates a word project in configuring state", func(t *testing.T) {
		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		svc := service.NewProjectService(projectRepo, contentRepo, zap.NewNop())

		projectRepo.On("Create", ctx, mock.MatchedBy(func(p *models.Project) bool {
			return p.UserID == userID &&
				p.Name == "Quarterly Report" &&
				p.Type == models.ProjectTypeWord &&
				p.Status == models.StatusConfiguring
		})).Return(nil)

		project, err := svc.CreateProject(ctx, userID, "Quarterly Report", models.ProjectTypeWord, "Q3 sales")
		assert.NoError(t, err)
		assert.Equal(t, models.StatusConfiguring, project.Status)
		projectRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown project type", func(t *testing.T) {
		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		svc := service.NewProjectService(projectRepo, contentRepo, zap.NewNop())

		_, err := svc.CreateProject(ctx, userID, "Spreadsheet", "excel", "Budget")
		assert.ErrorIs(t, err, models.ErrInvalidProjectType)
		projectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetProject(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("loads sections for word projects", func(t *testing.T) {
		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		svc := service.NewProjectService(projectRepo, contentRepo, zap.NewNop())

		project := newWordProject(userID)
		sections := []models.Section{
			{ID: uuid.New(), ProjectID: project.ID, Header: "Intro", Position: 0},
			{ID: uuid.New(), ProjectID: project.ID, Header: "Results", Position: 1},
		}
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)
		contentRepo.On("ListSections", ctx, project.ID).Return(sections, nil)

		got, err := svc.GetProject(ctx, project.ID, userID)
		assert.NoError(t, err)
		assert.Len(t, got.Sections, 2)
		contentRepo.AssertNotCalled(t, "ListSlides", mock.Anything, mock.Anything)
	})

	t.Run("hides other users' projects", func(t *testing.T) {
		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		svc := service.NewProjectService(projectRepo, contentRepo, zap.NewNop())

		project := newWordProject(uuid.New())
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)

		_, err := svc.GetProject(ctx, project.ID, userID)
		assert.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("maps missing project to not found", func(t *testing.T) {
		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		svc := service.NewProjectService(projectRepo, contentRepo, zap.NewNop())

		missing := uuid.New()
		projectRepo.On("GetByID", ctx, missing).Return(nil, models.ErrProjectNotFound)

		_, err := svc.GetProject(ctx, missing, userID)
		assert.ErrorIs(t, err, models.ErrProjectNotFound)
	})
}

func TestUpdateProject(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("updates owned project", func(t *testing.T) {
		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		svc := service.NewProjectService(projectRepo, contentRepo, zap.NewNop())

		project := newWordProject(userID)
		updated := *project
		updated.Name = "Annual Report"
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)
		projectRepo.On("Update", ctx, project.ID, "Annual Report", "FY26 results").Return(&updated, nil)

		got, err := svc.UpdateProject(ctx, project.ID, userID, "Annual Report", "FY26 results")
		assert.NoError(t, err)
		assert.Equal(t, "Annual Report", got.Name)
		projectRepo.AssertExpectations(t)
	})

	t.Run("refuses update by non-owner", func(t *testing.T) {
		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		svc := service.NewProjectService(projectRepo, contentRepo, zap.NewNop())

		project := newWordProject(uuid.New())
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)

		_, err := svc.UpdateProject(ctx, project.ID, userID, "Hijacked", "topic")
		assert.ErrorIs(t, err, models.ErrForbidden)
		projectRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes owned project", func(t *testing.T) {
		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		svc := service.NewProjectService(projectRepo, contentRepo, zap.NewNop())

		project := newWordProject(userID)
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)
		projectRepo.On("Delete", ctx, project.ID).Return(nil)

		assert.NoError(t, svc.DeleteProject(ctx, project.ID, userID))
		projectRepo.AssertExpectations(t)
	})

	t.Run("refuses delete by non-owner", func(t *testing.T) {
		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		svc := service.NewProjectService(projectRepo, contentRepo, zap.NewNop())

		project := newWordProject(uuid.New())
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)

		assert.ErrorIs(t, svc.DeleteProject(ctx, project.ID, userID), models.ErrForbidden)
		projectRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
