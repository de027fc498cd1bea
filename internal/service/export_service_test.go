package service_test

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docgen-server/internal/models"
	repoMocks "docgen-server/internal/repository/mocks"
	"docgen-server/internal/service"
)

func TestExportProject(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("renders a word project with content", func(t *testing.T) {
		project := newWordProject(userID)
		sections := []models.Section{
			{ID: uuid.New(), ProjectID: project.ID, Header: "Introduction", Content: strPtr("generated text"), Position: 0},
		}

		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil).Once()
		contentRepo.On("ListSections", ctx, project.ID).Return(sections, nil).Once()

		svc := service.NewExportService(projectRepo, contentRepo, zap.NewNop())

		var buf bytes.Buffer
		filename, contentType, err := svc.ExportProject(ctx, project.ID, userID, "", &buf)

		require.NoError(t, err)
		assert.Equal(t, "Quarterly_Report.docx", filename)
		assert.Equal(t, service.DocxContentType, contentType)

		// Output must be a readable zip package.
		_, err = zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		assert.NoError(t, err)
	})

	t.Run("unconfigured project cannot be exported", func(t *testing.T) {
		project := newWordProject(userID)

		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil).Once()
		contentRepo.On("ListSections", ctx, project.ID).Return([]models.Section{}, nil).Once()

		svc := service.NewExportService(projectRepo, contentRepo, zap.NewNop())

		var buf bytes.Buffer
		_, _, err := svc.ExportProject(ctx, project.ID, userID, "", &buf)
		assert.ErrorIs(t, err, models.ErrProjectNotConfigured)
	})

	t.Run("configured but ungenerated project has nothing to export", func(t *testing.T) {
		project := newWordProject(userID)
		sections := []models.Section{
			{ID: uuid.New(), ProjectID: project.ID, Header: "Introduction", Position: 0},
		}

		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil).Once()
		contentRepo.On("ListSections", ctx, project.ID).Return(sections, nil).Once()

		svc := service.NewExportService(projectRepo, contentRepo, zap.NewNop())

		var buf bytes.Buffer
		_, _, err := svc.ExportProject(ctx, project.ID, userID, "", &buf)
		assert.ErrorIs(t, err, models.ErrNothingToExport)
		assert.Zero(t, buf.Len())
	})

	t.Run("partially generated project cannot be exported", func(t *testing.T) {
		project := newWordProject(userID)
		sections := []models.Section{
			{ID: uuid.New(), ProjectID: project.ID, Header: "Introduction", Content: strPtr("generated text"), Position: 0},
			{ID: uuid.New(), ProjectID: project.ID, Header: "Results", Position: 1},
		}

		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil).Once()
		contentRepo.On("ListSections", ctx, project.ID).Return(sections, nil).Once()

		svc := service.NewExportService(projectRepo, contentRepo, zap.NewNop())

		var buf bytes.Buffer
		_, _, err := svc.ExportProject(ctx, project.ID, userID, "", &buf)
		assert.ErrorIs(t, err, models.ErrNothingToExport)
		assert.Zero(t, buf.Len())
	})

	t.Run("slide with blank content blocks pptx export", func(t *testing.T) {
		project := newWordProject(userID)
		project.Type = models.ProjectTypePowerPoint
		slides := []models.Slide{
			{ID: uuid.New(), ProjectID: project.ID, Title: "Overview", Content: strPtr("points"), Position: 0},
			{ID: uuid.New(), ProjectID: project.ID, Title: "Roadmap", Content: strPtr("   "), Position: 1},
		}

		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil).Once()
		contentRepo.On("ListSlides", ctx, project.ID).Return(slides, nil).Once()

		svc := service.NewExportService(projectRepo, contentRepo, zap.NewNop())

		var buf bytes.Buffer
		_, _, err := svc.ExportProject(ctx, project.ID, userID, "", &buf)
		assert.ErrorIs(t, err, models.ErrNothingToExport)
	})

	t.Run("powerpoint project exports as pptx", func(t *testing.T) {
		project := newWordProject(userID)
		project.Type = models.ProjectTypePowerPoint
		project.Name = "Pitch Deck"
		slides := []models.Slide{
			{ID: uuid.New(), ProjectID: project.ID, Title: "Overview", Content: strPtr("points"), Position: 0},
		}

		projectRepo := new(repoMocks.ProjectRepository)
		contentRepo := new(repoMocks.ContentRepository)
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil).Once()
		contentRepo.On("ListSlides", ctx, project.ID).Return(slides, nil).Once()

		svc := service.NewExportService(projectRepo, contentRepo, zap.NewNop())

		var buf bytes.Buffer
		filename, contentType, err := svc.ExportProject(ctx, project.ID, userID, "classic_formal", &buf)

		require.NoError(t, err)
		assert.Equal(t, "Pitch_Deck.pptx", filename)
		assert.Equal(t, service.PptxContentType, contentType)
	})
}
