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

func TestSetFeedback(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("stores a like on an owned slide", func(t *testing.T) {
		project := newWordProject(userID)
		project.Type = models.ProjectTypePowerPoint
		slide := &models.Slide{ID: uuid.New(), ProjectID: project.ID, Title: "Overview"}

		feedbackRepo := new(repoMocks.FeedbackRepository)
		contentRepo := new(repoMocks.ContentRepository)
		projectRepo := new(repoMocks.ProjectRepository)

		contentRepo.On("GetSlideByID", ctx, slide.ID).Return(slide, nil).Once()
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil).Once()
		feedbackRepo.On("Upsert", ctx, mock.MatchedBy(func(f *models.Feedback) bool {
			return f.UnitType == models.UnitSlide &&
				f.UnitID == slide.ID &&
				f.UserID == userID &&
				f.Kind == models.FeedbackLike
		})).Return(nil).Once()

		svc := service.NewFeedbackService(feedbackRepo, contentRepo, projectRepo, zap.NewNop())
		feedback, err := svc.SetFeedback(ctx, models.UnitSlide, slide.ID, userID, models.FeedbackLike)

		assert.NoError(t, err)
		assert.Equal(t, models.FeedbackLike, feedback.Kind)
		feedbackRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		svc := service.NewFeedbackService(new(repoMocks.FeedbackRepository), new(repoMocks.ContentRepository), new(repoMocks.ProjectRepository), zap.NewNop())
		feedback, err := svc.SetFeedback(ctx, models.UnitSlide, uuid.New(), userID, models.FeedbackKind("meh"))

		assert.Nil(t, feedback)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("foreign unit is forbidden", func(t *testing.T) {
		project := newWordProject(uuid.New())
		section := &models.Section{ID: uuid.New(), ProjectID: project.ID, Header: "Introduction"}

		feedbackRepo := new(repoMocks.FeedbackRepository)
		contentRepo := new(repoMocks.ContentRepository)
		projectRepo := new(repoMocks.ProjectRepository)

		contentRepo.On("GetSectionByID", ctx, section.ID).Return(section, nil).Once()
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil).Once()

		svc := service.NewFeedbackService(feedbackRepo, contentRepo, projectRepo, zap.NewNop())
		feedback, err := svc.SetFeedback(ctx, models.UnitSection, section.ID, userID, models.FeedbackDislike)

		assert.Nil(t, feedback)
		assert.ErrorIs(t, err, models.ErrForbidden)
		feedbackRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}
