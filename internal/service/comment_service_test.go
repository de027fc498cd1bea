package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"docgen-server/internal/models"
	repoMocks "docgen-server/internal/repository/mocks"
	"docgen-server/internal/service"
)

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("attaches comment to an owned section", func(t *testing.T) {
		project := newWordProject(userID)
		section := &models.Section{ID: uuid.New(), ProjectID: project.ID, Header: "Introduction"}

		commentRepo := new(repoMocks.CommentRepository)
		contentRepo := new(repoMocks.ContentRepository)
		projectRepo := new(repoMocks.ProjectRepository)

		contentRepo.On("GetSectionByID", ctx, section.ID).Return(section, nil).Once()
		projectRepo.On("GetByID", ctx, project.ID).Return(project, nil).Once()
		commentRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Comment) bool {
			return c.UnitType == models.UnitSection &&
				c.UnitID == section.ID &&
				c.UserID == userID &&
				c.Text == "needs a stronger opening"
		})).Return(nil).Once()

		svc := service.NewCommentService(commentRepo, contentRepo, projectRepo, zap.NewNop())
		comment, err := svc.AddComment(ctx, models.UnitSection, section.ID, userID, "  needs a stronger opening  ")

		assert.NoError(t, err)
		assert.Equal(t, "needs a stronger opening", comment.Text)
		commentRepo.AssertExpectations(t)
	})

	t.Run("rejects blank text", func(t *testing.T) {
		svc := service.NewCommentService(new(repoMocks.CommentRepository), new(repoMocks.ContentRepository), new(repoMocks.ProjectRepository), zap.NewNop())
		comment, err := svc.AddComment(ctx, models.UnitSection, uuid.New(), userID, "   ")

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("rejects oversized text", func(t *testing.T) {
		svc := service.NewCommentService(new(repoMocks.CommentRepository), new(repoMocks.ContentRepository), new(repoMocks.ProjectRepository), zap.NewNop())
		comment, err := svc.AddComment(ctx, models.UnitSection, uuid.New(), userID, strings.Repeat("x", 2001))

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}

func TestUpdateComment(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()

	t.Run("author can edit", func(t *testing.T) {
		stored := &models.Comment{ID: uuid.New(), UserID: author, Text: "old"}
		updated := &models.Comment{ID: stored.ID, UserID: author, Text: "new"}

		commentRepo := new(repoMocks.CommentRepository)
		commentRepo.On("GetByID", ctx, stored.ID).Return(stored, nil).Once()
		commentRepo.On("Update", ctx, stored.ID, "new").Return(updated, nil).Once()

		svc := service.NewCommentService(commentRepo, new(repoMocks.ContentRepository), new(repoMocks.ProjectRepository), zap.NewNop())
		comment, err := svc.UpdateComment(ctx, stored.ID, author, "new")

		assert.NoError(t, err)
		assert.Equal(t, "new", comment.Text)
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		stored := &models.Comment{ID: uuid.New(), UserID: author, Text: "old"}

		commentRepo := new(repoMocks.CommentRepository)
		commentRepo.On("GetByID", ctx, stored.ID).Return(stored, nil).Once()

		svc := service.NewCommentService(commentRepo, new(repoMocks.ContentRepository), new(repoMocks.ProjectRepository), zap.NewNop())
		comment, err := svc.UpdateComment(ctx, stored.ID, uuid.New(), "new")

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, models.ErrForbidden)
		commentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()

	t.Run("author can delete", func(t *testing.T) {
		stored := &models.Comment{ID: uuid.New(), UserID: author, Text: "old"}

		commentRepo := new(repoMocks.CommentRepository)
		commentRepo.On("GetByID", ctx, stored.ID).Return(stored, nil).Once()
		commentRepo.On("Delete", ctx, stored.ID).Return(nil).Once()

		svc := service.NewCommentService(commentRepo, new(repoMocks.ContentRepository), new(repoMocks.ProjectRepository), zap.NewNop())
		assert.NoError(t, svc.DeleteComment(ctx, stored.ID, author))
		commentRepo.AssertExpectations(t)
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		stored := &models.Comment{ID: uuid.New(), UserID: author, Text: "old"}

		commentRepo := new(repoMocks.CommentRepository)
		commentRepo.On("GetByID", ctx, stored.ID).Return(stored, nil).Once()

		svc := service.NewCommentService(commentRepo, new(repoMocks.ContentRepository), new(repoMocks.ProjectRepository), zap.NewNop())
		err := svc.DeleteComment(ctx, stored.ID, uuid.New())

		assert.ErrorIs(t, err, models.ErrForbidden)
		commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing comment is a not-found", func(t *testing.T) {
		commentRepo := new(repoMocks.CommentRepository)
		id := uuid.New()
		commentRepo.On("GetByID", ctx, id).Return(nil, models.ErrCommentNotFound).Once()

		svc := service.NewCommentService(commentRepo, new(repoMocks.ContentRepository), new(repoMocks.ProjectRepository), zap.NewNop())
		assert.ErrorIs(t, svc.DeleteComment(ctx, id, author), models.ErrCommentNotFound)
	})
}
