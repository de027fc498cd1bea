package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docgen-server/internal/models"
	"docgen-server/internal/repository"
)

const maxCommentLength = 2000

// CommentService manages comments on content units. Reading requires access
// to the unit's project; editing and deleting require comment authorship.
type CommentService interface {
	AddComment(ctx context.Context, unitType models.ContentUnitType, unitID, userID uuid.UUID, text string) (*models.Comment, error)
	ListComments(ctx context.Context, unitType models.ContentUnitType, unitID, userID uuid.UUID) ([]models.Comment, error)
	UpdateComment(ctx context.Context, commentID, userID uuid.UUID, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error
}

var _ CommentService = (*commentServiceImpl)(nil)

type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	contentRepo repository.ContentRepository
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
}

// NewCommentService creates a new instance of commentServiceImpl.
func NewCommentService(commentRepo repository.CommentRepository, contentRepo repository.ContentRepository, projectRepo repository.ProjectRepository, logger *zap.Logger) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		contentRepo: contentRepo,
		projectRepo: projectRepo,
		logger:      logger.Named("CommentService"),
	}
}

// AddComment attaches a comment to a section or slide.
func (s *commentServiceImpl) AddComment(ctx context.Context, unitType models.ContentUnitType, unitID, userID uuid.UUID, text string) (*models.Comment, error) {
	if err := validateCommentText(text); err != nil {
		return nil, err
	}
	if _, err := loadOwnedUnit(ctx, s.contentRepo, s.projectRepo, s.logger, unitType, unitID, userID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UnitType: unitType,
		UnitID:   unitID,
		UserID:   userID,
		Text:     strings.TrimSpace(text),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		s.logger.Error("Failed to create comment", zap.Error(err), zap.String("unitID", unitID.String()))
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("Comment added", zap.String("commentID", comment.ID.String()), zap.String("unitID", unitID.String()))
	return comment, nil
}

// ListComments returns all comments on a unit, oldest first.
func (s *commentServiceImpl) ListComments(ctx context.Context, unitType models.ContentUnitType, unitID, userID uuid.UUID) ([]models.Comment, error) {
	if _, err := loadOwnedUnit(ctx, s.contentRepo, s.projectRepo, s.logger, unitType, unitID, userID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByUnit(ctx, unitType, unitID)
	if err != nil {
		s.logger.Error("Failed to list comments", zap.Error(err), zap.String("unitID", unitID.String()))
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// UpdateComment changes the text of a comment. Only the author may edit.
func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID, userID uuid.UUID, text string) (*models.Comment, error) {
	if err := validateCommentText(text); err != nil {
		return nil, err
	}
	if err := s.requireAuthor(ctx, commentID, userID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.Update(ctx, commentID, strings.TrimSpace(text))
	if err != nil {
		s.logger.Error("Failed to update comment", zap.Error(err), zap.String("commentID", commentID.String()))
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

// DeleteComment removes a comment. Only the author may delete.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error {
	if err := s.requireAuthor(ctx, commentID, userID); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		s.logger.Error("Failed to delete comment", zap.Error(err), zap.String("commentID", commentID.String()))
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	s.logger.Info("Comment deleted", zap.String("commentID", commentID.String()))
	return nil
}

func (s *commentServiceImpl) requireAuthor(ctx context.Context, commentID, userID uuid.UUID) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, models.ErrCommentNotFound) {
			return models.ErrCommentNotFound
		}
		s.logger.Error("Failed to get comment", zap.Error(err), zap.String("commentID", commentID.String()))
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if comment.UserID != userID {
		s.logger.Warn("Comment modification denied",
			zap.String("commentID", commentID.String()),
			zap.String("authorID", comment.UserID.String()),
			zap.String("userID", userID.String()))
		return models.ErrForbidden
	}
	return nil
}

func validateCommentText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("comment text is blank: %w", models.ErrInvalidInput)
	}
	if len(trimmed) > maxCommentLength {
		return fmt.Errorf("comment text exceeds %d characters: %w", maxCommentLength, models.ErrInvalidInput)
	}
	return nil
}
