package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docgen-server/internal/models"
	"docgen-server/internal/repository"
)

// FeedbackService records like/dislike reactions on content units. A user
// keeps at most one reaction per unit; a new one replaces the old.
type FeedbackService interface {
	SetFeedback(ctx context.Context, unitType models.ContentUnitType, unitID, userID uuid.UUID, kind models.FeedbackKind) (*models.Feedback, error)
	ListFeedback(ctx context.Context, unitType models.ContentUnitType, unitID, userID uuid.UUID) ([]models.Feedback, error)
}

var _ FeedbackService = (*feedbackServiceImpl)(nil)

type feedbackServiceImpl struct {
	feedbackRepo repository.FeedbackRepository
	contentRepo  repository.ContentRepository
	projectRepo  repository.ProjectRepository
	logger       *zap.Logger
}

// NewFeedbackService creates a new instance of feedbackServiceImpl.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, contentRepo repository.ContentRepository, projectRepo repository.ProjectRepository, logger *zap.Logger) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		contentRepo:  contentRepo,
		projectRepo:  projectRepo,
		logger:       logger.Named("FeedbackService"),
	}
}

// SetFeedback stores the user's reaction, replacing any earlier one.
func (s *feedbackServiceImpl) SetFeedback(ctx context.Context, unitType models.ContentUnitType, unitID, userID uuid.UUID, kind models.FeedbackKind) (*models.Feedback, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unsupported feedback kind %q: %w", kind, models.ErrInvalidInput)
	}
	if _, err := loadOwnedUnit(ctx, s.contentRepo, s.projectRepo, s.logger, unitType, unitID, userID); err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		UnitType: unitType,
		UnitID:   unitID,
		UserID:   userID,
		Kind:     kind,
	}
	if err := s.feedbackRepo.Upsert(ctx, feedback); err != nil {
		s.logger.Error("Failed to store feedback", zap.Error(err), zap.String("unitID", unitID.String()))
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}

	s.logger.Info("Feedback stored",
		zap.String("unitID", unitID.String()),
		zap.String("kind", string(kind)))
	return feedback, nil
}

// ListFeedback returns all reactions on a unit.
func (s *feedbackServiceImpl) ListFeedback(ctx context.Context, unitType models.ContentUnitType, unitID, userID uuid.UUID) ([]models.Feedback, error) {
	if _, err := loadOwnedUnit(ctx, s.contentRepo, s.projectRepo, s.logger, unitType, unitID, userID); err != nil {
		return nil, err
	}
	feedback, err := s.feedbackRepo.ListByUnit(ctx, unitType, unitID)
	if err != nil {
		s.logger.Error("Failed to list feedback", zap.Error(err), zap.String("unitID", unitID.String()))
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedback, nil
}
