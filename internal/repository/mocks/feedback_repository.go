package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docgen-server/internal/models"
)

// Mock FeedbackRepository
type FeedbackRepository struct {
	mock.Mock
}

func (m *FeedbackRepository) Upsert(ctx context.Context, feedback *models.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}
func (m *FeedbackRepository) ListByUnit(ctx context.Context, unitType models.ContentUnitType, unitID uuid.UUID) ([]models.Feedback, error) {
	args := m.Called(ctx, unitType, unitID)
	items, _ := args.Get(0).([]models.Feedback)
	return items, args.Error(1)
}
