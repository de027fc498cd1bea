package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docgen-server/internal/models"
)

// Mock CommentRepository
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}
func (m *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	args := m.Called(ctx, id)
	comment, _ := args.Get(0).(*models.Comment)
	return comment, args.Error(1)
}
func (m *CommentRepository) ListByUnit(ctx context.Context, unitType models.ContentUnitType, unitID uuid.UUID) ([]models.Comment, error) {
	args := m.Called(ctx, unitType, unitID)
	comments, _ := args.Get(0).([]models.Comment)
	return comments, args.Error(1)
}
func (m *CommentRepository) Update(ctx context.Context, id uuid.UUID, text string) (*models.Comment, error) {
	args := m.Called(ctx, id, text)
	comment, _ := args.Get(0).(*models.Comment)
	return comment, args.Error(1)
}
func (m *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
