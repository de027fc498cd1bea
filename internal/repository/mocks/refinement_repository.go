package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docgen-server/internal/models"
)

// Mock RefinementRepository
type RefinementRepository struct {
	mock.Mock
}

func (m *RefinementRepository) Create(ctx context.Context, refinement *models.Refinement) error {
	args := m.Called(ctx, refinement)
	return args.Error(0)
}
func (m *RefinementRepository) ListByUnit(ctx context.Context, unitType models.ContentUnitType, unitID uuid.UUID) ([]models.Refinement, error) {
	args := m.Called(ctx, unitType, unitID)
	items, _ := args.Get(0).([]models.Refinement)
	return items, args.Error(1)
}
