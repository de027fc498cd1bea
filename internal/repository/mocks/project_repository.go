package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docgen-server/internal/models"
)

// Mock ProjectRepository
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}
func (m *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	args := m.Called(ctx, id)
	project, _ := args.Get(0).(*models.Project)
	return project, args.Error(1)
}
func (m *ProjectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	args := m.Called(ctx, userID)
	projects, _ := args.Get(0).([]models.Project)
	return projects, args.Error(1)
}
func (m *ProjectRepository) Update(ctx context.Context, id uuid.UUID, name, topic string) (*models.Project, error) {
	args := m.Called(ctx, id, name, topic)
	project, _ := args.Get(0).(*models.Project)
	return project, args.Error(1)
}
func (m *ProjectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ProjectStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
