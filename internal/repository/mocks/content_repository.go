package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docgen-server/internal/models"
)

// Mock ContentRepository
type ContentRepository struct {
	mock.Mock
}

func (m *ContentRepository) ReplaceSections(ctx context.Context, projectID uuid.UUID, headers []string) ([]models.Section, error) {
	args := m.Called(ctx, projectID, headers)
	sections, _ := args.Get(0).([]models.Section)
	return sections, args.Error(1)
}
func (m *ContentRepository) ReplaceSlides(ctx context.Context, projectID uuid.UUID, titles []string) ([]models.Slide, error) {
	args := m.Called(ctx, projectID, titles)
	slides, _ := args.Get(0).([]models.Slide)
	return slides, args.Error(1)
}
func (m *ContentRepository) ListSections(ctx context.Context, projectID uuid.UUID) ([]models.Section, error) {
	args := m.Called(ctx, projectID)
	sections, _ := args.Get(0).([]models.Section)
	return sections, args.Error(1)
}
func (m *ContentRepository) ListSlides(ctx context.Context, projectID uuid.UUID) ([]models.Slide, error) {
	args := m.Called(ctx, projectID)
	slides, _ := args.Get(0).([]models.Slide)
	return slides, args.Error(1)
}
func (m *ContentRepository) GetSectionByID(ctx context.Context, id uuid.UUID) (*models.Section, error) {
	args := m.Called(ctx, id)
	section, _ := args.Get(0).(*models.Section)
	return section, args.Error(1)
}
func (m *ContentRepository) GetSlideByID(ctx context.Context, id uuid.UUID) (*models.Slide, error) {
	args := m.Called(ctx, id)
	slide, _ := args.Get(0).(*models.Slide)
	return slide, args.Error(1)
}
func (m *ContentRepository) UpdateSectionContent(ctx context.Context, id uuid.UUID, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}
func (m *ContentRepository) UpdateSlideContent(ctx context.Context, id uuid.UUID, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}
func (m *ContentRepository) SetSectionImage(ctx context.Context, id uuid.UUID, url string, placement models.ImagePlacement) error {
	args := m.Called(ctx, id, url, placement)
	return args.Error(0)
}
func (m *ContentRepository) SetSlideImage(ctx context.Context, id uuid.UUID, url string, placement models.ImagePlacement) error {
	args := m.Called(ctx, id, url, placement)
	return args.Error(0)
}
