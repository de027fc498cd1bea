package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docgen-server/internal/models"
)

// Mock AIClient
type AIClient struct {
	mock.Mock
}

func (m *AIClient) GenerateSectionContent(ctx context.Context, topic, sectionHeader, extraContext string) (string, error) {
	args := m.Called(ctx, topic, sectionHeader, extraContext)
	return args.String(0), args.Error(1)
}

func (m *AIClient) GenerateSlideContent(ctx context.Context, topic, slideTitle, extraContext string) (string, error) {
	args := m.Called(ctx, topic, slideTitle, extraContext)
	return args.String(0), args.Error(1)
}

func (m *AIClient) RefineContent(ctx context.Context, currentContent, refinementPrompt string) (string, error) {
	args := m.Called(ctx, currentContent, refinementPrompt)
	return args.String(0), args.Error(1)
}

func (m *AIClient) GenerateTemplate(ctx context.Context, topic string, docType models.ProjectType) ([]string, error) {
	args := m.Called(ctx, topic, docType)
	items, _ := args.Get(0).([]string)
	return items, args.Error(1)
}

func (m *AIClient) DetermineImageNeed(ctx context.Context, content string) (bool, error) {
	args := m.Called(ctx, content)
	return args.Bool(0), args.Error(1)
}

func (m *AIClient) GenerateImageSearchQuery(ctx context.Context, content string) (string, error) {
	args := m.Called(ctx, content)
	return args.String(0), args.Error(1)
}

func (m *AIClient) DetermineImagePlacement(ctx context.Context, content string, docType models.ProjectType) (models.ImagePlacement, error) {
	args := m.Called(ctx, content, docType)
	placement, _ := args.Get(0).(models.ImagePlacement)
	return placement, args.Error(1)
}
