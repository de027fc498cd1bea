package service

import (
	"context"

	"docgen-server/internal/imagesearch"
	"docgen-server/internal/llm"
	"docgen-server/internal/models"
)

// AIClient is the language-model surface the services depend on.
type AIClient interface {
	GenerateSectionContent(ctx context.Context, topic, sectionHeader, extraContext string) (string, error)
	GenerateSlideContent(ctx context.Context, topic, slideTitle, extraContext string) (string, error)
	RefineContent(ctx context.Context, currentContent, refinementPrompt string) (string, error)
	GenerateTemplate(ctx context.Context, topic string, docType models.ProjectType) ([]string, error)
	DetermineImageNeed(ctx context.Context, content string) (bool, error)
	GenerateImageSearchQuery(ctx context.Context, content string) (string, error)
	DetermineImagePlacement(ctx context.Context, content string, docType models.ProjectType) (models.ImagePlacement, error)
}

var _ AIClient = (*llm.Client)(nil)

// ImageFinder locates an illustration URL for a search query.
type ImageFinder interface {
	FindImageURL(ctx context.Context, query string) (string, error)
}

var _ ImageFinder = (*imagesearch.Client)(nil)
