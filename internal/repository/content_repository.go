package repository

import (
	"context"

	"github.com/google/uuid"

	"docgen-server/internal/models"
)

// ContentRepository defines storage operations for sections and slides.
type ContentRepository interface {
	// ReplaceSections atomically replaces the full section list of a project.
	// Positions are assigned from array order, starting at 0. Previously
	// generated content does not survive the replacement.
	ReplaceSections(ctx context.Context, projectID uuid.UUID, headers []string) ([]models.Section, error)

	// ReplaceSlides atomically replaces the full slide list of a project.
	ReplaceSlides(ctx context.Context, projectID uuid.UUID, titles []string) ([]models.Slide, error)

	// ListSections returns a project's sections ordered by position.
	ListSections(ctx context.Context, projectID uuid.UUID) ([]models.Section, error)

	// ListSlides returns a project's slides ordered by position.
	ListSlides(ctx context.Context, projectID uuid.UUID) ([]models.Slide, error)

	// GetSectionByID retrieves one section. Returns models.ErrSectionNotFound
	// when no section exists.
	GetSectionByID(ctx context.Context, id uuid.UUID) (*models.Section, error)

	// GetSlideByID retrieves one slide. Returns models.ErrSlideNotFound
	// when no slide exists.
	GetSlideByID(ctx context.Context, id uuid.UUID) (*models.Slide, error)

	// UpdateSectionContent stores generated or refined text for a section.
	UpdateSectionContent(ctx context.Context, id uuid.UUID, content string) error

	// UpdateSlideContent stores generated or refined text for a slide.
	UpdateSlideContent(ctx context.Context, id uuid.UUID, content string) error

	// SetSectionImage attaches a sourced image to a section.
	SetSectionImage(ctx context.Context, id uuid.UUID, url string, placement models.ImagePlacement) error

	// SetSlideImage attaches a sourced image to a slide.
	SetSlideImage(ctx context.Context, id uuid.UUID, url string, placement models.ImagePlacement) error
}
