package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docgen-server/internal/export"
	"docgen-server/internal/models"
	"docgen-server/internal/repository"
)

// MIME types for the OOXML container formats.
const (
	DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	PptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// ExportService renders a project into a downloadable document.
type ExportService interface {
	// ExportProject writes the rendered file to w and returns the filename
	// and MIME type to serve it under. Every unit must have generated
	// content; otherwise models.ErrNothingToExport is returned.
	ExportProject(ctx context.Context, projectID, userID uuid.UUID, themeName string, w io.Writer) (filename, contentType string, err error)
}

var _ ExportService = (*exportServiceImpl)(nil)

type exportServiceImpl struct {
	projectRepo repository.ProjectRepository
	contentRepo repository.ContentRepository
	logger      *zap.Logger
}

// NewExportService creates a new instance of exportServiceImpl.
func NewExportService(projectRepo repository.ProjectRepository, contentRepo repository.ContentRepository, logger *zap.Logger) ExportService {
	return &exportServiceImpl{
		projectRepo: projectRepo,
		contentRepo: contentRepo,
		logger:      logger.Named("ExportService"),
	}
}

// ExportProject renders the project as .docx or .pptx depending on its type.
func (s *exportServiceImpl) ExportProject(ctx context.Context, projectID, userID uuid.UUID, themeName string, w io.Writer) (string, string, error) {
	project, err := loadOwnedProject(ctx, s.projectRepo, s.logger, projectID, userID)
	if err != nil {
		return "", "", err
	}
	theme := export.ThemeByName(themeName)
	log := s.logger.With(zap.String("projectID", projectID.String()), zap.String("theme", theme.Name))

	switch project.Type {
	case models.ProjectTypeWord:
		sections, err := s.contentRepo.ListSections(ctx, projectID)
		if err != nil {
			log.Error("Failed to list sections for export", zap.Error(err))
			return "", "", fmt.Errorf("failed to list sections: %w", err)
		}
		if len(sections) == 0 {
			return "", "", models.ErrProjectNotConfigured
		}
		if !allSectionsGenerated(sections) {
			return "", "", models.ErrNothingToExport
		}
		if err := export.WriteDocx(w, project, sections, theme); err != nil {
			log.Error("Failed to render document", zap.Error(err))
			return "", "", fmt.Errorf("failed to render document: %w", err)
		}
		log.Info("Project exported", zap.Int("sections", len(sections)))
		return export.Filename(project.Name, "docx"), DocxContentType, nil

	case models.ProjectTypePowerPoint:
		slides, err := s.contentRepo.ListSlides(ctx, projectID)
		if err != nil {
			log.Error("Failed to list slides for export", zap.Error(err))
			return "", "", fmt.Errorf("failed to list slides: %w", err)
		}
		if len(slides) == 0 {
			return "", "", models.ErrProjectNotConfigured
		}
		if !allSlidesGenerated(slides) {
			return "", "", models.ErrNothingToExport
		}
		if err := export.WritePptx(w, project, slides, theme); err != nil {
			log.Error("Failed to render presentation", zap.Error(err))
			return "", "", fmt.Errorf("failed to render presentation: %w", err)
		}
		log.Info("Project exported", zap.Int("slides", len(slides)))
		return export.Filename(project.Name, "pptx"), PptxContentType, nil

	default:
		return "", "", models.ErrInvalidProjectType
	}
}

// A single ungenerated unit blocks the export: a partially generated
// project must be completed (or reconfigured) before download.
func allSectionsGenerated(sections []models.Section) bool {
	for i := range sections {
		if sections[i].Content == nil || strings.TrimSpace(*sections[i].Content) == "" {
			return false
		}
	}
	return true
}

func allSlidesGenerated(slides []models.Slide) bool {
	for i := range slides {
		if slides[i].Content == nil || strings.TrimSpace(*slides[i].Content) == "" {
			return false
		}
	}
	return true
}
