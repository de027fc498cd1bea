package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docgen-server/internal/models"
	"docgen-server/internal/repository"
)

// GenerationOutcome reports what a bulk generation run achieved.
type GenerationOutcome struct {
	Status      string          `json:"status"` // "success" or "partial"
	Message     string          `json:"message"`
	Generated   int             `json:"generated"`
	Total       int             `json:"total"`
	FailedUnits []string        `json:"failedUnits,omitempty"`
	Project     *models.Project `json:"project"`
}

// ContentService covers configuration, bulk generation, per-unit refinement
// and template suggestions.
type ContentService interface {
	// SaveConfiguration replaces the project's full content structure with
	// the given section headers or slide titles, positions following array
	// order. The declared kind must match the project type: sending slides
	// for a word project (or sections for a powerpoint one) is rejected
	// with models.ErrInvalidProjectType.
	SaveConfiguration(ctx context.Context, projectID, userID uuid.UUID, kind models.ContentUnitType, items []string) (*models.Project, error)

	// GenerateContent runs the language model over every configured unit.
	// All units generated moves the project to ready_for_refinement; a
	// partial result moves it to partially_generated; zero results leave
	// the status untouched and return models.ErrGenerationUnavailable.
	GenerateContent(ctx context.Context, projectID, userID uuid.UUID) (*GenerationOutcome, error)

	// RefineUnit rewrites one unit's content according to the user prompt
	// and appends an entry to the unit's refinement history. Existing
	// content survives a failed refinement untouched.
	RefineUnit(ctx context.Context, unitType models.ContentUnitType, unitID, userID uuid.UUID, prompt string) (*UnitResult, error)

	// GetRefinementHistory returns the unit's refinement log, oldest first.
	GetRefinementHistory(ctx context.Context, unitType models.ContentUnitType, unitID, userID uuid.UUID) ([]models.Refinement, error)

	// GenerateTemplate asks the language model for a suggested structure:
	// section headers for word, slide titles for powerpoint.
	GenerateTemplate(ctx context.Context, projectID, userID uuid.UUID) ([]string, error)

	// AcceptTemplate applies a template (possibly edited by the user) as
	// the project configuration.
	AcceptTemplate(ctx context.Context, projectID, userID uuid.UUID, items []string) (*models.Project, error)
}

// UnitResult carries the refreshed unit back to the handler; exactly one of
// Section or Slide is set.
type UnitResult struct {
	Section *models.Section
	Slide   *models.Slide
}

var _ ContentService = (*contentServiceImpl)(nil)

type contentServiceImpl struct {
	projectRepo    repository.ProjectRepository
	contentRepo    repository.ContentRepository
	refinementRepo repository.RefinementRepository
	ai             AIClient
	images         ImageFinder
	logger         *zap.Logger
}

// NewContentService creates a new instance of contentServiceImpl. The image
// finder may be nil, which disables image enrichment.
func NewContentService(
	projectRepo repository.ProjectRepository,
	contentRepo repository.ContentRepository,
	refinementRepo repository.RefinementRepository,
	ai AIClient,
	images ImageFinder,
	logger *zap.Logger,
) ContentService {
	return &contentServiceImpl{
		projectRepo:    projectRepo,
		contentRepo:    contentRepo,
		refinementRepo: refinementRepo,
		ai:             ai,
		images:         images,
		logger:         logger.Named("ContentService"),
	}
}

// SaveConfiguration replaces all sections or slides of a project.
func (s *contentServiceImpl) SaveConfiguration(ctx context.Context, projectID, userID uuid.UUID, kind models.ContentUnitType, items []string) (*models.Project, error) {
	project, err := loadOwnedProject(ctx, s.projectRepo, s.logger, projectID, userID)
	if err != nil {
		return nil, err
	}
	if err := checkConfigurationKind(project.Type, kind); err != nil {
		return nil, err
	}
	if err := validateStructureItems(items); err != nil {
		return nil, err
	}
	return s.applyStructure(ctx, project, items)
}

// checkConfigurationKind rejects a configuration whose kind does not match
// the project's document type.
func checkConfigurationKind(projectType models.ProjectType, kind models.ContentUnitType) error {
	switch projectType {
	case models.ProjectTypeWord:
		if kind != models.UnitSection {
			return fmt.Errorf("cannot configure PowerPoint slides for a Word project: %w", models.ErrInvalidProjectType)
		}
	case models.ProjectTypePowerPoint:
		if kind != models.UnitSlide {
			return fmt.Errorf("cannot configure Word sections for a PowerPoint project: %w", models.ErrInvalidProjectType)
		}
	}
	return nil
}

// GenerateContent generates content for every configured unit of the project.
func (s *contentServiceImpl) GenerateContent(ctx context.Context, projectID, userID uuid.UUID) (*GenerationOutcome, error) {
	project, err := loadOwnedProject(ctx, s.projectRepo, s.logger, projectID, userID)
	if err != nil {
		return nil, err
	}
	log := s.logger.With(zap.String("projectID", projectID.String()), zap.String("type", string(project.Type)))

	switch project.Type {
	case models.ProjectTypeWord:
		sections, err := s.contentRepo.ListSections(ctx, projectID)
		if err != nil {
			log.Error("Failed to list sections before generation", zap.Error(err))
			return nil, fmt.Errorf("failed to list sections: %w", err)
		}
		if len(sections) == 0 {
			return nil, models.ErrProjectNotConfigured
		}

		generated := 0
		var failed []string
		for i := range sections {
			section := &sections[i]
			content, err := s.ai.GenerateSectionContent(ctx, project.Topic, section.Header, "")
			if err != nil {
				log.Warn("Section generation failed", zap.Error(err), zap.String("sectionID", section.ID.String()))
				failed = append(failed, section.Header)
				continue
			}
			if err := s.contentRepo.UpdateSectionContent(ctx, section.ID, content); err != nil {
				log.Error("Failed to store generated section content", zap.Error(err), zap.String("sectionID", section.ID.String()))
				failed = append(failed, section.Header)
				continue
			}
			section.Content = &content
			generated++
			s.enrichSectionImage(ctx, project, section)
		}
		return s.finishGeneration(ctx, project, generated, len(sections), failed, "sections")

	case models.ProjectTypePowerPoint:
		slides, err := s.contentRepo.ListSlides(ctx, projectID)
		if err != nil {
			log.Error("Failed to list slides before generation", zap.Error(err))
			return nil, fmt.Errorf("failed to list slides: %w", err)
		}
		if len(slides) == 0 {
			return nil, models.ErrProjectNotConfigured
		}

		generated := 0
		var failed []string
		for i := range slides {
			slide := &slides[i]
			content, err := s.ai.GenerateSlideContent(ctx, project.Topic, slide.Title, "")
			if err != nil {
				log.Warn("Slide generation failed", zap.Error(err), zap.String("slideID", slide.ID.String()))
				failed = append(failed, slide.Title)
				continue
			}
			if err := s.contentRepo.UpdateSlideContent(ctx, slide.ID, content); err != nil {
				log.Error("Failed to store generated slide content", zap.Error(err), zap.String("slideID", slide.ID.String()))
				failed = append(failed, slide.Title)
				continue
			}
			slide.Content = &content
			generated++
			s.enrichSlideImage(ctx, project, slide)
		}
		return s.finishGeneration(ctx, project, generated, len(slides), failed, "slides")

	default:
		return nil, models.ErrInvalidProjectType
	}
}

// finishGeneration applies the status transition the run earned and builds
// the outcome. When nothing was generated the project status stays as it was.
func (s *contentServiceImpl) finishGeneration(ctx context.Context, project *models.Project, generated, total int, failed []string, unitNoun string) (*GenerationOutcome, error) {
	log := s.logger.With(zap.String("projectID", project.ID.String()))

	switch {
	case generated == total:
		if err := s.updateStatus(ctx, project, models.StatusReadyForRefinement); err != nil {
			return nil, err
		}
		log.Info("Generation complete", zap.Int("generated", generated))
		return &GenerationOutcome{
			Status:    "success",
			Message:   fmt.Sprintf("Successfully generated content for all %d %s", generated, unitNoun),
			Generated: generated,
			Total:     total,
			Project:   project,
		}, nil
	case generated > 0:
		if err := s.updateStatus(ctx, project, models.StatusPartiallyGenerated); err != nil {
			return nil, err
		}
		log.Warn("Generation partially complete", zap.Int("generated", generated), zap.Int("total", total))
		return &GenerationOutcome{
			Status:      "partial",
			Message:     fmt.Sprintf("Generated content for %d of %d %s. Failed: %s", generated, total, unitNoun, strings.Join(failed, ", ")),
			Generated:   generated,
			Total:       total,
			FailedUnits: failed,
			Project:     project,
		}, nil
	default:
		log.Error("Generation failed for every unit", zap.Int("total", total))
		return nil, models.ErrGenerationUnavailable
	}
}

func (s *contentServiceImpl) updateStatus(ctx context.Context, project *models.Project, status models.ProjectStatus) error {
	if err := s.projectRepo.UpdateStatus(ctx, project.ID, status); err != nil {
		s.logger.Error("Failed to update project status", zap.Error(err),
			zap.String("projectID", project.ID.String()), zap.String("status", string(status)))
		return fmt.Errorf("failed to update project status: %w", err)
	}
	project.Status = status
	return nil
}

// RefineUnit rewrites one unit's content and records the refinement.
func (s *contentServiceImpl) RefineUnit(ctx context.Context, unitType models.ContentUnitType, unitID, userID uuid.UUID, prompt string) (*UnitResult, error) {
	ref, err := loadOwnedUnit(ctx, s.contentRepo, s.projectRepo, s.logger, unitType, unitID, userID)
	if err != nil {
		return nil, err
	}
	if ref.Content == nil || strings.TrimSpace(*ref.Content) == "" {
		return nil, models.ErrNothingToRefine
	}
	previous := *ref.Content
	log := s.logger.With(zap.String("unitType", string(unitType)), zap.String("unitID", unitID.String()))

	refined, err := s.ai.RefineContent(ctx, *ref.Content, prompt)
	if err != nil {
		log.Warn("Refinement failed, keeping existing content", zap.Error(err))
		return nil, err
	}

	switch unitType {
	case models.UnitSection:
		err = s.contentRepo.UpdateSectionContent(ctx, unitID, refined)
	case models.UnitSlide:
		err = s.contentRepo.UpdateSlideContent(ctx, unitID, refined)
	}
	if err != nil {
		log.Error("Failed to store refined content", zap.Error(err))
		return nil, fmt.Errorf("failed to store refined content: %w", err)
	}

	entry := &models.Refinement{
		UnitType:        unitType,
		UnitID:          unitID,
		UserID:          userID,
		Prompt:          prompt,
		PreviousContent: &previous,
		NewContent:      refined,
	}
	if err := s.refinementRepo.Create(ctx, entry); err != nil {
		// Content is already updated; a lost history row is not worth failing the call.
		log.Error("Failed to record refinement history", zap.Error(err))
	}

	log.Info("Unit refined")
	return s.loadUnitResult(ctx, unitType, unitID)
}

// GetRefinementHistory returns the refinement log of a unit, oldest first.
func (s *contentServiceImpl) GetRefinementHistory(ctx context.Context, unitType models.ContentUnitType, unitID, userID uuid.UUID) ([]models.Refinement, error) {
	if _, err := loadOwnedUnit(ctx, s.contentRepo, s.projectRepo, s.logger, unitType, unitID, userID); err != nil {
		return nil, err
	}
	history, err := s.refinementRepo.ListByUnit(ctx, unitType, unitID)
	if err != nil {
		s.logger.Error("Failed to list refinement history", zap.Error(err), zap.String("unitID", unitID.String()))
		return nil, fmt.Errorf("failed to list refinement history: %w", err)
	}
	return history, nil
}

// GenerateTemplate suggests a document structure for the project topic.
func (s *contentServiceImpl) GenerateTemplate(ctx context.Context, projectID, userID uuid.UUID) ([]string, error) {
	project, err := loadOwnedProject(ctx, s.projectRepo, s.logger, projectID, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(project.Topic) == "" {
		return nil, fmt.Errorf("project has no topic to build a template from: %w", models.ErrInvalidInput)
	}

	items, err := s.ai.GenerateTemplate(ctx, project.Topic, project.Type)
	if err != nil {
		s.logger.Warn("Template generation failed", zap.Error(err), zap.String("projectID", projectID.String()))
		return nil, err
	}
	if len(items) == 0 {
		s.logger.Warn("Template generation returned no items", zap.String("projectID", projectID.String()))
		return nil, models.ErrGenerationFailed
	}
	return items, nil
}

// AcceptTemplate applies a template as the project configuration.
func (s *contentServiceImpl) AcceptTemplate(ctx context.Context, projectID, userID uuid.UUID, items []string) (*models.Project, error) {
	project, err := loadOwnedProject(ctx, s.projectRepo, s.logger, projectID, userID)
	if err != nil {
		return nil, err
	}
	if err := validateStructureItems(items); err != nil {
		return nil, err
	}
	return s.applyStructure(ctx, project, items)
}

// applyStructure replaces the project's content units with the given headers
// or titles and returns the project with the fresh units loaded.
func (s *contentServiceImpl) applyStructure(ctx context.Context, project *models.Project, items []string) (*models.Project, error) {
	log := s.logger.With(zap.String("projectID", project.ID.String()))

	switch project.Type {
	case models.ProjectTypeWord:
		sections, err := s.contentRepo.ReplaceSections(ctx, project.ID, items)
		if err != nil {
			log.Error("Failed to replace sections", zap.Error(err))
			return nil, fmt.Errorf("failed to replace sections: %w", err)
		}
		project.Sections = sections
	case models.ProjectTypePowerPoint:
		slides, err := s.contentRepo.ReplaceSlides(ctx, project.ID, items)
		if err != nil {
			log.Error("Failed to replace slides", zap.Error(err))
			return nil, fmt.Errorf("failed to replace slides: %w", err)
		}
		project.Slides = slides
	default:
		return nil, models.ErrInvalidProjectType
	}

	log.Info("Project structure saved", zap.Int("units", len(items)))
	return project, nil
}

// enrichSectionImage sources an illustration for a freshly generated section.
// Best effort: any failure is logged and the section keeps no image.
func (s *contentServiceImpl) enrichSectionImage(ctx context.Context, project *models.Project, section *models.Section) {
	if s.images == nil || section.Content == nil {
		return
	}
	url, placement, ok := s.findImage(ctx, project.Type, *section.Content)
	if !ok {
		return
	}
	if err := s.contentRepo.SetSectionImage(ctx, section.ID, url, placement); err != nil {
		s.logger.Warn("Failed to store section image", zap.Error(err), zap.String("sectionID", section.ID.String()))
		return
	}
	section.ImageURL = &url
	section.ImagePlacement = &placement
}

func (s *contentServiceImpl) enrichSlideImage(ctx context.Context, project *models.Project, slide *models.Slide) {
	if s.images == nil || slide.Content == nil {
		return
	}
	url, placement, ok := s.findImage(ctx, project.Type, *slide.Content)
	if !ok {
		return
	}
	if err := s.contentRepo.SetSlideImage(ctx, slide.ID, url, placement); err != nil {
		s.logger.Warn("Failed to store slide image", zap.Error(err), zap.String("slideID", slide.ID.String()))
		return
	}
	slide.ImageURL = &url
	slide.ImagePlacement = &placement
}

func (s *contentServiceImpl) findImage(ctx context.Context, docType models.ProjectType, content string) (string, models.ImagePlacement, bool) {
	needed, err := s.ai.DetermineImageNeed(ctx, content)
	if err != nil || !needed {
		return "", "", false
	}
	query, err := s.ai.GenerateImageSearchQuery(ctx, content)
	if err != nil || query == "" {
		return "", "", false
	}
	url, err := s.images.FindImageURL(ctx, query)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.logger.Debug("Image search came up empty", zap.Error(err), zap.String("query", query))
		}
		return "", "", false
	}
	placement, err := s.ai.DetermineImagePlacement(ctx, content, docType)
	if err != nil {
		return "", "", false
	}
	return url, placement, true
}

func (s *contentServiceImpl) loadUnitResult(ctx context.Context, unitType models.ContentUnitType, unitID uuid.UUID) (*UnitResult, error) {
	switch unitType {
	case models.UnitSection:
		section, err := s.contentRepo.GetSectionByID(ctx, unitID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload section: %w", err)
		}
		return &UnitResult{Section: section}, nil
	default:
		slide, err := s.contentRepo.GetSlideByID(ctx, unitID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload slide: %w", err)
		}
		return &UnitResult{Slide: slide}, nil
	}
}

// validateStructureItems rejects empty configurations and blank or oversized
// headers and titles. Line breaks are not allowed inside a header.
func validateStructureItems(items []string) error {
	if len(items) == 0 {
		return fmt.Errorf("configuration needs at least one item: %w", models.ErrInvalidInput)
	}
	for i, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			return fmt.Errorf("item %d is blank: %w", i, models.ErrInvalidInput)
		}
		if len(trimmed) > 500 {
			return fmt.Errorf("item %d exceeds 500 characters: %w", i, models.ErrInvalidInput)
		}
		if strings.ContainsAny(trimmed, "\r\n") {
			return fmt.Errorf("item %d contains line breaks: %w", i, models.ErrInvalidInput)
		}
	}
	return nil
}
