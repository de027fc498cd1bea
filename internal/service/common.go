package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docgen-server/internal/models"
	"docgen-server/internal/repository"
)

// loadOwnedProject loads a project and verifies that userID owns it.
// A project owned by someone else yields models.ErrForbidden, not a
// not-found, so handlers can distinguish the two.
func loadOwnedProject(ctx context.Context, repo repository.ProjectRepository, logger *zap.Logger, projectID, userID uuid.UUID) (*models.Project, error) {
	project, err := repo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, models.ErrProjectNotFound) {
			return nil, models.ErrProjectNotFound
		}
		logger.Error("Failed to get project", zap.Error(err), zap.String("projectID", projectID.String()))
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project.UserID != userID {
		logger.Warn("Project access denied",
			zap.String("projectID", projectID.String()),
			zap.String("ownerID", project.UserID.String()),
			zap.String("userID", userID.String()))
		return nil, models.ErrForbidden
	}
	return project, nil
}

// unitRef is a resolved content unit together with its owning project.
type unitRef struct {
	Type    models.ContentUnitType
	ID      uuid.UUID
	Content *string
	Project *models.Project
}

// loadOwnedUnit resolves a section or slide and verifies that userID owns
// the project it belongs to.
func loadOwnedUnit(ctx context.Context, contentRepo repository.ContentRepository, projectRepo repository.ProjectRepository, logger *zap.Logger, unitType models.ContentUnitType, unitID, userID uuid.UUID) (*unitRef, error) {
	ref := &unitRef{Type: unitType, ID: unitID}

	var projectID uuid.UUID
	switch unitType {
	case models.UnitSection:
		section, err := contentRepo.GetSectionByID(ctx, unitID)
		if err != nil {
			if errors.Is(err, models.ErrSectionNotFound) {
				return nil, models.ErrSectionNotFound
			}
			logger.Error("Failed to get section", zap.Error(err), zap.String("sectionID", unitID.String()))
			return nil, fmt.Errorf("failed to get section: %w", err)
		}
		projectID = section.ProjectID
		ref.Content = section.Content
	case models.UnitSlide:
		slide, err := contentRepo.GetSlideByID(ctx, unitID)
		if err != nil {
			if errors.Is(err, models.ErrSlideNotFound) {
				return nil, models.ErrSlideNotFound
			}
			logger.Error("Failed to get slide", zap.Error(err), zap.String("slideID", unitID.String()))
			return nil, fmt.Errorf("failed to get slide: %w", err)
		}
		projectID = slide.ProjectID
		ref.Content = slide.Content
	default:
		return nil, fmt.Errorf("unknown content unit type %q: %w", unitType, models.ErrBadRequest)
	}

	project, err := loadOwnedProject(ctx, projectRepo, logger, projectID, userID)
	if err != nil {
		return nil, err
	}
	ref.Project = project
	return ref, nil
}
