package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docgen-server/internal/models"
	"docgen-server/internal/repository"
)

// ProjectService defines project lifecycle operations. Every operation that
// takes a userID enforces that the user owns the project.
type ProjectService interface {
	CreateProject(ctx context.Context, userID uuid.UUID, name string, projectType models.ProjectType, topic string) (*models.Project, error)
	GetProject(ctx context.Context, projectID, userID uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context, userID uuid.UUID) ([]models.Project, error)
	UpdateProject(ctx context.Context, projectID, userID uuid.UUID, name, topic string) (*models.Project, error)
	DeleteProject(ctx context.Context, projectID, userID uuid.UUID) error
}

var _ ProjectService = (*projectServiceImpl)(nil)

type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	contentRepo repository.ContentRepository
	logger      *zap.Logger
}

// NewProjectService creates a new instance of projectServiceImpl.
func NewProjectService(projectRepo repository.ProjectRepository, contentRepo repository.ContentRepository, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		contentRepo: contentRepo,
		logger:      logger.Named("ProjectService"),
	}
}

// CreateProject creates a new project in the configuring state.
func (s *projectServiceImpl) CreateProject(ctx context.Context, userID uuid.UUID, name string, projectType models.ProjectType, topic string) (*models.Project, error) {
	if !projectType.IsValid() {
		return nil, fmt.Errorf("unsupported project type %q: %w", projectType, models.ErrInvalidProjectType)
	}

	project := &models.Project{
		UserID: userID,
		Name:   name,
		Type:   projectType,
		Topic:  topic,
		Status: models.StatusConfiguring,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		s.logger.Error("Failed to create project", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("Project created",
		zap.String("projectID", project.ID.String()),
		zap.String("userID", userID.String()),
		zap.String("type", string(projectType)))
	return project, nil
}

// GetProject returns a project with its content units loaded.
func (s *projectServiceImpl) GetProject(ctx context.Context, projectID, userID uuid.UUID) (*models.Project, error) {
	project, err := s.getOwnedProject(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	switch project.Type {
	case models.ProjectTypeWord:
		sections, err := s.contentRepo.ListSections(ctx, projectID)
		if err != nil {
			s.logger.Error("Failed to list sections", zap.Error(err), zap.String("projectID", projectID.String()))
			return nil, fmt.Errorf("failed to list sections: %w", err)
		}
		project.Sections = sections
	case models.ProjectTypePowerPoint:
		slides, err := s.contentRepo.ListSlides(ctx, projectID)
		if err != nil {
			s.logger.Error("Failed to list slides", zap.Error(err), zap.String("projectID", projectID.String()))
			return nil, fmt.Errorf("failed to list slides: %w", err)
		}
		project.Slides = slides
	}

	return project, nil
}

// ListProjects returns all projects of a user, most recently updated first, without content units.
func (s *projectServiceImpl) ListProjects(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list projects", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// UpdateProject changes the name and topic of a project.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, projectID, userID uuid.UUID, name, topic string) (*models.Project, error) {
	if _, err := s.getOwnedProject(ctx, projectID, userID); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.Update(ctx, projectID, name, topic)
	if err != nil {
		s.logger.Error("Failed to update project", zap.Error(err), zap.String("projectID", projectID.String()))
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.logger.Info("Project updated", zap.String("projectID", projectID.String()))
	return project, nil
}

// DeleteProject removes a project and all its content.
func (s *projectServiceImpl) DeleteProject(ctx context.Context, projectID, userID uuid.UUID) error {
	if _, err := s.getOwnedProject(ctx, projectID, userID); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		s.logger.Error("Failed to delete project", zap.Error(err), zap.String("projectID", projectID.String()))
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.logger.Info("Project deleted", zap.String("projectID", projectID.String()), zap.String("userID", userID.String()))
	return nil
}

func (s *projectServiceImpl) getOwnedProject(ctx context.Context, projectID, userID uuid.UUID) (*models.Project, error) {
	return loadOwnedProject(ctx, s.projectRepo, s.logger, projectID, userID)
}
