package repository

import (
	"context"

	"github.com/google/uuid"

	"docgen-server/internal/models"
)

// ProjectRepository defines storage operations for projects.
type ProjectRepository interface {
	// Create inserts a new project and fills in the generated ID and timestamps.
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project by ID. Returns models.ErrProjectNotFound
	// when no project exists.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)

	// ListByUser retrieves all projects owned by a user, most recently updated first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Project, error)

	// Update changes name and topic of a project.
	Update(ctx context.Context, id uuid.UUID, name, topic string) (*models.Project, error)

	// UpdateStatus transitions a project to the given status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ProjectStatus) error

	// Delete removes a project and, via cascade, its content units.
	Delete(ctx context.Context, id uuid.UUID) error
}
