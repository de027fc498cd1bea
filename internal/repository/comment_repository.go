package repository

import (
	"context"

	"github.com/google/uuid"

	"docgen-server/internal/models"
)

// CommentRepository defines storage operations for comments.
type CommentRepository interface {
	// Create inserts a new comment and fills in the generated ID and timestamps.
	Create(ctx context.Context, comment *models.Comment) error

	// GetByID retrieves one comment. Returns models.ErrCommentNotFound
	// when no comment exists.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)

	// ListByUnit returns all comments on a content unit, oldest first.
	ListByUnit(ctx context.Context, unitType models.ContentUnitType, unitID uuid.UUID) ([]models.Comment, error)

	// Update changes the text of a comment.
	Update(ctx context.Context, id uuid.UUID, text string) (*models.Comment, error)

	// Delete removes a comment.
	Delete(ctx context.Context, id uuid.UUID) error
}
