package repository

import (
	"context"

	"github.com/google/uuid"

	"docgen-server/internal/models"
)

// FeedbackRepository defines storage operations for per-user reactions.
type FeedbackRepository interface {
	// Upsert stores a reaction, replacing any previous reaction the same
	// user left on the same unit.
	Upsert(ctx context.Context, feedback *models.Feedback) error

	// ListByUnit returns all reactions on a content unit.
	ListByUnit(ctx context.Context, unitType models.ContentUnitType, unitID uuid.UUID) ([]models.Feedback, error)
}
