package repository

import (
	"context"

	"github.com/google/uuid"

	"docgen-server/internal/models"
)

// RefinementRepository defines storage operations for refinement history.
// History is append-only: entries are never updated or removed.
type RefinementRepository interface {
	// Create appends a refinement entry.
	Create(ctx context.Context, refinement *models.Refinement) error

	// ListByUnit returns the refinement history of a content unit, oldest first.
	ListByUnit(ctx context.Context, unitType models.ContentUnitType, unitID uuid.UUID) ([]models.Refinement, error)
}
