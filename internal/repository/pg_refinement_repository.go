package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"docgen-server/internal/models"
)

// Compile-time check to ensure pgRefinementRepository implements RefinementRepository
var _ RefinementRepository = (*pgRefinementRepository)(nil)

type pgRefinementRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgRefinementRepository creates a new PostgreSQL-backed RefinementRepository.
func NewPgRefinementRepository(db DBTX, logger *zap.Logger) RefinementRepository {
	return &pgRefinementRepository{
		db:     db,
		logger: logger.Named("PgRefinementRepo"),
	}
}

const refinementColumns = `id, unit_type, unit_id, user_id, prompt, previous_content, new_content, created_at`

func scanRefinement(row pgx.Row, ref *models.Refinement) error {
	return row.Scan(&ref.ID, &ref.UnitType, &ref.UnitID, &ref.UserID, &ref.Prompt, &ref.PreviousContent, &ref.NewContent, &ref.CreatedAt)
}

func (r *pgRefinementRepository) Create(ctx context.Context, refinement *models.Refinement) error {
	query := `INSERT INTO refinements (unit_type, unit_id, user_id, prompt, previous_content, new_content)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, refinement.UnitType, refinement.UnitID, refinement.UserID, refinement.Prompt, refinement.PreviousContent, refinement.NewContent).
		Scan(&refinement.ID, &refinement.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create refinement in postgres", zap.Error(err), zap.String("unitID", refinement.UnitID.String()))
		return fmt.Errorf("failed to create refinement: %w", err)
	}
	return nil
}

func (r *pgRefinementRepository) ListByUnit(ctx context.Context, unitType models.ContentUnitType, unitID uuid.UUID) ([]models.Refinement, error) {
	query := `SELECT ` + refinementColumns + ` FROM refinements WHERE unit_type = $1 AND unit_id = $2 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, unitType, unitID)
	if err != nil {
		r.logger.Error("Failed to query refinements from postgres", zap.Error(err), zap.String("unitID", unitID.String()))
		return nil, fmt.Errorf("failed to query refinements: %w", err)
	}
	defer rows.Close()

	items := make([]models.Refinement, 0)
	for rows.Next() {
		var ref models.Refinement
		if err := scanRefinement(rows, &ref); err != nil {
			return nil, fmt.Errorf("failed to scan refinement row: %w", err)
		}
		items = append(items, ref)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating refinement rows: %w", err)
	}
	return items, nil
}
