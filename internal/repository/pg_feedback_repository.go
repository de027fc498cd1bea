package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"docgen-server/internal/models"
)

// Compile-time check to ensure pgFeedbackRepository implements FeedbackRepository
var _ FeedbackRepository = (*pgFeedbackRepository)(nil)

type pgFeedbackRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgFeedbackRepository creates a new PostgreSQL-backed FeedbackRepository.
func NewPgFeedbackRepository(db DBTX, logger *zap.Logger) FeedbackRepository {
	return &pgFeedbackRepository{
		db:     db,
		logger: logger.Named("PgFeedbackRepo"),
	}
}

const feedbackColumns = `id, unit_type, unit_id, user_id, kind, created_at, updated_at`

func scanFeedback(row pgx.Row, f *models.Feedback) error {
	return row.Scan(&f.ID, &f.UnitType, &f.UnitID, &f.UserID, &f.Kind, &f.CreatedAt, &f.UpdatedAt)
}

func (r *pgFeedbackRepository) Upsert(ctx context.Context, feedback *models.Feedback) error {
	query := `INSERT INTO feedback (unit_type, unit_id, user_id, kind)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (unit_type, unit_id, user_id)
	          DO UPDATE SET kind = EXCLUDED.kind, updated_at = CURRENT_TIMESTAMP
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, feedback.UnitType, feedback.UnitID, feedback.UserID, feedback.Kind).
		Scan(&feedback.ID, &feedback.CreatedAt, &feedback.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to upsert feedback in postgres", zap.Error(err), zap.String("unitID", feedback.UnitID.String()))
		return fmt.Errorf("failed to upsert feedback: %w", err)
	}
	r.logger.Info("Feedback stored", zap.String("unitID", feedback.UnitID.String()), zap.String("kind", string(feedback.Kind)))
	return nil
}

func (r *pgFeedbackRepository) ListByUnit(ctx context.Context, unitType models.ContentUnitType, unitID uuid.UUID) ([]models.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE unit_type = $1 AND unit_id = $2 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, unitType, unitID)
	if err != nil {
		r.logger.Error("Failed to query feedback from postgres", zap.Error(err), zap.String("unitID", unitID.String()))
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	items := make([]models.Feedback, 0)
	for rows.Next() {
		var f models.Feedback
		if err := scanFeedback(rows, &f); err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		items = append(items, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}
	return items, nil
}
