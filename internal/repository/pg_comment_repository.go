package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"docgen-server/internal/models"
)

// Compile-time check to ensure pgCommentRepository implements CommentRepository
var _ CommentRepository = (*pgCommentRepository)(nil)

type pgCommentRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgCommentRepository creates a new PostgreSQL-backed CommentRepository.
func NewPgCommentRepository(db DBTX, logger *zap.Logger) CommentRepository {
	return &pgCommentRepository{
		db:     db,
		logger: logger.Named("PgCommentRepo"),
	}
}

const commentColumns = `id, unit_type, unit_id, user_id, text, created_at, updated_at`

func scanComment(row pgx.Row, c *models.Comment) error {
	return row.Scan(&c.ID, &c.UnitType, &c.UnitID, &c.UserID, &c.Text, &c.CreatedAt, &c.UpdatedAt)
}

func (r *pgCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `INSERT INTO comments (unit_type, unit_id, user_id, text)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, comment.UnitType, comment.UnitID, comment.UserID, comment.Text).
		Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create comment in postgres", zap.Error(err), zap.String("unitID", comment.UnitID.String()))
		return fmt.Errorf("failed to create comment: %w", err)
	}
	r.logger.Info("Comment created", zap.String("commentID", comment.ID.String()), zap.String("unitID", comment.UnitID.String()))
	return nil
}

func (r *pgCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	comment := &models.Comment{}
	if err := scanComment(r.db.QueryRow(ctx, query, id), comment); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCommentNotFound
		}
		r.logger.Error("Failed to get comment from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return comment, nil
}

func (r *pgCommentRepository) ListByUnit(ctx context.Context, unitType models.ContentUnitType, unitID uuid.UUID) ([]models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE unit_type = $1 AND unit_id = $2 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, unitType, unitID)
	if err != nil {
		r.logger.Error("Failed to query comments from postgres", zap.Error(err), zap.String("unitID", unitID.String()))
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := scanComment(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}
	return comments, nil
}

func (r *pgCommentRepository) Update(ctx context.Context, id uuid.UUID, text string) (*models.Comment, error) {
	query := `UPDATE comments SET text = $1, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $2
	          RETURNING ` + commentColumns
	comment := &models.Comment{}
	if err := scanComment(r.db.QueryRow(ctx, query, text, id), comment); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCommentNotFound
		}
		r.logger.Error("Failed to update comment in postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

func (r *pgCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM comments WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete comment from postgres", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrCommentNotFound
	}
	r.logger.Info("Comment deleted", zap.String("commentID", id.String()))
	return nil
}
