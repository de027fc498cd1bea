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

// Compile-time check to ensure pgProjectRepository implements ProjectRepository
var _ ProjectRepository = (*pgProjectRepository)(nil)

type pgProjectRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgProjectRepository creates a new PostgreSQL-backed ProjectRepository.
func NewPgProjectRepository(db DBTX, logger *zap.Logger) ProjectRepository {
	return &pgProjectRepository{
		db:     db,
		logger: logger.Named("PgProjectRepo"),
	}
}

const projectColumns = `id, user_id, name, type, topic, status, created_at, updated_at`

func scanProject(row pgx.Row, p *models.Project) error {
	return row.Scan(&p.ID, &p.UserID, &p.Name, &p.Type, &p.Topic, &p.Status, &p.CreatedAt, &p.UpdatedAt)
}

func (r *pgProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `INSERT INTO projects (user_id, name, type, topic, status)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("userID", project.UserID.String()))
	err := r.db.QueryRow(ctx, query, project.UserID, project.Name, project.Type, project.Topic, project.Status).
		Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create project in postgres", zap.Error(err), zap.String("userID", project.UserID.String()))
		return fmt.Errorf("failed to create project in postgres: %w", err)
	}
	r.logger.Info("Project created", zap.String("projectID", project.ID.String()), zap.String("type", string(project.Type)))
	return nil
}

func (r *pgProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	project := &models.Project{}
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("id", id.String()))
	if err := scanProject(r.db.QueryRow(ctx, query, id), project); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrProjectNotFound
		}
		r.logger.Error("Failed to get project from postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get project from postgres: %w", err)
	}
	return project, nil
}

func (r *pgProjectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY updated_at DESC`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("userID", userID.String()))
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to query projects from postgres", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		var p models.Project
		if err := scanProject(rows, &p); err != nil {
			r.logger.Error("Failed to scan project row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		r.logger.Error("Error iterating project rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

func (r *pgProjectRepository) Update(ctx context.Context, id uuid.UUID, name, topic string) (*models.Project, error) {
	query := `UPDATE projects SET name = $1, topic = $2, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $3
	          RETURNING ` + projectColumns
	project := &models.Project{}
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("id", id.String()))
	if err := scanProject(r.db.QueryRow(ctx, query, name, topic, id), project); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrProjectNotFound
		}
		r.logger.Error("Failed to update project in postgres", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func (r *pgProjectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ProjectStatus) error {
	query := `UPDATE projects SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("id", id.String()), zap.String("status", string(status)))
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		r.logger.Error("Failed to update project status in postgres", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to update project status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Attempted to update status of non-existent project", zap.String("id", id.String()))
		return models.ErrProjectNotFound
	}
	r.logger.Info("Project status updated", zap.String("projectID", id.String()), zap.String("status", string(status)))
	return nil
}

func (r *pgProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("id", id.String()))
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete project from postgres", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrProjectNotFound
	}
	r.logger.Info("Project deleted", zap.String("projectID", id.String()))
	return nil
}
