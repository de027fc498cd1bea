package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"docgen-server/internal/models"
)

// Compile-time check to ensure pgContentRepository implements ContentRepository
var _ ContentRepository = (*pgContentRepository)(nil)

type pgContentRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPgContentRepository creates a new PostgreSQL-backed ContentRepository.
func NewPgContentRepository(pool *pgxpool.Pool, logger *zap.Logger) ContentRepository {
	return &pgContentRepository{
		pool:   pool,
		logger: logger.Named("PgContentRepo"),
	}
}

const sectionColumns = `id, project_id, header, content, position, image_url, image_placement, created_at, updated_at`
const slideColumns = `id, project_id, title, content, position, image_url, image_placement, created_at, updated_at`

func scanSection(row pgx.Row, s *models.Section) error {
	return row.Scan(&s.ID, &s.ProjectID, &s.Header, &s.Content, &s.Position, &s.ImageURL, &s.ImagePlacement, &s.CreatedAt, &s.UpdatedAt)
}

func scanSlide(row pgx.Row, s *models.Slide) error {
	return row.Scan(&s.ID, &s.ProjectID, &s.Title, &s.Content, &s.Position, &s.ImageURL, &s.ImagePlacement, &s.CreatedAt, &s.UpdatedAt)
}

func (r *pgContentRepository) ReplaceSections(ctx context.Context, projectID uuid.UUID, headers []string) ([]models.Section, error) {
	sections := make([]models.Section, 0, len(headers))
	err := WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM sections WHERE project_id = $1`, projectID); err != nil {
			return fmt.Errorf("failed to delete old sections: %w", err)
		}
		insert := `INSERT INTO sections (project_id, header, position) VALUES ($1, $2, $3) RETURNING ` + sectionColumns
		for i, header := range headers {
			var s models.Section
			if err := scanSection(tx.QueryRow(ctx, insert, projectID, header, i), &s); err != nil {
				return fmt.Errorf("failed to insert section at position %d: %w", i, err)
			}
			sections = append(sections, s)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to replace sections", zap.Error(err), zap.String("projectID", projectID.String()))
		return nil, err
	}
	r.logger.Info("Sections replaced", zap.String("projectID", projectID.String()), zap.Int("count", len(sections)))
	return sections, nil
}

func (r *pgContentRepository) ReplaceSlides(ctx context.Context, projectID uuid.UUID, titles []string) ([]models.Slide, error) {
	slides := make([]models.Slide, 0, len(titles))
	err := WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM slides WHERE project_id = $1`, projectID); err != nil {
			return fmt.Errorf("failed to delete old slides: %w", err)
		}
		insert := `INSERT INTO slides (project_id, title, position) VALUES ($1, $2, $3) RETURNING ` + slideColumns
		for i, title := range titles {
			var s models.Slide
			if err := scanSlide(tx.QueryRow(ctx, insert, projectID, title, i), &s); err != nil {
				return fmt.Errorf("failed to insert slide at position %d: %w", i, err)
			}
			slides = append(slides, s)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to replace slides", zap.Error(err), zap.String("projectID", projectID.String()))
		return nil, err
	}
	r.logger.Info("Slides replaced", zap.String("projectID", projectID.String()), zap.Int("count", len(slides)))
	return slides, nil
}

func (r *pgContentRepository) ListSections(ctx context.Context, projectID uuid.UUID) ([]models.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE project_id = $1 ORDER BY position ASC`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		r.logger.Error("Failed to query sections", zap.Error(err), zap.String("projectID", projectID.String()))
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	sections := make([]models.Section, 0)
	for rows.Next() {
		var s models.Section
		if err := scanSection(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan section row: %w", err)
		}
		sections = append(sections, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating section rows: %w", err)
	}
	return sections, nil
}

func (r *pgContentRepository) ListSlides(ctx context.Context, projectID uuid.UUID) ([]models.Slide, error) {
	query := `SELECT ` + slideColumns + ` FROM slides WHERE project_id = $1 ORDER BY position ASC`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		r.logger.Error("Failed to query slides", zap.Error(err), zap.String("projectID", projectID.String()))
		return nil, fmt.Errorf("failed to query slides: %w", err)
	}
	defer rows.Close()

	slides := make([]models.Slide, 0)
	for rows.Next() {
		var s models.Slide
		if err := scanSlide(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan slide row: %w", err)
		}
		slides = append(slides, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slide rows: %w", err)
	}
	return slides, nil
}

func (r *pgContentRepository) GetSectionByID(ctx context.Context, id uuid.UUID) (*models.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE id = $1`
	section := &models.Section{}
	if err := scanSection(r.pool.QueryRow(ctx, query, id), section); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrSectionNotFound
		}
		r.logger.Error("Failed to get section", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get section: %w", err)
	}
	return section, nil
}

func (r *pgContentRepository) GetSlideByID(ctx context.Context, id uuid.UUID) (*models.Slide, error) {
	query := `SELECT ` + slideColumns + ` FROM slides WHERE id = $1`
	slide := &models.Slide{}
	if err := scanSlide(r.pool.QueryRow(ctx, query, id), slide); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrSlideNotFound
		}
		r.logger.Error("Failed to get slide", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get slide: %w", err)
	}
	return slide, nil
}

func (r *pgContentRepository) UpdateSectionContent(ctx context.Context, id uuid.UUID, content string) error {
	query := `UPDATE sections SET content = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	cmdTag, err := r.pool.Exec(ctx, query, content, id)
	if err != nil {
		r.logger.Error("Failed to update section content", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to update section content: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrSectionNotFound
	}
	return nil
}

func (r *pgContentRepository) UpdateSlideContent(ctx context.Context, id uuid.UUID, content string) error {
	query := `UPDATE slides SET content = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	cmdTag, err := r.pool.Exec(ctx, query, content, id)
	if err != nil {
		r.logger.Error("Failed to update slide content", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to update slide content: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrSlideNotFound
	}
	return nil
}

func (r *pgContentRepository) SetSectionImage(ctx context.Context, id uuid.UUID, url string, placement models.ImagePlacement) error {
	query := `UPDATE sections SET image_url = $1, image_placement = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3`
	cmdTag, err := r.pool.Exec(ctx, query, url, placement, id)
	if err != nil {
		r.logger.Error("Failed to set section image", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to set section image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrSectionNotFound
	}
	return nil
}

func (r *pgContentRepository) SetSlideImage(ctx context.Context, id uuid.UUID, url string, placement models.ImagePlacement) error {
	query := `UPDATE slides SET image_url = $1, image_placement = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3`
	cmdTag, err := r.pool.Exec(ctx, query, url, placement, id)
	if err != nil {
		r.logger.Error("Failed to set slide image", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to set slide image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrSlideNotFound
	}
	return nil
}
