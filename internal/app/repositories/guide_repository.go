package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akshayp/cetadvisor/internal/app/models"
)

// GuideRepository handles database operations for guides and their
// download log
type GuideRepository struct {
	db *pgxpool.Pool
}

// NewGuideRepository creates a new GuideRepository
func NewGuideRepository(db *pgxpool.Pool) *GuideRepository {
	return &GuideRepository{db: db}
}

// GetActive retrieves all active guides, newest first
func (r *GuideRepository) GetActive(ctx context.Context) ([]models.Guide, error) {
	query := squirrel.Select("id", "title", "description", "file_url", "is_active", "created_at").
		From("guides").
		Where("is_active = ?", true).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	guides := []models.Guide{}
	for rows.Next() {
		var guide models.Guide
		if err := rows.Scan(
			&guide.ID,
			&guide.Title,
			&guide.Description,
			&guide.FileURL,
			&guide.IsActive,
			&guide.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		guides = append(guides, guide)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return guides, nil
}

// GetByID retrieves a guide by ID regardless of its active flag.
// Returns (nil, nil) when no row exists.
func (r *GuideRepository) GetByID(ctx context.Context, id string) (*models.Guide, error) {
	query := squirrel.Select("id", "title", "description", "file_url", "is_active", "created_at").
		From("guides").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var guide models.Guide
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&guide.ID,
		&guide.Title,
		&guide.Description,
		&guide.FileURL,
		&guide.IsActive,
		&guide.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &guide, nil
}

// Create creates a new guide. New guides are active by default.
func (r *GuideRepository) Create(ctx context.Context, guide *models.Guide) error {
	query := squirrel.Insert("guides").
		Columns("title", "description", "file_url").
		Values(guide.Title, guide.Description, guide.FileURL).
		Suffix("RETURNING id, is_active, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&guide.ID, &guide.IsActive, &guide.CreatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// RecordDownload appends a row to the download log
func (r *GuideRepository) RecordDownload(ctx context.Context, download *models.GuideDownload) error {
	query := squirrel.Insert("guide_downloads").
		Columns("guide_id", "name", "email", "percentile").
		Values(download.GuideID, download.Name, download.Email, download.Percentile).
		Suffix("RETURNING id, downloaded_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&download.ID, &download.DownloadedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}
