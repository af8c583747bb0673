package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akshayp/cetadvisor/internal/app/models"
	"github.com/akshayp/cetadvisor/internal/pkg/apperrors"
)

// UpdateRepository handles database operations for announcement updates
type UpdateRepository struct {
	db *pgxpool.Pool
}

// NewUpdateRepository creates a new UpdateRepository
func NewUpdateRepository(db *pgxpool.Pool) *UpdateRepository {
	return &UpdateRepository{db: db}
}

// GetAll retrieves all updates, newest first
func (r *UpdateRepository) GetAll(ctx context.Context) ([]models.Update, error) {
	query := squirrel.Select("id", "title", "content", "published_date", "edited_at").
		From("updates").
		OrderBy("published_date DESC").
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

	updates := []models.Update{}
	for rows.Next() {
		var update models.Update
		if err := rows.Scan(
			&update.ID,
			&update.Title,
			&update.Content,
			&update.PublishedDate,
			&update.EditedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		updates = append(updates, update)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return updates, nil
}

// Create creates a new update
func (r *UpdateRepository) Create(ctx context.Context, update *models.Update) error {
	query := squirrel.Insert("updates").
		Columns("title", "content").
		Values(update.Title, update.Content).
		Suffix("RETURNING id, published_date").
		PlaceholderFormat(squirrel.Dollar)

	// published_date defaults to now() unless the caller set one
	if !update.PublishedDate.IsZero() {
		query = squirrel.Insert("updates").
			Columns("title", "content", "published_date").
			Values(update.Title, update.Content, update.PublishedDate).
			Suffix("RETURNING id, published_date").
			PlaceholderFormat(squirrel.Dollar)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&update.ID, &update.PublishedDate)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// Update applies the non-nil fields and stamps edited_at
func (r *UpdateRepository) Update(ctx context.Context, id string, title, content *string, publishedDate *time.Time) (*models.Update, error) {
	query := squirrel.Update("updates").
		Set("edited_at", time.Now()).
		Where("id = ?", id).
		Suffix("RETURNING id, title, content, published_date, edited_at").
		PlaceholderFormat(squirrel.Dollar)

	if title != nil {
		query = query.Set("title", *title)
	}
	if content != nil {
		query = query.Set("content", *content)
	}
	if publishedDate != nil {
		query = query.Set("published_date", *publishedDate)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var update models.Update
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&update.ID,
		&update.Title,
		&update.Content,
		&update.PublishedDate,
		&update.EditedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUpdateNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &update, nil
}

// Delete deletes an update
func (r *UpdateRepository) Delete(ctx context.Context, id string) error {
	query := squirrel.Delete("updates").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrUpdateNotFound
	}

	return nil
}

// Count returns the number of updates
func (r *UpdateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM updates`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting updates: %w", err)
	}
	return count, nil
}
