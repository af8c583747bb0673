package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akshayp/cetadvisor/internal/app/models"
)

// CutoffFilter collects the optional predicates of a cutoff listing.
// Zero values mean the predicate is not applied.
type CutoffFilter struct {
	Year           int
	Branch         string
	Category       string
	Gender         string
	HomeUniversity string
	CollegeName    string
}

// EligibilityFilter narrows cutoff rows for the predictor. Year is always
// applied; the rest only when set.
type EligibilityFilter struct {
	Year              int
	Category          string
	Gender            string
	HomeUniversity    string
	PreferredBranches []string
}

// CutoffRepository handles database operations for cutoff data
type CutoffRepository struct {
	db *pgxpool.Pool
}

// NewCutoffRepository creates a new CutoffRepository
func NewCutoffRepository(db *pgxpool.Pool) *CutoffRepository {
	return &CutoffRepository{db: db}
}

const cutoffColumns = "id, year, college_name, branch, category, gender, home_university, percentile, created_at"

// GetFiltered retrieves cutoff rows matching the filter, ordered by year
// and percentile descending
func (r *CutoffRepository) GetFiltered(ctx context.Context, filter CutoffFilter) ([]models.CutoffRecord, error) {
	query := squirrel.Select("id", "year", "college_name", "branch", "category", "gender", "home_university", "percentile", "created_at").
		From("cutoff_data").
		OrderBy("year DESC", "percentile DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.Branch != "" {
		query = query.Where(squirrel.ILike{"branch": "%" + filter.Branch + "%"})
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.HomeUniversity != "" {
		query = query.Where("home_university = ?", filter.HomeUniversity)
	}
	if filter.CollegeName != "" {
		query = query.Where(squirrel.ILike{"college_name": "%" + filter.CollegeName + "%"})
	}

	return r.queryCutoffs(ctx, query)
}

// GetEligible retrieves cutoff rows eligible for a prediction, ordered by
// percentile descending
func (r *CutoffRepository) GetEligible(ctx context.Context, filter EligibilityFilter) ([]models.CutoffRecord, error) {
	query := squirrel.Select("id", "year", "college_name", "branch", "category", "gender", "home_university", "percentile", "created_at").
		From("cutoff_data").
		Where("year = ?", filter.Year).
		OrderBy("percentile DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.HomeUniversity != "" {
		query = query.Where("home_university = ?", filter.HomeUniversity)
	}
	if len(filter.PreferredBranches) > 0 {
		branchOr := squirrel.Or{}
		for _, branch := range filter.PreferredBranches {
			branchOr = append(branchOr, squirrel.ILike{"branch": "%" + branch + "%"})
		}
		query = query.Where(branchOr)
	}

	return r.queryCutoffs(ctx, query)
}

// BulkInsert inserts all rows in a single multi-row statement and returns
// the inserted records. An empty input issues no statement at all.
func (r *CutoffRepository) BulkInsert(ctx context.Context, records []models.CutoffRecord) ([]models.CutoffRecord, error) {
	if len(records) == 0 {
		return []models.CutoffRecord{}, nil
	}

	query := squirrel.Insert("cutoff_data").
		Columns("year", "college_name", "branch", "category", "gender", "home_university", "percentile").
		Suffix("RETURNING " + cutoffColumns).
		PlaceholderFormat(squirrel.Dollar)

	for _, rec := range records {
		query = query.Values(rec.Year, rec.CollegeName, rec.Branch, rec.Category, rec.Gender, rec.HomeUniversity, rec.Percentile)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return scanCutoffRows(rows)
}

func (r *CutoffRepository) queryCutoffs(ctx context.Context, query squirrel.SelectBuilder) ([]models.CutoffRecord, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return scanCutoffRows(rows)
}

func scanCutoffRows(rows pgx.Rows) ([]models.CutoffRecord, error) {
	cutoffs := []models.CutoffRecord{}
	for rows.Next() {
		var cutoff models.CutoffRecord
		if err := rows.Scan(
			&cutoff.ID,
			&cutoff.Year,
			&cutoff.CollegeName,
			&cutoff.Branch,
			&cutoff.Category,
			&cutoff.Gender,
			&cutoff.HomeUniversity,
			&cutoff.Percentile,
			&cutoff.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		cutoffs = append(cutoffs, cutoff)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cutoffs, nil
}
