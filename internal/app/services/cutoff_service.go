package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/akshayp/cetadvisor/internal/app/models"
	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/app/repositories"
	"github.com/akshayp/cetadvisor/internal/pkg/apperrors"
	"github.com/akshayp/cetadvisor/internal/pkg/validation"
)

// CutoffService handles cutoff listing and bulk imports
type CutoffService struct {
	cutoffRepo *repositories.CutoffRepository
}

// NewCutoffService creates a new CutoffService
func NewCutoffService(cutoffRepo *repositories.CutoffRepository) *CutoffService {
	return &CutoffService{cutoffRepo: cutoffRepo}
}

// GetCutoffs returns cutoff rows matching the optional filters
func (s *CutoffService) GetCutoffs(ctx context.Context, filters dto.CutoffFilters) ([]models.CutoffRecord, error) {
	if filters.Year != 0 && !validation.IsValidYear(filters.Year) {
		return nil, apperrors.NewValidationError("Year must be between 2000 and 2100")
	}

	return s.cutoffRepo.GetFiltered(ctx, repositories.CutoffFilter{
		Year:           filters.Year,
		Branch:         filters.Branch,
		Category:       filters.Category,
		Gender:         filters.Gender,
		HomeUniversity: filters.HomeUniversity,
		CollegeName:    filters.CollegeName,
	})
}

// BulkInsertCutoffs validates and inserts the rows in a single statement.
// An empty payload succeeds with an empty result and touches nothing.
func (s *CutoffService) BulkInsertCutoffs(ctx context.Context, req dto.BulkCutoffRequest) ([]models.CutoffRecord, error) {
	records := make([]models.CutoffRecord, 0, len(req.Cutoffs))
	for i, row := range req.Cutoffs {
		if err := validateCutoffRow(i, row); err != nil {
			return nil, err
		}
		records = append(records, models.CutoffRecord{
			Year:           row.Year,
			CollegeName:    row.CollegeName,
			Branch:         row.Branch,
			Category:       row.Category,
			Gender:         row.Gender,
			HomeUniversity: row.HomeUniversity,
			Percentile:     row.Percentile,
		})
	}

	return s.cutoffRepo.BulkInsert(ctx, records)
}

// validateCutoffRow checks one bulk row, naming the offending index
func validateCutoffRow(index int, row dto.BulkCutoffRow) error {
	if !validation.IsValidYear(row.Year) {
		return apperrors.NewValidationError(fmt.Sprintf("Row %d: year must be between 2000 and 2100", index))
	}
	if strings.TrimSpace(row.CollegeName) == "" {
		return apperrors.NewValidationError(fmt.Sprintf("Row %d: college_name is required", index))
	}
	if strings.TrimSpace(row.Branch) == "" {
		return apperrors.NewValidationError(fmt.Sprintf("Row %d: branch is required", index))
	}
	if strings.TrimSpace(row.Category) == "" {
		return apperrors.NewValidationError(fmt.Sprintf("Row %d: category is required", index))
	}
	if strings.TrimSpace(row.HomeUniversity) == "" {
		return apperrors.NewValidationError(fmt.Sprintf("Row %d: home_university is required", index))
	}
	if !validation.IsValidPercentile(row.Percentile) {
		return apperrors.NewValidationError(fmt.Sprintf("Row %d: percentile must be between 0 and 100", index))
	}
	return nil
}
