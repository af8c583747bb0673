package services

import (
	"context"
	"fmt"

	"github.com/akshayp/cetadvisor/internal/app/models"
	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/app/repositories"
	"github.com/akshayp/cetadvisor/internal/pkg/apperrors"
	"github.com/akshayp/cetadvisor/internal/pkg/validation"
)

// Classification margins, in percentile points.
const (
	safeBuffer   = 3.0
	targetMargin = 2.0
)

// PredictorService buckets eligible colleges by admission likelihood
type PredictorService struct {
	cutoffRepo *repositories.CutoffRepository
}

// NewPredictorService creates a new PredictorService
func NewPredictorService(cutoffRepo *repositories.CutoffRepository) *PredictorService {
	return &PredictorService{cutoffRepo: cutoffRepo}
}

// PredictColleges validates the request, loads the eligible cutoff rows
// and partitions them into safe/target/dream buckets
func (s *PredictorService) PredictColleges(ctx context.Context, req dto.PredictRequest) (*dto.PredictionBuckets, error) {
	if !validation.IsValidPercentile(req.Percentile) {
		return nil, apperrors.NewValidationError("Percentile must be between 0 and 100")
	}
	if !validation.IsValidYear(req.Year) {
		return nil, apperrors.NewValidationError("Year must be between 2000 and 2100")
	}

	cutoffs, err := s.cutoffRepo.GetEligible(ctx, repositories.EligibilityFilter{
		Year:              req.Year,
		Category:          req.Category,
		Gender:            req.Gender,
		HomeUniversity:    req.HomeUniversity,
		PreferredBranches: req.PreferredBranches,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPredictionFailed, err)
	}

	buckets := Classify(req.Percentile, cutoffs)
	return &buckets, nil
}

// Classify partitions cutoff rows into likelihood buckets for a student
// percentile. A college is safe when the student clears its cutoff by at
// least safeBuffer points, target when the cutoff is cleared by less than
// that, and dream when the cutoff is above the student. Input order is
// preserved within every bucket.
func Classify(percentile float64, cutoffs []models.CutoffRecord) dto.PredictionBuckets {
	buckets := dto.PredictionBuckets{
		Safe:   []models.CutoffRecord{},
		Target: []models.CutoffRecord{},
		Dream:  []models.CutoffRecord{},
	}

	for _, cutoff := range cutoffs {
		switch {
		case percentile >= cutoff.Percentile+safeBuffer:
			buckets.Safe = append(buckets.Safe, cutoff)
		case percentile >= cutoff.Percentile:
			buckets.Target = append(buckets.Target, cutoff)
		default:
			buckets.Dream = append(buckets.Dream, cutoff)
		}
	}

	return buckets
}
