package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/akshayp/cetadvisor/internal/app/models"
	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/app/repositories"
	"github.com/akshayp/cetadvisor/internal/pkg/apperrors"
)

func cutoffAt(college string, percentile float64) models.CutoffRecord {
	return models.CutoffRecord{CollegeName: college, Percentile: percentile}
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		percentile float64
		cutoff     float64
		bucket     string
	}{
		{name: "well above cutoff is safe", percentile: 95, cutoff: 90, bucket: "safe"},
		{name: "exactly buffer above cutoff is safe", percentile: 93, cutoff: 90, bucket: "safe"},
		{name: "just under buffer is target", percentile: 92.99, cutoff: 90, bucket: "target"},
		{name: "equal to cutoff is target", percentile: 90, cutoff: 90, bucket: "target"},
		{name: "just below cutoff is dream", percentile: 89.99, cutoff: 90, bucket: "dream"},
		{name: "far below cutoff is dream", percentile: 60, cutoff: 90, bucket: "dream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := Classify(tt.percentile, []models.CutoffRecord{cutoffAt("COEP", tt.cutoff)})

			got := ""
			switch {
			case len(buckets.Safe) == 1:
				got = "safe"
			case len(buckets.Target) == 1:
				got = "target"
			case len(buckets.Dream) == 1:
				got = "dream"
			}
			if got != tt.bucket {
				t.Errorf("Classify(%v, cutoff %v) bucket = %q, want %q", tt.percentile, tt.cutoff, got, tt.bucket)
			}
			total := len(buckets.Safe) + len(buckets.Target) + len(buckets.Dream)
			if total != 1 {
				t.Errorf("college appeared in %d buckets, want exactly 1", total)
			}
		})
	}
}

func TestClassifyPreservesOrder(t *testing.T) {
	cutoffs := []models.CutoffRecord{
		cutoffAt("A", 99),
		cutoffAt("B", 97),
		cutoffAt("C", 93.5),
		cutoffAt("D", 92),
		cutoffAt("E", 91),
		cutoffAt("F", 85),
	}

	// 94 clears 91 and 85 by the full buffer, reaches 93.5 and 92
	// without it, and falls short of 99 and 97.
	buckets := Classify(94, cutoffs)

	wantSafe := []string{"E", "F"}
	wantTarget := []string{"C", "D"}
	wantDream := []string{"A", "B"}

	assertColleges(t, "safe", buckets.Safe, wantSafe)
	assertColleges(t, "target", buckets.Target, wantTarget)
	assertColleges(t, "dream", buckets.Dream, wantDream)
}

func TestClassifyEmptyInput(t *testing.T) {
	buckets := Classify(90, nil)
	if buckets.Safe == nil || buckets.Target == nil || buckets.Dream == nil {
		t.Fatal("buckets must be empty slices, not nil, so they serialize as []")
	}
	if len(buckets.Safe)+len(buckets.Target)+len(buckets.Dream) != 0 {
		t.Errorf("expected all buckets empty, got %+v", buckets)
	}
}

func assertColleges(t *testing.T, bucket string, got []models.CutoffRecord, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s bucket has %d colleges, want %d", bucket, len(got), len(want))
	}
	for i, name := range want {
		if got[i].CollegeName != name {
			t.Errorf("%s[%d] = %q, want %q", bucket, i, got[i].CollegeName, name)
		}
	}
}

func TestPredictCollegesValidation(t *testing.T) {
	// Validation runs before any repository access
	service := NewPredictorService(repositories.NewCutoffRepository(nil))

	tests := []struct {
		name string
		req  dto.PredictRequest
	}{
		{name: "percentile below range", req: dto.PredictRequest{Percentile: -1, Year: 2025}},
		{name: "percentile above range", req: dto.PredictRequest{Percentile: 100.5, Year: 2025}},
		{name: "percentile NaN", req: dto.PredictRequest{Percentile: math.NaN(), Year: 2025}},
		{name: "year too early", req: dto.PredictRequest{Percentile: 90, Year: 1999}},
		{name: "year too late", req: dto.PredictRequest{Percentile: 90, Year: 2101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.PredictColleges(context.Background(), tt.req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("PredictColleges() error = %v, want validation failure", err)
			}
		})
	}
}
