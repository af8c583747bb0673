package dto

import "github.com/akshayp/cetadvisor/internal/app/models"

// PredictRequest represents the POST /api/predict payload
type PredictRequest struct {
	Percentile        float64  `json:"percentile" example:"94.2"`
	Year              int      `json:"year" binding:"required" example:"2025"`
	Category          string   `json:"category,omitempty" example:"OPEN"`
	Gender            string   `json:"gender,omitempty" example:"F"`
	HomeUniversity    string   `json:"home_university,omitempty" example:"Pune"`
	PreferredBranches []string `json:"preferred_branches,omitempty"`
}

// PredictionBuckets partitions eligible colleges into the three likelihood
// buckets, each preserving the cutoff-descending order of the query layer.
type PredictionBuckets struct {
	Safe   []models.CutoffRecord `json:"safe"`
	Target []models.CutoffRecord `json:"target"`
	Dream  []models.CutoffRecord `json:"dream"`
}
