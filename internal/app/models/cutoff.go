package models

import "time"

// CutoffRecord defines a historical admission cutoff based on the 'cutoff_data' table.
// Rows are immutable once inserted; refreshing a year's data is done by bulk re-insert.
type CutoffRecord struct {
	ID             string    `json:"id" db:"id" example:"5f8b7a3e-1c2d-4e5f-9a0b-1c2d3e4f5a6b"`
	Year           int       `json:"year" db:"year" example:"2025"`
	CollegeName    string    `json:"college_name" db:"college_name" example:"COEP Technological University"`
	Branch         string    `json:"branch" db:"branch" example:"Computer Engineering"`
	Category       string    `json:"category" db:"category" example:"OPEN"`
	Gender         *string   `json:"gender,omitempty" db:"gender" example:"F"` // nullable, absent means all genders
	HomeUniversity string    `json:"home_university" db:"home_university" example:"Pune"`
	Percentile     float64   `json:"percentile" db:"percentile" example:"98.75"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
