package models

import "time"

// Guide defines a downloadable admission guide based on the 'guides' table.
type Guide struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title" example:"CAP Round Strategy Guide"`
	Description string    `json:"description" db:"description"`
	FileURL     string    `json:"file_url" db:"file_url" example:"https://cdn.example.com/guides/cap-strategy.pdf"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// GuideDownload defines one row of the append-only download log based on
// the 'guide_downloads' table. Rows have no lifecycle beyond creation.
type GuideDownload struct {
	ID           string    `json:"id" db:"id"`
	GuideID      string    `json:"guide_id" db:"guide_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Percentile   *float64  `json:"percentile,omitempty" db:"percentile"`
	DownloadedAt time.Time `json:"downloaded_at" db:"downloaded_at"`
}
