package models

import "time"

// Update defines a news/announcement entry based on the 'updates' table.
type Update struct {
	ID            string     `json:"id" db:"id"`
	Title         string     `json:"title" db:"title" example:"CAP Round 1 Schedule Announced"`
	Content       string     `json:"content" db:"content"`
	PublishedDate time.Time  `json:"published_date" db:"published_date"`
	EditedAt      *time.Time `json:"edited_at,omitempty" db:"edited_at"` // set on every mutation, absent otherwise
}
