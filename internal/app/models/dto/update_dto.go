package dto

// CreateUpdateRequest represents the admin update creation payload
type CreateUpdateRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// PatchUpdateRequest represents a partial edit of an update. At least one
// field must be present; edited_at is stamped on every mutation.
type PatchUpdateRequest struct {
	Title         *string `json:"title,omitempty"`
	Content       *string `json:"content,omitempty"`
	PublishedDate *string `json:"published_date,omitempty" example:"2026-02-14"`
}
