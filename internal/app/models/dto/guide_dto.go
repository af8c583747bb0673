package dto

// GuideDownloadRequest represents the lead-capture payload required before a
// guide file URL is handed out
type GuideDownloadRequest struct {
	GuideID    string   `json:"guide_id" binding:"required" example:"7a8b9c0d-1e2f-3a4b-5c6d-7e8f9a0b1c2d"`
	Name       string   `json:"name" binding:"required" example:"Aarav Kulkarni"`
	Email      string   `json:"email" binding:"required" example:"aarav@example.com"`
	Percentile *float64 `json:"percentile,omitempty" example:"94.2"`
}

// GuideDownloadData is the data portion of a successful download response
type GuideDownloadData struct {
	FileURL string `json:"file_url" example:"https://cdn.example.com/guides/cap-strategy.pdf"`
}

// CreateGuideRequest represents the admin guide creation payload
type CreateGuideRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	FileURL     string `json:"file_url" binding:"required"`
}
