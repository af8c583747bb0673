package dto

// CutoffFilters collects the optional query parameters of GET /api/cutoffs.
// Zero values mean "not filtered".
type CutoffFilters struct {
	Year           int    `form:"year"`
	Branch         string `form:"branch"`
	Category       string `form:"category"`
	Gender         string `form:"gender"`
	HomeUniversity string `form:"home_university"`
	CollegeName    string `form:"college_name"`
}

// BulkCutoffRow is one candidate row of a bulk cutoff insert
type BulkCutoffRow struct {
	Year           int     `json:"year" example:"2025"`
	CollegeName    string  `json:"college_name" example:"COEP Technological University"`
	Branch         string  `json:"branch" example:"Computer Engineering"`
	Category       string  `json:"category" example:"OPEN"`
	Gender         *string `json:"gender,omitempty" example:"F"`
	HomeUniversity string  `json:"home_university" example:"Pune"`
	Percentile     float64 `json:"percentile" example:"98.75"`
}

// BulkCutoffRequest represents the admin bulk insert payload
type BulkCutoffRequest struct {
	Cutoffs []BulkCutoffRow `json:"cutoffs"`
}
