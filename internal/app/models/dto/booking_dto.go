package dto

// CreateBookingRequest represents the public booking payload.
// meeting_time is an ISO 8601 timestamp string; it is parsed and
// range-checked by the booking service rather than by binding tags so the
// failure surfaces as a VALIDATION_ERROR envelope.
type CreateBookingRequest struct {
	StudentName      string  `json:"student_name" example:"Aarav Kulkarni"`
	Email            string  `json:"email" example:"aarav@example.com"`
	Phone            string  `json:"phone" example:"+919876543210"`
	Percentile       float64 `json:"percentile" example:"94.2"`
	Category         string  `json:"category" example:"OBC"`
	BranchPreference string  `json:"branch_preference" example:"Computer Engineering"`
	MeetingTime      string  `json:"meeting_time" example:"2026-09-15T10:30:00Z"`
}

// BookingCreatedData is the data portion returned after a successful booking
type BookingCreatedData struct {
	BookingID string `json:"booking_id"`
	MeetLink  string `json:"meet_link" example:"https://meet.google.com/abcd-efgh-ijkl"`
}

// UpdateBookingStatusRequest represents the admin status patch payload
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required" example:"confirmed"`
}
