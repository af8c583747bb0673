package models

import "time"

// Booking defines a counseling session booking based on the 'bookings' table.
// meet_link is set once at creation and never changes; booking_status is
// mutated by admin action and email_status by the async email outcome.
type Booking struct {
	ID               string        `json:"id" db:"id" example:"d9b1c2a3-4e5f-6a7b-8c9d-0e1f2a3b4c5d"`
	StudentName      string        `json:"student_name" db:"student_name" example:"Aarav Kulkarni"`
	Email            string        `json:"email" db:"email" example:"aarav@example.com"`
	Phone            string        `json:"phone" db:"phone" example:"+919876543210"`
	Percentile       float64       `json:"percentile" db:"percentile" example:"94.2"`
	Category         string        `json:"category" db:"category" example:"OBC"`
	BranchPreference string        `json:"branch_preference" db:"branch_preference" example:"Computer Engineering"`
	MeetingTime      time.Time     `json:"meeting_time" db:"meeting_time"`
	MeetLink         string        `json:"meet_link" db:"meet_link" example:"https://meet.google.com/abcd-efgh-ijkl"`
	BookingStatus    BookingStatus `json:"booking_status" db:"booking_status" example:"scheduled"`
	EmailStatus      EmailStatus   `json:"email_status" db:"email_status" example:"pending"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
}
