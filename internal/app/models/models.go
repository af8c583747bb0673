package models

// BookingStatus defines the lifecycle state of a booking, set by admin action.
type BookingStatus string

const (
	BookingScheduled BookingStatus = "scheduled"
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// IsValid reports whether s is one of the known booking statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingScheduled, BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// EmailStatus tracks the outcome of the confirmation email for a booking.
// It starts as pending and settles to exactly one of sent/failed.
type EmailStatus string

const (
	EmailPending EmailStatus = "pending"
	EmailSent    EmailStatus = "sent"
	EmailFailed  EmailStatus = "failed"
)

// RoleAdmin is the only role issued to admin users. The role is carried in
// the token payload but no endpoint currently differentiates by role.
const RoleAdmin = "admin"
