package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/akshayp/cetadvisor/internal/app/models"
	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/pkg/apperrors"
	"github.com/akshayp/cetadvisor/internal/pkg/calendar"
	"github.com/akshayp/cetadvisor/internal/pkg/email"
	"github.com/akshayp/cetadvisor/internal/pkg/metrics"
	"github.com/akshayp/cetadvisor/internal/pkg/validation"
)

// bookingStore is the persistence surface the booking service needs. It is
// satisfied by repositories.BookingRepository.
type bookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error
	UpdateEmailStatus(ctx context.Context, id string, status models.EmailStatus) error
	Delete(ctx context.Context, id string) error
}

// meetLinkProvider acquires a conferencing link for a meeting. It is
// satisfied by calendar.Client.
type meetLinkProvider interface {
	GenerateMeetLink(ctx context.Context, req calendar.MeetingRequest) (string, error)
}

// BookingService orchestrates booking creation: validation, meeting-link
// acquisition, persistence and the asynchronous confirmation email.
type BookingService struct {
	store    bookingStore
	calendar meetLinkProvider
	mailer   email.Sender
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewBookingService creates a new BookingService. metrics may be nil.
func NewBookingService(store bookingStore, cal meetLinkProvider, mailer email.Sender, m *metrics.Metrics, logger zerolog.Logger) *BookingService {
	return &BookingService{
		store:    store,
		calendar: cal,
		mailer:   mailer,
		metrics:  m,
		logger:   logger,
	}
}

// CreateBooking validates the request, acquires the meeting link, persists
// the booking and fires the confirmation email in the background. The
// response never waits on the email: its outcome settles email_status
// asynchronously. A failed link acquisition rejects the whole request and
// persists nothing.
func (s *BookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*dto.BookingCreatedData, error) {
	meetingTime, err := s.validateBookingRequest(req)
	if err != nil {
		return nil, err
	}

	meetLink, err := s.calendar.GenerateMeetLink(ctx, calendar.MeetingRequest{
		StudentName:      req.StudentName,
		Email:            req.Email,
		MeetingTime:      meetingTime,
		Percentile:       req.Percentile,
		Category:         req.Category,
		BranchPreference: req.BranchPreference,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to acquire meeting link")
		if s.metrics != nil {
			s.metrics.CalendarFailures.Inc()
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCalendarFailed, err)
	}

	booking := &models.Booking{
		StudentName:      req.StudentName,
		Email:            req.Email,
		Phone:            req.Phone,
		Percentile:       req.Percentile,
		Category:         req.Category,
		BranchPreference: req.BranchPreference,
		MeetingTime:      meetingTime,
		MeetLink:         meetLink,
	}
	if err := s.store.Create(ctx, booking); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist booking")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrBookingFailed, err)
	}

	if s.metrics != nil {
		s.metrics.BookingsCreated.Inc()
	}

	go s.sendConfirmation(*booking)

	return &dto.BookingCreatedData{
		BookingID: booking.ID,
		MeetLink:  booking.MeetLink,
	}, nil
}

// sendConfirmation runs in its own goroutine after the booking is
// persisted. It settles email_status to exactly one of sent/failed; a
// failure here never affects the already-returned booking response.
func (s *BookingService) sendConfirmation(booking models.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sendErr := s.mailer.SendBookingConfirmation(email.BookingConfirmation{
		StudentName:      booking.StudentName,
		Email:            booking.Email,
		MeetingTime:      booking.MeetingTime,
		MeetLink:         booking.MeetLink,
		Category:         booking.Category,
		BranchPreference: booking.BranchPreference,
		Percentile:       booking.Percentile,
	})

	status := models.EmailSent
	if sendErr != nil {
		status = models.EmailFailed
		s.logger.Error().Err(sendErr).Str("bookingId", booking.ID).Msg("Confirmation email failed")
		if s.metrics != nil {
			s.metrics.EmailsFailed.Inc()
		}
	} else if s.metrics != nil {
		s.metrics.EmailsSent.Inc()
	}

	if err := s.store.UpdateEmailStatus(ctx, booking.ID, status); err != nil {
		s.logger.Error().Err(err).Str("bookingId", booking.ID).Msg("Failed to settle email status")
	}
}

// GetBookings returns all bookings ordered by meeting time descending
func (s *BookingService) GetBookings(ctx context.Context) ([]models.Booking, error) {
	return s.store.GetAll(ctx)
}

// GetBooking returns a single booking by id
func (s *BookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.ErrBookingNotFound
	}
	return booking, nil
}

// UpdateStatus sets the lifecycle status of a booking after checking the
// value against the known statuses
func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) error {
	bookingStatus := models.BookingStatus(status)
	if !bookingStatus.IsValid() {
		return apperrors.NewValidationError("Status must be one of: scheduled, pending, confirmed, cancelled, completed")
	}

	return s.store.UpdateBookingStatus(ctx, id, bookingStatus)
}

// DeleteBooking deletes a booking
func (s *BookingService) DeleteBooking(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// validateBookingRequest checks every field of a booking request and
// returns the parsed meeting time
func (s *BookingService) validateBookingRequest(req dto.CreateBookingRequest) (time.Time, error) {
	if strings.TrimSpace(req.StudentName) == "" {
		return time.Time{}, apperrors.NewValidationError("Student name is required")
	}
	if !validation.IsValidEmail(req.Email) {
		return time.Time{}, apperrors.NewValidationError("A valid email is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return time.Time{}, apperrors.NewValidationError("Phone is required")
	}
	if !validation.IsValidPercentile(req.Percentile) {
		return time.Time{}, apperrors.NewValidationError("Percentile must be between 0 and 100")
	}
	if strings.TrimSpace(req.Category) == "" {
		return time.Time{}, apperrors.NewValidationError("Category is required")
	}
	if strings.TrimSpace(req.BranchPreference) == "" {
		return time.Time{}, apperrors.NewValidationError("Branch preference is required")
	}

	meetingTime, err := time.Parse(time.RFC3339, req.MeetingTime)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("meeting_time must be an ISO 8601 timestamp")
	}
	if !meetingTime.After(time.Now()) {
		return time.Time{}, apperrors.NewValidationError("meeting_time must be in the future")
	}

	return meetingTime, nil
}
