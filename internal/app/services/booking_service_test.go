package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/akshayp/cetadvisor/internal/app/models"
	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/pkg/apperrors"
	"github.com/akshayp/cetadvisor/internal/pkg/calendar"
	"github.com/akshayp/cetadvisor/internal/pkg/email"
)

// fakeBookingStore records calls in memory and signals every email-status
// settlement on a channel so tests can wait for the background goroutine.
type fakeBookingStore struct {
	mu            sync.Mutex
	created       []models.Booking
	emailStatuses map[string]models.EmailStatus
	settled       chan models.EmailStatus
	createErr     error
	updateErr     error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{
		emailStatuses: map[string]models.EmailStatus{},
		settled:       make(chan models.EmailStatus, 1),
	}
}

func (f *fakeBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	booking.ID = "booking-1"
	booking.BookingStatus = models.BookingScheduled
	booking.EmailStatus = models.EmailPending
	f.created = append(f.created, *booking)
	return nil
}

func (f *fakeBookingStore) GetAll(ctx context.Context) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Booking{}, f.created...), nil
}

func (f *fakeBookingStore) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.created {
		if b.ID == id {
			booking := b
			return &booking, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingStore) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error {
	if id != "booking-1" {
		return apperrors.ErrBookingNotFound
	}
	return nil
}

func (f *fakeBookingStore) UpdateEmailStatus(ctx context.Context, id string, status models.EmailStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	f.emailStatuses[id] = status
	f.mu.Unlock()
	f.settled <- status
	return nil
}

func (f *fakeBookingStore) Delete(ctx context.Context, id string) error {
	if id != "booking-1" {
		return apperrors.ErrBookingNotFound
	}
	return nil
}

type fakeLinkProvider struct {
	link string
	err  error
}

func (f *fakeLinkProvider) GenerateMeetLink(ctx context.Context, req calendar.MeetingRequest) (string, error) {
	return f.link, f.err
}

// fakeMailer optionally blocks on release so a test can decide whether the
// email completes before or after the booking response is produced.
type fakeMailer struct {
	err     error
	release chan struct{}
}

func (f *fakeMailer) SendBookingConfirmation(booking email.BookingConfirmation) error {
	if f.release != nil {
		<-f.release
	}
	return f.err
}

func newBookingService(store *fakeBookingStore, link *fakeLinkProvider, mailer *fakeMailer) *BookingService {
	return NewBookingService(store, link, mailer, nil, zerolog.Nop())
}

func validBookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		StudentName:      "Aarav Kulkarni",
		Email:            "aarav@example.com",
		Phone:            "+919876543210",
		Percentile:       94.2,
		Category:         "OBC",
		BranchPreference: "Computer Engineering",
		MeetingTime:      time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateBookingRequest)
	}{
		{name: "missing student name", mutate: func(r *dto.CreateBookingRequest) { r.StudentName = "  " }},
		{name: "malformed email", mutate: func(r *dto.CreateBookingRequest) { r.Email = "not-an-email" }},
		{name: "email with spaces", mutate: func(r *dto.CreateBookingRequest) { r.Email = "a b@example.com" }},
		{name: "missing phone", mutate: func(r *dto.CreateBookingRequest) { r.Phone = "" }},
		{name: "percentile out of range", mutate: func(r *dto.CreateBookingRequest) { r.Percentile = 101 }},
		{name: "missing category", mutate: func(r *dto.CreateBookingRequest) { r.Category = "" }},
		{name: "missing branch preference", mutate: func(r *dto.CreateBookingRequest) { r.BranchPreference = "" }},
		{name: "unparseable meeting time", mutate: func(r *dto.CreateBookingRequest) { r.MeetingTime = "tomorrow at noon" }},
		{name: "meeting time in the past", mutate: func(r *dto.CreateBookingRequest) {
			r.MeetingTime = time.Now().Add(-time.Hour).Format(time.RFC3339)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeBookingStore()
			service := newBookingService(store, &fakeLinkProvider{link: "https://meet.google.com/abcd-efgh-ijkl"}, &fakeMailer{})

			req := validBookingRequest()
			tt.mutate(&req)

			_, err := service.CreateBooking(context.Background(), req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("CreateBooking() error = %v, want validation failure", err)
			}
			if len(store.created) != 0 {
				t.Errorf("booking was persisted despite validation failure")
			}
		})
	}
}

func TestCreateBookingCalendarFailureRejectsWithoutPersisting(t *testing.T) {
	store := newFakeBookingStore()
	service := newBookingService(store, &fakeLinkProvider{err: errors.New("calendar API unreachable")}, &fakeMailer{})

	_, err := service.CreateBooking(context.Background(), validBookingRequest())
	if !errors.Is(err, apperrors.ErrCalendarFailed) {
		t.Fatalf("CreateBooking() error = %v, want calendar failure", err)
	}
	if len(store.created) != 0 {
		t.Errorf("booking was persisted despite calendar failure")
	}
}

func TestCreateBookingRespondsBeforeEmailSettles(t *testing.T) {
	store := newFakeBookingStore()
	mailer := &fakeMailer{release: make(chan struct{})}
	service := newBookingService(store, &fakeLinkProvider{link: "https://meet.google.com/abcd-efgh-ijkl"}, mailer)

	data, err := service.CreateBooking(context.Background(), validBookingRequest())
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if data.BookingID != "booking-1" {
		t.Errorf("BookingID = %q, want booking-1", data.BookingID)
	}
	if data.MeetLink != "https://meet.google.com/abcd-efgh-ijkl" {
		t.Errorf("MeetLink = %q", data.MeetLink)
	}

	// The response came back while the mailer is still blocked; the stored
	// booking must still be email-pending.
	store.mu.Lock()
	pending := store.created[0].EmailStatus
	store.mu.Unlock()
	if pending != models.EmailPending {
		t.Errorf("email status before release = %q, want pending", pending)
	}

	close(mailer.release)

	select {
	case status := <-store.settled:
		if status != models.EmailSent {
			t.Errorf("settled email status = %q, want sent", status)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("email status never settled")
	}
}

func TestCreateBookingEmailFailureSettlesFailed(t *testing.T) {
	store := newFakeBookingStore()
	mailer := &fakeMailer{err: errors.New("smtp connect refused")}
	service := newBookingService(store, &fakeLinkProvider{link: "https://meet.google.com/abcd-efgh-ijkl"}, mailer)

	if _, err := service.CreateBooking(context.Background(), validBookingRequest()); err != nil {
		t.Fatalf("CreateBooking() error = %v, email failure must not fail the booking", err)
	}

	select {
	case status := <-store.settled:
		if status != models.EmailFailed {
			t.Errorf("settled email status = %q, want failed", status)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("email status never settled")
	}
}

func TestGetBooking(t *testing.T) {
	store := newFakeBookingStore()
	service := newBookingService(store, &fakeLinkProvider{link: "https://meet.google.com/abcd-efgh-ijkl"}, &fakeMailer{})

	if _, err := service.CreateBooking(context.Background(), validBookingRequest()); err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	booking, err := service.GetBooking(context.Background(), "booking-1")
	if err != nil {
		t.Fatalf("GetBooking() error = %v", err)
	}
	if booking.StudentName != "Aarav Kulkarni" {
		t.Errorf("StudentName = %q, want Aarav Kulkarni", booking.StudentName)
	}

	if _, err := service.GetBooking(context.Background(), "missing"); !errors.Is(err, apperrors.ErrBookingNotFound) {
		t.Errorf("GetBooking(missing) error = %v, want ErrBookingNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		status  string
		wantErr error
	}{
		{name: "valid status", id: "booking-1", status: "confirmed", wantErr: nil},
		{name: "cancelled is valid", id: "booking-1", status: "cancelled", wantErr: nil},
		{name: "unknown status rejected", id: "booking-1", status: "rescheduled", wantErr: apperrors.ErrValidationFailed},
		{name: "empty status rejected", id: "booking-1", status: "", wantErr: apperrors.ErrValidationFailed},
		{name: "missing booking", id: "other", status: "confirmed", wantErr: apperrors.ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newBookingService(newFakeBookingStore(), &fakeLinkProvider{}, &fakeMailer{})
			err := service.UpdateStatus(context.Background(), tt.id, tt.status)
			if tt.wantErr == nil && err != nil {
				t.Errorf("UpdateStatus() error = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("UpdateStatus() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
