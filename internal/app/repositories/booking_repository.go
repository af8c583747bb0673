package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akshayp/cetadvisor/internal/app/models"
	"github.com/akshayp/cetadvisor/internal/pkg/apperrors"
)

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	db *pgxpool.Pool
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a booking. booking_status and email_status take their
// column defaults (scheduled / pending).
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	query := squirrel.Insert("bookings").
		Columns("student_name", "email", "phone", "percentile", "category", "branch_preference", "meeting_time", "meet_link").
		Values(booking.StudentName, booking.Email, booking.Phone, booking.Percentile, booking.Category, booking.BranchPreference, booking.MeetingTime, booking.MeetLink).
		Suffix("RETURNING id, booking_status, email_status, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&booking.ID,
		&booking.BookingStatus,
		&booking.EmailStatus,
		&booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetAll retrieves all bookings ordered by meeting time descending
func (r *BookingRepository) GetAll(ctx context.Context) ([]models.Booking, error) {
	query := squirrel.Select("id", "student_name", "email", "phone", "percentile", "category", "branch_preference", "meeting_time", "meet_link", "booking_status", "email_status", "created_at").
		From("bookings").
		OrderBy("meeting_time DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var booking models.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.StudentName,
			&booking.Email,
			&booking.Phone,
			&booking.Percentile,
			&booking.Category,
			&booking.BranchPreference,
			&booking.MeetingTime,
			&booking.MeetLink,
			&booking.BookingStatus,
			&booking.EmailStatus,
			&booking.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// GetByID retrieves a booking by ID. Returns (nil, nil) when no row exists.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	query := squirrel.Select("id", "student_name", "email", "phone", "percentile", "category", "branch_preference", "meeting_time", "meet_link", "booking_status", "email_status", "created_at").
		From("bookings").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var booking models.Booking
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&booking.ID,
		&booking.StudentName,
		&booking.Email,
		&booking.Phone,
		&booking.Percentile,
		&booking.Category,
		&booking.BranchPreference,
		&booking.MeetingTime,
		&booking.MeetLink,
		&booking.BookingStatus,
		&booking.EmailStatus,
		&booking.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &booking, nil
}

// UpdateBookingStatus sets the lifecycle status of a booking
func (r *BookingRepository) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error {
	query := squirrel.Update("bookings").
		Set("booking_status", status).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}

// UpdateEmailStatus settles the confirmation email outcome of a booking
func (r *BookingRepository) UpdateEmailStatus(ctx context.Context, id string, status models.EmailStatus) error {
	query := squirrel.Update("bookings").
		Set("email_status", status).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}

// Delete deletes a booking
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	query := squirrel.Delete("bookings").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}
