package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

// BookingRepository handles database operations for the bookings table
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, user_id, booking_type, reference_id, status,
	   start_date, end_date, guests, total_price, currency, ticket_type,
	   cancelled_at, created_at, updated_at`

// Create creates a new booking
func (r *BookingRepository) Create(booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, user_id, booking_type, reference_id, status,
			start_date, end_date, guests, total_price, currency, ticket_type
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING created_at, updated_at
	`

	// Generate ID if not provided
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}

	err := r.db.QueryRow(
		query,
		booking.ID, booking.UserID, booking.BookingType, booking.ReferenceID, booking.Status,
		booking.StartDate, booking.EndDate, booking.Guests, booking.TotalPrice,
		booking.Currency, booking.TicketType,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// GetByIDForUser retrieves a booking scoped to its owner and booking type.
// A booking that exists but belongs to another user scans as (nil, nil) — the
// caller cannot tell the two cases apart, which is the point.
func (r *BookingRepository) GetByIDForUser(bookingID, userID string, bookingType models.BookingType) (*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1 AND user_id = $2 AND booking_type = $3
	`

	return scanBooking(r.db.QueryRow(query, bookingID, userID, bookingType))
}

// GetByUserID retrieves all bookings for a user, newest first
func (r *BookingRepository) GetByUserID(userID string) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := scanBookingRow(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// CountOverlapping counts pending/confirmed bookings of a resource whose
// [start_date, end_date) interval intersects [start, end). Half-open
// semantics: a checkout on day X does not conflict with a checkin on day X.
func (r *BookingRepository) CountOverlapping(bookingType models.BookingType, referenceID string, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE booking_type = $1
		  AND reference_id = $2
		  AND status IN ('pending', 'confirmed')
		  AND start_date < $4
		  AND end_date > $3
	`

	var count int
	err := r.db.QueryRow(query, bookingType, referenceID, start, end).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return count, nil
}

// MarkCancelled transitions a booking to cancelled and stamps cancelled_at.
// The status guard makes the transition conditional: a booking already in a
// terminal state affects zero rows.
func (r *BookingRepository) MarkCancelled(bookingID string, cancelledAt time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET status = 'cancelled', cancelled_at = $2, updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', 'confirmed')
	`

	result, err := r.db.Exec(query, bookingID, cancelledAt)
	if err != nil {
		return false, fmt.Errorf("failed to cancel booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

// Delete hard-deletes a booking. Only used as the compensating action when
// the capacity reservation paired with a fresh insert fails.
func (r *BookingRepository) Delete(bookingID string) error {
	result, err := r.db.Exec(`DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("booking not found")
	}

	return nil
}

func scanBooking(row *sql.Row) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.BookingType, &b.ReferenceID, &b.Status,
		&b.StartDate, &b.EndDate, &b.Guests, &b.TotalPrice, &b.Currency, &b.TicketType,
		&b.CancelledAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

func scanBookingRow(rows *sql.Rows, b *models.Booking) error {
	err := rows.Scan(
		&b.ID, &b.UserID, &b.BookingType, &b.ReferenceID, &b.Status,
		&b.StartDate, &b.EndDate, &b.Guests, &b.TotalPrice, &b.Currency, &b.TicketType,
		&b.CancelledAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to scan booking: %w", err)
	}
	return nil
}
