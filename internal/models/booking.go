package models

import (
	"errors"
	"time"
)

// BookingType discriminates which resource kind a booking references
type BookingType string

const (
	BookingTypeAccommodation BookingType = "accommodation"
	BookingTypeEvent         BookingType = "event"
	BookingTypeTransport     BookingType = "transport"
	BookingTypeFlight        BookingType = "flight"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking represents a reservation against a bookable listing
type Booking struct {
	ID          string        `json:"id" db:"id"`
	UserID      string        `json:"user_id" db:"user_id"`
	BookingType BookingType   `json:"booking_type" db:"booking_type"`
	ReferenceID string        `json:"reference_id" db:"reference_id"`
	Status      BookingStatus `json:"status" db:"status"`
	StartDate   time.Time     `json:"start_date" db:"start_date"`
	EndDate     *time.Time    `json:"end_date,omitempty" db:"end_date"`
	Guests      int           `json:"guests" db:"guests"`
	TotalPrice  float64       `json:"total_price" db:"total_price"`
	Currency    string        `json:"currency" db:"currency"`
	TicketType  *string       `json:"ticket_type,omitempty" db:"ticket_type"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// CanBeCancelled checks if the booking can be cancelled.
// Cancelled and completed are terminal states.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// CreateBookingRequest represents the request to create a booking
type CreateBookingRequest struct {
	BookingType BookingType `json:"booking_type" binding:"required"`
	ReferenceID string      `json:"reference_id" binding:"required"`
	StartDate   time.Time   `json:"start_date" binding:"required"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	Guests      int         `json:"guests" binding:"required,min=1"`
	TicketType  *string     `json:"ticket_type,omitempty"`
}

// Validate validates the create booking request
func (r *CreateBookingRequest) Validate() error {
	switch r.BookingType {
	case BookingTypeAccommodation, BookingTypeEvent, BookingTypeTransport:
	default:
		return errors.New("booking_type must be one of accommodation, event, transport")
	}

	if r.Guests <= 0 {
		return errors.New("guests must be at least 1")
	}

	if r.BookingType == BookingTypeAccommodation {
		if r.EndDate == nil {
			return errors.New("end_date is required for accommodation bookings")
		}
		if !r.EndDate.After(r.StartDate) {
			return errors.New("end_date must be after start_date")
		}
	}

	return nil
}
