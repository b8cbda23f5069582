package services

import (
	"fmt"
	"time"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

// Resource is an opaque handle to a fetched listing. The workflow passes it
// back unchanged to the adapter that produced it.
type Resource interface{}

// ResourceAdapter is the per-resource-kind strategy the booking workflow
// runs. One workflow, one adapter per booking type, instead of a copy of the
// transaction per resource kind.
type ResourceAdapter interface {
	Type() models.BookingType

	// Fetch loads the resource by id, excluding soft-deleted rows.
	// Returns (nil, nil) when no active resource exists.
	Fetch(id string) (Resource, error)

	// ValidateQuantity enforces the resource's static capacity ceiling,
	// independent of current bookings.
	ValidateQuantity(res Resource, req *models.CreateBookingRequest) *models.BookingError

	// CheckAvailability is the read-only availability check. It returns a
	// rejection (sold out, insufficient, interval conflict) or a lookup error.
	CheckAvailability(res Resource, req *models.CreateBookingRequest) (*models.BookingError, error)

	// Price computes the booking total and its currency. Pure.
	Price(res Resource, req *models.CreateBookingRequest) (float64, string)

	// Reserve atomically claims quantity units of capacity. reserved=false
	// means the counter no longer covers the quantity at commit time.
	// Interval-shape resources have no counter and always succeed.
	Reserve(id string, quantity int) (bool, error)

	// Release returns quantity units after a cancellation. No-op for
	// interval-shape resources.
	Release(id string, quantity int) error
}

// accommodationStore is the slice of AccommodationRepository the adapter uses
type accommodationStore interface {
	GetByID(id string) (*models.Accommodation, error)
}

// overlapStore is the slice of BookingRepository the accommodation adapter
// uses for interval availability
type overlapStore interface {
	CountOverlapping(bookingType models.BookingType, referenceID string, start, end time.Time) (int, error)
}

// AccommodationAdapter implements the interval-shape strategy: availability
// is re-derived from booking rows, so Reserve and Release touch nothing.
type AccommodationAdapter struct {
	accommodations accommodationStore
	bookings       overlapStore
}

// NewAccommodationAdapter creates a new AccommodationAdapter
func NewAccommodationAdapter(accommodations accommodationStore, bookings overlapStore) *AccommodationAdapter {
	return &AccommodationAdapter{accommodations: accommodations, bookings: bookings}
}

// Type returns the booking type this adapter serves
func (a *AccommodationAdapter) Type() models.BookingType {
	return models.BookingTypeAccommodation
}

// Fetch loads the accommodation, excluding soft-deleted rows
func (a *AccommodationAdapter) Fetch(id string) (Resource, error) {
	acc, err := a.accommodations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, nil
	}
	return acc, nil
}

// ValidateQuantity rejects guest counts above the listing's hard ceiling
func (a *AccommodationAdapter) ValidateQuantity(res Resource, req *models.CreateBookingRequest) *models.BookingError {
	acc := res.(*models.Accommodation)
	if req.Guests > acc.MaxGuests {
		return models.NewBookingError(models.ErrCodeExceedsCapacity,
			fmt.Sprintf("accommodation sleeps at most %d guests", acc.MaxGuests)).
			WithDetail("max_guests", acc.MaxGuests).
			WithDetail("requested", req.Guests)
	}
	return nil
}

// CheckAvailability scans pending/confirmed bookings for a date-range
// overlap against [check-in, check-out)
func (a *AccommodationAdapter) CheckAvailability(res Resource, req *models.CreateBookingRequest) (*models.BookingError, error) {
	acc := res.(*models.Accommodation)

	overlapping, err := a.bookings.CountOverlapping(
		models.BookingTypeAccommodation, acc.ID, req.StartDate, *req.EndDate,
	)
	if err != nil {
		return nil, err
	}

	if overlapping > 0 {
		return models.NewBookingError(models.ErrCodeNotAvailable,
			"accommodation is not available for the selected dates").
			WithDetail("check_in", req.StartDate).
			WithDetail("check_out", *req.EndDate), nil
	}

	return nil, nil
}

// Price computes nightly rate times nights plus the service fee
func (a *AccommodationAdapter) Price(res Resource, req *models.CreateBookingRequest) (float64, string) {
	acc := res.(*models.Accommodation)
	return AccommodationTotal(acc.PricePerNight, req.StartDate, *req.EndDate), acc.Currency
}

// Reserve is a no-op: interval availability is always re-derived from
// booking rows
func (a *AccommodationAdapter) Reserve(id string, quantity int) (bool, error) {
	return true, nil
}

// Release is a no-op: the cancelled status alone removes the booking from
// future overlap checks
func (a *AccommodationAdapter) Release(id string, quantity int) error {
	return nil
}

// eventStore is the slice of EventRepository the adapter uses
type eventStore interface {
	GetByID(id string) (*models.Event, error)
	DecrementSpots(id string, n int) (bool, error)
	RestoreSpots(id string, n int) error
}

// EventAdapter implements the counter-shape strategy over available_spots
type EventAdapter struct {
	events eventStore
}

// NewEventAdapter creates a new EventAdapter
func NewEventAdapter(events eventStore) *EventAdapter {
	return &EventAdapter{events: events}
}

// Type returns the booking type this adapter serves
func (a *EventAdapter) Type() models.BookingType {
	return models.BookingTypeEvent
}

// Fetch loads the event, excluding soft-deleted rows
func (a *EventAdapter) Fetch(id string) (Resource, error) {
	event, err := a.events.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}
	return event, nil
}

// ValidateQuantity rejects ticket counts above the per-booking limit
func (a *EventAdapter) ValidateQuantity(res Resource, req *models.CreateBookingRequest) *models.BookingError {
	if req.Guests > models.MaxTicketsPerBooking {
		return models.NewBookingError(models.ErrCodeExceedsCapacity,
			fmt.Sprintf("at most %d tickets per booking", models.MaxTicketsPerBooking)).
			WithDetail("max_tickets", models.MaxTicketsPerBooking).
			WithDetail("requested", req.Guests)
	}
	return nil
}

// CheckAvailability distinguishes a sold-out event (zero spots) from one
// with some spots but fewer than requested
func (a *EventAdapter) CheckAvailability(res Resource, req *models.CreateBookingRequest) (*models.BookingError, error) {
	event := res.(*models.Event)

	if event.AvailableSpots == 0 {
		return models.NewBookingError(models.ErrCodeSoldOut, "event is sold out"), nil
	}
	if event.AvailableSpots < req.Guests {
		return models.NewBookingError(models.ErrCodeInsufficientCapacity,
			"not enough spots available").
			WithDetail("available", event.AvailableSpots).
			WithDetail("requested", req.Guests), nil
	}

	return nil, nil
}

// Price computes tier unit price times ticket count
func (a *EventAdapter) Price(res Resource, req *models.CreateBookingRequest) (float64, string) {
	event := res.(*models.Event)
	return EventTotal(event.TicketTiers, req.TicketType, req.Guests), event.Currency
}

// Reserve atomically decrements available_spots
func (a *EventAdapter) Reserve(id string, quantity int) (bool, error) {
	return a.events.DecrementSpots(id, quantity)
}

// Release restores available_spots, capped at total capacity
func (a *EventAdapter) Release(id string, quantity int) error {
	return a.events.RestoreSpots(id, quantity)
}

// transportStore is the slice of TransportRepository the adapter uses
type transportStore interface {
	GetByID(id string) (*models.TransportOption, error)
	DecrementSeats(id string, n int) (bool, error)
	RestoreSeats(id string, n int) error
}

// TransportAdapter implements the counter-shape strategy over available_seats
type TransportAdapter struct {
	transport transportStore
}

// NewTransportAdapter creates a new TransportAdapter
func NewTransportAdapter(transport transportStore) *TransportAdapter {
	return &TransportAdapter{transport: transport}
}

// Type returns the booking type this adapter serves
func (a *TransportAdapter) Type() models.BookingType {
	return models.BookingTypeTransport
}

// Fetch loads the transport option, excluding soft-deleted rows
func (a *TransportAdapter) Fetch(id string) (Resource, error) {
	option, err := a.transport.GetByID(id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, nil
	}
	return option, nil
}

// ValidateQuantity rejects seat counts above the per-booking limit
func (a *TransportAdapter) ValidateQuantity(res Resource, req *models.CreateBookingRequest) *models.BookingError {
	if req.Guests > models.MaxSeatsPerBooking {
		return models.NewBookingError(models.ErrCodeExceedsCapacity,
			fmt.Sprintf("at most %d seats per booking", models.MaxSeatsPerBooking)).
			WithDetail("max_seats", models.MaxSeatsPerBooking).
			WithDetail("requested", req.Guests)
	}
	return nil
}

// CheckAvailability distinguishes a sold-out departure from one with some
// seats but fewer than requested
func (a *TransportAdapter) CheckAvailability(res Resource, req *models.CreateBookingRequest) (*models.BookingError, error) {
	option := res.(*models.TransportOption)

	if option.AvailableSeats == 0 {
		return models.NewBookingError(models.ErrCodeSoldOut, "transport option is sold out"), nil
	}
	if option.AvailableSeats < req.Guests {
		return models.NewBookingError(models.ErrCodeInsufficientCapacity,
			"not enough seats available").
			WithDetail("available", option.AvailableSeats).
			WithDetail("requested", req.Guests), nil
	}

	return nil, nil
}

// Price computes seat price times seat count
func (a *TransportAdapter) Price(res Resource, req *models.CreateBookingRequest) (float64, string) {
	option := res.(*models.TransportOption)
	return TransportTotal(option.PricePerSeat, req.Guests), option.Currency
}

// Reserve atomically decrements available_seats
func (a *TransportAdapter) Reserve(id string, quantity int) (bool, error) {
	return a.transport.DecrementSeats(id, quantity)
}

// Release restores available_seats, capped at total capacity
func (a *TransportAdapter) Release(id string, quantity int) error {
	return a.transport.RestoreSeats(id, quantity)
}
