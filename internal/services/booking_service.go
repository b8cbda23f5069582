package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

// BookingStore is the slice of BookingRepository the workflow depends on.
// Injected as an interface so the workflow is testable without a live store.
type BookingStore interface {
	Create(booking *models.Booking) error
	GetByIDForUser(bookingID, userID string, bookingType models.BookingType) (*models.Booking, error)
	GetByUserID(userID string) ([]models.Booking, error)
	MarkCancelled(bookingID string, cancelledAt time.Time) (bool, error)
	Delete(bookingID string) error
}

// EventPublisher publishes booking lifecycle events to the message broker
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// Routing keys for booking lifecycle events
const (
	EventBookingCreated               = "booking.created"
	EventBookingCancelled             = "booking.cancelled"
	EventBookingCapacityRestoreFailed = "booking.capacity_restore_failed"
)

// BookingService runs the capacity-bounded booking workflow: one workflow
// for every resource kind, dispatched through a ResourceAdapter keyed on
// booking_type.
type BookingService struct {
	bookings        BookingStore
	adapters        map[models.BookingType]ResourceAdapter
	publisher       EventPublisher
	defaultCurrency string
	logger          *logrus.Logger
}

// NewBookingService creates a new BookingService. publisher may be nil when
// no broker is configured.
func NewBookingService(
	bookings BookingStore,
	adapters []ResourceAdapter,
	publisher EventPublisher,
	defaultCurrency string,
	logger *logrus.Logger,
) *BookingService {
	byType := make(map[models.BookingType]ResourceAdapter, len(adapters))
	for _, a := range adapters {
		byType[a.Type()] = a
	}

	return &BookingService{
		bookings:        bookings,
		adapters:        byType,
		publisher:       publisher,
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}
}

// CreateBooking runs the booking transaction. The step order encodes the
// failure-handling policy: everything before the insert is read-only and
// safe to reject; the insert/reserve pair is made all-or-nothing by the
// compensating delete.
func (s *BookingService) CreateBooking(userID string, req *models.CreateBookingRequest) (*models.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, models.NewBookingError(models.ErrCodeBookingFailed, err.Error())
	}

	adapter, ok := s.adapters[req.BookingType]
	if !ok {
		return nil, models.NewBookingError(models.ErrCodeBookingFailed,
			"no booking workflow for type "+string(req.BookingType))
	}

	// 1. Fetch the resource, excluding soft-deleted rows
	resource, err := adapter.Fetch(req.ReferenceID)
	if err != nil {
		s.logger.WithError(err).WithField("reference_id", req.ReferenceID).
			Error("Failed to fetch resource for booking")
		return nil, models.NewBookingError(models.ErrCodeBookingFailed, "failed to load resource")
	}
	if resource == nil {
		return nil, models.NewBookingError(models.ErrCodeResourceNotFound, "resource not found")
	}

	// 2. Static capacity ceiling, independent of current bookings
	if bErr := adapter.ValidateQuantity(resource, req); bErr != nil {
		return nil, bErr
	}

	// 3. Read-only availability check. Produces the distinct sold-out /
	// insufficient / interval-conflict signals callers render differently.
	bErr, err := adapter.CheckAvailability(resource, req)
	if err != nil {
		s.logger.WithError(err).WithField("reference_id", req.ReferenceID).
			Error("Availability check failed")
		return nil, models.NewBookingError(models.ErrCodeBookingFailed, "failed to check availability")
	}
	if bErr != nil {
		return nil, bErr
	}

	// 4. Price the booking
	total, currency := adapter.Price(resource, req)
	if currency == "" {
		currency = s.defaultCurrency
	}

	// 5. Insert the booking row. Nothing has been mutated yet, so a failure
	// here needs no cleanup.
	booking := &models.Booking{
		UserID:      userID,
		BookingType: req.BookingType,
		ReferenceID: req.ReferenceID,
		Status:      models.BookingStatusPending,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Guests:      req.Guests,
		TotalPrice:  total,
		Currency:    currency,
		TicketType:  req.TicketType,
	}
	if err := s.bookings.Create(booking); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":      userID,
			"booking_type": req.BookingType,
			"reference_id": req.ReferenceID,
		}).Error("Failed to insert booking")
		return nil, models.NewBookingError(models.ErrCodeBookingFailed, "failed to create booking")
	}

	// 6. Reserve capacity with one conditional update. Zero rows affected is
	// the authoritative insufficient-capacity signal at commit time; either
	// failure compensates by deleting the booking inserted in step 5 so no
	// orphaned booking holds capacity that was never reserved.
	reserved, err := adapter.Reserve(req.ReferenceID, req.Guests)
	if err != nil {
		s.compensateBooking(booking)
		s.logger.WithError(err).WithField("booking_id", booking.ID).
			Error("Capacity reservation failed")
		return nil, models.NewBookingError(models.ErrCodeCapacityUpdateFailed, "failed to reserve capacity")
	}
	if !reserved {
		s.compensateBooking(booking)
		return nil, models.NewBookingError(models.ErrCodeInsufficientCapacity,
			"capacity was taken before the booking committed").
			WithDetail("requested", req.Guests)
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id":   booking.ID,
		"user_id":      userID,
		"booking_type": booking.BookingType,
		"reference_id": booking.ReferenceID,
		"guests":       booking.Guests,
		"total_price":  booking.TotalPrice,
	}).Info("Booking created")

	s.publish(EventBookingCreated, booking)

	return booking, nil
}

// CancelBooking runs the cancellation transaction. The ownership-scoped
// fetch conflates "does not exist" and "exists but not yours" into one
// not-found signal.
func (s *BookingService) CancelBooking(bookingID, userID string, bookingType models.BookingType) error {
	adapter, ok := s.adapters[bookingType]
	if !ok {
		return models.NewBookingError(models.ErrCodeBookingNotFound, "booking not found")
	}

	// 1. Ownership-scoped fetch
	booking, err := s.bookings.GetByIDForUser(bookingID, userID, bookingType)
	if err != nil {
		s.logger.WithError(err).WithField("booking_id", bookingID).
			Error("Failed to fetch booking for cancellation")
		return models.NewBookingError(models.ErrCodeCancellationFailed, "failed to load booking")
	}
	if booking == nil {
		return models.NewBookingError(models.ErrCodeBookingNotFound, "booking not found")
	}

	// 2. Cancelled and completed are terminal
	if !booking.CanBeCancelled() {
		return models.NewBookingError(models.ErrCodeCannotCancel,
			"booking is already "+string(booking.Status)).
			WithDetail("status", booking.Status)
	}

	// 3. Transition to cancelled. The conditional update catches a
	// concurrent cancellation racing this one.
	now := time.Now()
	cancelled, err := s.bookings.MarkCancelled(booking.ID, now)
	if err != nil {
		s.logger.WithError(err).WithField("booking_id", booking.ID).
			Error("Failed to mark booking cancelled")
		return models.NewBookingError(models.ErrCodeCancellationFailed, "failed to cancel booking")
	}
	if !cancelled {
		return models.NewBookingError(models.ErrCodeCannotCancel, "booking is no longer cancellable")
	}

	// 4. Restore capacity by the exact quantity the creation path reserved.
	// The cancellation is NOT rolled back if this fails: the booking stays
	// cancelled and the discrepancy is logged and published for manual
	// reconciliation (fail-safe in the sold-out direction).
	if err := adapter.Release(booking.ReferenceID, booking.Guests); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"booking_id":   booking.ID,
			"booking_type": booking.BookingType,
			"reference_id": booking.ReferenceID,
			"guests":       booking.Guests,
		}).Error("Capacity restore failed after cancellation - manual reconciliation required")
		s.publish(EventBookingCapacityRestoreFailed, booking)
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id":   booking.ID,
		"user_id":      userID,
		"booking_type": booking.BookingType,
		"reference_id": booking.ReferenceID,
	}).Info("Booking cancelled")

	s.publish(EventBookingCancelled, booking)

	return nil
}

// GetBookingsForUser retrieves all bookings owned by the user, newest first
func (s *BookingService) GetBookingsForUser(userID string) ([]models.Booking, error) {
	bookings, err := s.bookings.GetByUserID(userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to list bookings")
		return nil, models.NewBookingError(models.ErrCodeBookingFailed, "failed to list bookings")
	}
	return bookings, nil
}

// compensateBooking deletes a booking whose paired capacity reservation
// failed. A failed delete leaves an orphaned row, which is the one state the
// workflow cannot repair on its own - log it loudly.
func (s *BookingService) compensateBooking(booking *models.Booking) {
	if err := s.bookings.Delete(booking.ID); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"booking_id":   booking.ID,
			"booking_type": booking.BookingType,
			"reference_id": booking.ReferenceID,
		}).Error("Compensating delete failed - orphaned booking row")
	}
}

func (s *BookingService) publish(routingKey string, booking *models.Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(routingKey, booking); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"routing_key": routingKey,
			"booking_id":  booking.ID,
		}).Warn("Failed to publish booking event")
	}
}
