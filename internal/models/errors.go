package models

import "fmt"

// ErrorCode identifies a booking-core failure for API consumers
type ErrorCode string

const (
	ErrCodeResourceNotFound     ErrorCode = "RESOURCE_NOT_FOUND"
	ErrCodeExceedsCapacity      ErrorCode = "EXCEEDS_CAPACITY"
	ErrCodeInsufficientCapacity ErrorCode = "INSUFFICIENT_CAPACITY"
	ErrCodeSoldOut              ErrorCode = "SOLD_OUT"
	ErrCodeNotAvailable         ErrorCode = "NOT_AVAILABLE"
	ErrCodeBookingFailed        ErrorCode = "BOOKING_FAILED"
	ErrCodeCapacityUpdateFailed ErrorCode = "CAPACITY_UPDATE_FAILED"
	ErrCodeBookingNotFound      ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeCannotCancel         ErrorCode = "CANNOT_CANCEL"
	ErrCodeCancellationFailed   ErrorCode = "CANCELLATION_FAILED"
	ErrCodeAlreadySaved         ErrorCode = "ALREADY_SAVED"
	ErrCodeItemNotFound         ErrorCode = "ITEM_NOT_FOUND"
)

// BookingError is the discriminated error every booking-core operation returns.
// Handlers map Code to an HTTP status; Details carries structured context
// (requested vs available quantities, conflicting dates, etc.)
type BookingError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBookingError creates a BookingError without details
func NewBookingError(code ErrorCode, message string) *BookingError {
	return &BookingError{Code: code, Message: message}
}

// WithDetail attaches a structured detail field and returns the error for chaining
func (e *BookingError) WithDetail(key string, value interface{}) *BookingError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// AsBookingError unwraps err to a *BookingError if it is one
func AsBookingError(err error) (*BookingError, bool) {
	be, ok := err.(*BookingError)
	return be, ok
}
