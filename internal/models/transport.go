package models

import "time"

// TransportOption represents a bookable transport departure (bus, train,
// ferry, shuttle) with counter-based seat availability.
type TransportOption struct {
	ID             string      `json:"id" db:"id"`
	Operator       string      `json:"operator" db:"operator"`
	TransportType  string      `json:"transport_type" db:"transport_type"`
	Origin         string      `json:"origin" db:"origin"`
	Destination    string      `json:"destination" db:"destination"`
	DepartureTime  time.Time   `json:"departure_time" db:"departure_time"`
	TotalSeats     int         `json:"total_seats" db:"total_seats"`
	AvailableSeats int         `json:"available_seats" db:"available_seats"`
	PricePerSeat   float64     `json:"price_per_seat" db:"price_per_seat"`
	Currency       string      `json:"currency" db:"currency"`
	Features       StringArray `json:"features" db:"features"`
	DeletedAt      *time.Time  `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"`
}

// MaxSeatsPerBooking is the hard ceiling on seats in a single transport booking
const MaxSeatsPerBooking = 8

// TransportFilter holds the supported list-query parameters
type TransportFilter struct {
	Origin        string
	Destination   string
	TransportType string
	Limit         int
	Offset        int
}
