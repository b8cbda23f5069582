package models

import "time"

// Flight represents a flight listing. Flights are save-only: they can be
// saved to a wishlist but carry no capacity counter and no booking decrement.
type Flight struct {
	ID            string     `json:"id" db:"id"`
	Airline       string     `json:"airline" db:"airline"`
	FlightNumber  string     `json:"flight_number" db:"flight_number"`
	Origin        string     `json:"origin" db:"origin"`
	Destination   string     `json:"destination" db:"destination"`
	DepartureTime time.Time  `json:"departure_time" db:"departure_time"`
	ArrivalTime   time.Time  `json:"arrival_time" db:"arrival_time"`
	Price         float64    `json:"price" db:"price"`
	Currency      string     `json:"currency" db:"currency"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// FlightFilter holds the supported list-query parameters
type FlightFilter struct {
	Origin      string
	Destination string
	Airline     string
	Limit       int
	Offset      int
}
