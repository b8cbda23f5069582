package models

import "time"

// Event represents a bookable event listing with counter-based availability.
// available_spots is decremented on booking and restored on cancellation; it
// must stay within [0, total_spots].
type Event struct {
	ID             string         `json:"id" db:"id"`
	Title          string         `json:"title" db:"title"`
	Description    *string        `json:"description,omitempty" db:"description"`
	Location       string         `json:"location" db:"location"`
	Category       string         `json:"category" db:"category"`
	StartTime      time.Time      `json:"start_time" db:"start_time"`
	TotalSpots     int            `json:"total_spots" db:"total_spots"`
	AvailableSpots int            `json:"available_spots" db:"available_spots"`
	TicketTiers    TicketTierList `json:"ticket_tiers" db:"ticket_tiers"`
	Currency       string         `json:"currency" db:"currency"`
	ImageURL       *string        `json:"image_url,omitempty" db:"image_url"`
	DeletedAt      *time.Time     `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

// MaxTicketsPerBooking is the hard ceiling on tickets in a single event booking
const MaxTicketsPerBooking = 10

// EventFilter holds the supported list-query parameters
type EventFilter struct {
	Location string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
	Offset   int
}
