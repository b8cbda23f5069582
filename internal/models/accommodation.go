package models

import "time"

// Accommodation represents a bookable stay listing.
// Availability is interval-based: there is no counter, a date range is free
// when no pending or confirmed booking overlaps it.
type Accommodation struct {
	ID            string      `json:"id" db:"id"`
	Title         string      `json:"title" db:"title"`
	Description   *string     `json:"description,omitempty" db:"description"`
	Location      string      `json:"location" db:"location"`
	PricePerNight float64     `json:"price_per_night" db:"price_per_night"`
	Currency      string      `json:"currency" db:"currency"`
	MaxGuests     int         `json:"max_guests" db:"max_guests"`
	Bedrooms      int         `json:"bedrooms" db:"bedrooms"`
	Amenities     StringArray `json:"amenities" db:"amenities"`
	Rating        *float64    `json:"rating,omitempty" db:"rating"`
	ImageURL      *string     `json:"image_url,omitempty" db:"image_url"`
	DeletedAt     *time.Time  `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// AccommodationFilter holds the supported list-query parameters
type AccommodationFilter struct {
	Location string
	MinPrice *float64
	MaxPrice *float64
	Guests   *int
	Limit    int
	Offset   int
}
