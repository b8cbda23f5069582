package services

import (
	"math"
	"time"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

// ServiceFeeRate is the fixed surcharge applied to accommodation bookings
const ServiceFeeRate = 0.10

// Nights returns the number of billable nights between check-in and
// check-out, computed from the calendar-day difference rounded up. Partial
// days bill as a full night.
func Nights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	if hours <= 0 {
		return 0
	}
	return int(math.Ceil(hours / 24))
}

// AccommodationTotal prices a stay: nightly rate times nights, plus the
// service fee. Deterministic, no I/O.
func AccommodationTotal(pricePerNight float64, checkIn, checkOut time.Time) float64 {
	return pricePerNight * float64(Nights(checkIn, checkOut)) * (1 + ServiceFeeRate)
}

// EventTotal prices an event booking: tier unit price times ticket count.
// An unknown ticket type falls back to the first tier.
func EventTotal(tiers models.TicketTierList, ticketType *string, tickets int) float64 {
	return tiers.PriceFor(ticketType) * float64(tickets)
}

// TransportTotal prices a transport booking: seat price times seat count
func TransportTotal(pricePerSeat float64, seats int) float64 {
	return pricePerSeat * float64(seats)
}
