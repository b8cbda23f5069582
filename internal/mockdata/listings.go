// Package mockdata holds the static listings served when no database is
// configured. The API stays browsable in demos and local development;
// booking operations are rejected in this mode.
package mockdata

import (
	"time"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// Accommodations returns the static stay listings
func Accommodations() []models.Accommodation {
	return []models.Accommodation{
		{
			ID:            "acc-mock-001",
			Title:         "Seaview Apartment, Accra",
			Description:   strPtr("Two-bedroom apartment ten minutes from Labadi Beach."),
			Location:      "Accra, Ghana",
			PricePerNight: 85,
			Currency:      "USD",
			MaxGuests:     4,
			Bedrooms:      2,
			Amenities:     models.StringArray{"wifi", "air_conditioning", "kitchen"},
			Rating:        floatPtr(4.7),
		},
		{
			ID:            "acc-mock-002",
			Title:         "Old Town Riad, Marrakech",
			Description:   strPtr("Traditional riad with rooftop terrace in the medina."),
			Location:      "Marrakech, Morocco",
			PricePerNight: 120,
			Currency:      "USD",
			MaxGuests:     6,
			Bedrooms:      3,
			Amenities:     models.StringArray{"wifi", "pool", "breakfast"},
			Rating:        floatPtr(4.9),
		},
		{
			ID:            "acc-mock-003",
			Title:         "Garden Cottage, Nairobi",
			Location:      "Nairobi, Kenya",
			PricePerNight: 60,
			Currency:      "USD",
			MaxGuests:     2,
			Bedrooms:      1,
			Amenities:     models.StringArray{"wifi", "parking"},
			Rating:        floatPtr(4.5),
		},
	}
}

// Events returns the static event listings
func Events() []models.Event {
	return []models.Event{
		{
			ID:             "evt-mock-001",
			Title:          "Afrochella Music Festival",
			Location:       "Accra, Ghana",
			Category:       "music",
			StartTime:      date(2026, time.December, 28),
			TotalSpots:     5000,
			AvailableSpots: 3200,
			TicketTiers: models.TicketTierList{
				{Name: "general", Price: 50},
				{Name: "vip", Price: 150},
			},
			Currency: "USD",
		},
		{
			ID:             "evt-mock-002",
			Title:          "Lagos Food & Wine Fair",
			Location:       "Lagos, Nigeria",
			Category:       "food",
			StartTime:      date(2026, time.October, 10),
			TotalSpots:     800,
			AvailableSpots: 120,
			TicketTiers: models.TicketTierList{
				{Name: "standard", Price: 35},
			},
			Currency: "USD",
		},
	}
}

// TransportOptions returns the static transport listings
func TransportOptions() []models.TransportOption {
	return []models.TransportOption{
		{
			ID:             "trn-mock-001",
			Operator:       "Trans-Sahara Coaches",
			TransportType:  "bus",
			Origin:         "Accra",
			Destination:    "Kumasi",
			DepartureTime:  date(2026, time.September, 14).Add(8 * time.Hour),
			TotalSeats:     48,
			AvailableSeats: 22,
			PricePerSeat:   12,
			Currency:       "USD",
			Features:       models.StringArray{"air_conditioning", "wifi"},
		},
		{
			ID:             "trn-mock-002",
			Operator:       "Coastal Ferries",
			TransportType:  "ferry",
			Origin:         "Dar es Salaam",
			Destination:    "Zanzibar",
			DepartureTime:  date(2026, time.September, 15).Add(10 * time.Hour),
			TotalSeats:     200,
			AvailableSeats: 145,
			PricePerSeat:   25,
			Currency:       "USD",
		},
	}
}

// Flights returns the static flight listings
func Flights() []models.Flight {
	return []models.Flight{
		{
			ID:            "flt-mock-001",
			Airline:       "Africa World Airlines",
			FlightNumber:  "AW102",
			Origin:        "ACC",
			Destination:   "LOS",
			DepartureTime: date(2026, time.September, 20).Add(9 * time.Hour),
			ArrivalTime:   date(2026, time.September, 20).Add(10*time.Hour + 25*time.Minute),
			Price:         180,
			Currency:      "USD",
		},
		{
			ID:            "flt-mock-002",
			Airline:       "Kenya Airways",
			FlightNumber:  "KQ512",
			Origin:        "NBO",
			Destination:   "JNB",
			DepartureTime: date(2026, time.September, 22).Add(14 * time.Hour),
			ArrivalTime:   date(2026, time.September, 22).Add(18 * time.Hour),
			Price:         320,
			Currency:      "USD",
		},
	}
}
