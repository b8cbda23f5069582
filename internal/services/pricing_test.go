package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

func TestNights(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.December, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("Whole Days", func(t *testing.T) {
		assert.Equal(t, 3, Nights(day(20), day(23)))
		assert.Equal(t, 1, Nights(day(20), day(21)))
	})

	t.Run("Partial Day Rounds Up", func(t *testing.T) {
		checkIn := day(20).Add(14 * time.Hour)
		checkOut := day(22).Add(10 * time.Hour)
		assert.Equal(t, 2, Nights(checkIn, checkOut))
	})

	t.Run("Non Positive Range", func(t *testing.T) {
		assert.Equal(t, 0, Nights(day(23), day(23)))
		assert.Equal(t, 0, Nights(day(23), day(20)))
	})
}

func TestAccommodationTotal(t *testing.T) {
	checkIn := time.Date(2026, time.December, 20, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.December, 23, 0, 0, 0, 0, time.UTC)

	t.Run("Includes Service Fee", func(t *testing.T) {
		// 100 x 3 nights x 1.10
		assert.InDelta(t, 330, AccommodationTotal(100, checkIn, checkOut), 0.001)
	})

	t.Run("Deterministic", func(t *testing.T) {
		first := AccommodationTotal(85.50, checkIn, checkOut)
		second := AccommodationTotal(85.50, checkIn, checkOut)
		assert.Equal(t, first, second)
	})
}

func TestEventTotal(t *testing.T) {
	tiers := models.TicketTierList{
		{Name: "general", Price: 50},
		{Name: "vip", Price: 150},
	}

	t.Run("Matching Tier", func(t *testing.T) {
		vip := "vip"
		assert.InDelta(t, 300, EventTotal(tiers, &vip, 2), 0.001)
	})

	t.Run("Unknown Tier Falls Back To First", func(t *testing.T) {
		unknown := "backstage"
		assert.InDelta(t, 100, EventTotal(tiers, &unknown, 2), 0.001)
	})

	t.Run("Nil Tier Falls Back To First", func(t *testing.T) {
		assert.InDelta(t, 150, EventTotal(tiers, nil, 3), 0.001)
	})

	t.Run("Empty Tier List", func(t *testing.T) {
		assert.Equal(t, float64(0), EventTotal(models.TicketTierList{}, nil, 3))
	})
}

func TestTransportTotal(t *testing.T) {
	assert.InDelta(t, 48, TransportTotal(12, 4), 0.001)
}
