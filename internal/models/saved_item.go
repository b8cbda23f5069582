package models

import (
	"errors"
	"time"
)

// SavedItemType identifies which listing kind a saved item references
type SavedItemType string

const (
	SavedItemAccommodation SavedItemType = "accommodation"
	SavedItemEvent         SavedItemType = "event"
	SavedItemTransport     SavedItemType = "transport"
	SavedItemFlight        SavedItemType = "flight"
	SavedItemTour          SavedItemType = "tour"
)

// SavedItem represents one entry on a user's wishlist. At most one saved
// record may exist per (user_id, item_type, item_id).
type SavedItem struct {
	ID        string        `json:"id" db:"id"`
	UserID    string        `json:"user_id" db:"user_id"`
	ItemType  SavedItemType `json:"item_type" db:"item_type"`
	ItemID    string        `json:"item_id" db:"item_id"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}

// SavedItemWithAvailability is a saved item enriched with the current
// availability of the referenced listing. Soft-deleted listings are
// reported unavailable.
type SavedItemWithAvailability struct {
	SavedItem
	Available bool `json:"available"`
}

// SaveItemRequest represents the request to save a listing
type SaveItemRequest struct {
	ItemType SavedItemType `json:"item_type" binding:"required"`
	ItemID   string        `json:"item_id" binding:"required"`
}

// Validate validates the save item request
func (r *SaveItemRequest) Validate() error {
	switch r.ItemType {
	case SavedItemAccommodation, SavedItemEvent, SavedItemTransport, SavedItemFlight, SavedItemTour:
		return nil
	default:
		return errors.New("item_type must be one of accommodation, event, transport, flight, tour")
	}
}
