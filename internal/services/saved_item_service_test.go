package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

type catalogKey struct {
	itemType models.SavedItemType
	itemID   string
}

// fakeSavedItemStore is an in-memory SavedItemStore backed by a small
// catalog of known listings
type fakeSavedItemStore struct {
	items     map[string]*models.SavedItem
	catalog   map[catalogKey]bool // value = currently available
	failAvail bool
}

func newFakeSavedItemStore() *fakeSavedItemStore {
	return &fakeSavedItemStore{
		items:   make(map[string]*models.SavedItem),
		catalog: make(map[catalogKey]bool),
	}
}

func (s *fakeSavedItemStore) addListing(itemType models.SavedItemType, itemID string, available bool) {
	s.catalog[catalogKey{itemType, itemID}] = available
}

func (s *fakeSavedItemStore) Create(item *models.SavedItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	copied := *item
	s.items[item.ID] = &copied
	return nil
}

func (s *fakeSavedItemStore) Exists(userID string, itemType models.SavedItemType, itemID string) (bool, error) {
	for _, it := range s.items {
		if it.UserID == userID && it.ItemType == itemType && it.ItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeSavedItemStore) GetByUserID(userID string) ([]models.SavedItem, error) {
	var result []models.SavedItem
	for _, it := range s.items {
		if it.UserID == userID {
			result = append(result, *it)
		}
	}
	return result, nil
}

func (s *fakeSavedItemStore) DeleteForUser(savedItemID, userID string) (bool, error) {
	it, ok := s.items[savedItemID]
	if !ok || it.UserID != userID {
		return false, nil
	}
	delete(s.items, savedItemID)
	return true, nil
}

func (s *fakeSavedItemStore) ItemExists(itemType models.SavedItemType, itemID string) (bool, error) {
	_, ok := s.catalog[catalogKey{itemType, itemID}]
	return ok, nil
}

func (s *fakeSavedItemStore) ItemAvailable(itemType models.SavedItemType, itemID string) (bool, error) {
	if s.failAvail {
		return false, errors.New("store unreachable")
	}
	return s.catalog[catalogKey{itemType, itemID}], nil
}

func saveRequest(itemType models.SavedItemType, itemID string) *models.SaveItemRequest {
	return &models.SaveItemRequest{ItemType: itemType, ItemID: itemID}
}

func TestSaveItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store := newFakeSavedItemStore()
		store.addListing(models.SavedItemEvent, "evt-1", true)
		svc := NewSavedItemService(store, testLogger())

		item, err := svc.SaveItem("user-a", saveRequest(models.SavedItemEvent, "evt-1"))
		require.NoError(t, err)
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, "user-a", item.UserID)
		assert.Len(t, store.items, 1)
	})

	t.Run("Unknown Item Type", func(t *testing.T) {
		svc := NewSavedItemService(newFakeSavedItemStore(), testLogger())

		_, err := svc.SaveItem("user-a", saveRequest("restaurant", "r-1"))
		bErr, ok := models.AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, models.ErrCodeItemNotFound, bErr.Code)
	})

	t.Run("Missing Listing", func(t *testing.T) {
		svc := NewSavedItemService(newFakeSavedItemStore(), testLogger())

		_, err := svc.SaveItem("user-a", saveRequest(models.SavedItemEvent, "evt-missing"))
		bErr, ok := models.AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, models.ErrCodeItemNotFound, bErr.Code)
	})

	t.Run("Duplicate Save Rejected", func(t *testing.T) {
		store := newFakeSavedItemStore()
		store.addListing(models.SavedItemAccommodation, "acc-1", true)
		svc := NewSavedItemService(store, testLogger())

		_, err := svc.SaveItem("user-a", saveRequest(models.SavedItemAccommodation, "acc-1"))
		require.NoError(t, err)

		_, err = svc.SaveItem("user-a", saveRequest(models.SavedItemAccommodation, "acc-1"))
		bErr, ok := models.AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, models.ErrCodeAlreadySaved, bErr.Code)
		// Exactly one row per (user, type, item)
		assert.Len(t, store.items, 1)
	})

	t.Run("Same Item Different Users", func(t *testing.T) {
		store := newFakeSavedItemStore()
		store.addListing(models.SavedItemTour, "tour-1", true)
		svc := NewSavedItemService(store, testLogger())

		_, err := svc.SaveItem("user-a", saveRequest(models.SavedItemTour, "tour-1"))
		require.NoError(t, err)
		_, err = svc.SaveItem("user-b", saveRequest(models.SavedItemTour, "tour-1"))
		require.NoError(t, err)
		assert.Len(t, store.items, 2)
	})
}

func TestRemoveSavedItem(t *testing.T) {
	store := newFakeSavedItemStore()
	store.addListing(models.SavedItemEvent, "evt-1", true)
	svc := NewSavedItemService(store, testLogger())

	item, err := svc.SaveItem("user-a", saveRequest(models.SavedItemEvent, "evt-1"))
	require.NoError(t, err)

	t.Run("Other Users Item Reports Not Found", func(t *testing.T) {
		err := svc.RemoveSavedItem(item.ID, "user-b")
		bErr, ok := models.AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, models.ErrCodeItemNotFound, bErr.Code)
		assert.Len(t, store.items, 1)
	})

	t.Run("Owner Removes", func(t *testing.T) {
		require.NoError(t, svc.RemoveSavedItem(item.ID, "user-a"))
		assert.Empty(t, store.items)
	})

	t.Run("Unknown ID Reports Not Found", func(t *testing.T) {
		err := svc.RemoveSavedItem(uuid.New().String(), "user-a")
		bErr, ok := models.AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, models.ErrCodeItemNotFound, bErr.Code)
	})
}

func TestGetSavedItems_AvailabilityEnrichment(t *testing.T) {
	store := newFakeSavedItemStore()
	store.addListing(models.SavedItemEvent, "evt-live", true)
	store.addListing(models.SavedItemEvent, "evt-gone", true)
	svc := NewSavedItemService(store, testLogger())

	_, err := svc.SaveItem("user-a", saveRequest(models.SavedItemEvent, "evt-live"))
	require.NoError(t, err)
	_, err = svc.SaveItem("user-a", saveRequest(models.SavedItemEvent, "evt-gone"))
	require.NoError(t, err)

	// The second listing goes unavailable after being saved; it stays on the
	// list but is flagged.
	store.catalog[catalogKey{models.SavedItemEvent, "evt-gone"}] = false

	items, err := svc.GetSavedItems("user-a")
	require.NoError(t, err)
	require.Len(t, items, 2)

	byItemID := make(map[string]bool, len(items))
	for _, it := range items {
		byItemID[it.ItemID] = it.Available
	}
	assert.True(t, byItemID["evt-live"])
	assert.False(t, byItemID["evt-gone"])
}

func TestGetSavedItems_EnrichmentFailureIsBestEffort(t *testing.T) {
	store := newFakeSavedItemStore()
	store.addListing(models.SavedItemTransport, "bus-1", true)
	svc := NewSavedItemService(store, testLogger())

	_, err := svc.SaveItem("user-a", saveRequest(models.SavedItemTransport, "bus-1"))
	require.NoError(t, err)

	store.failAvail = true
	items, err := svc.GetSavedItems("user-a")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].Available)
}
