package services

import (
	"github.com/sirupsen/logrus"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

// SavedItemStore is the slice of SavedItemRepository the service depends on
type SavedItemStore interface {
	Create(item *models.SavedItem) error
	Exists(userID string, itemType models.SavedItemType, itemID string) (bool, error)
	GetByUserID(userID string) ([]models.SavedItem, error)
	DeleteForUser(savedItemID, userID string) (bool, error)
	ItemExists(itemType models.SavedItemType, itemID string) (bool, error)
	ItemAvailable(itemType models.SavedItemType, itemID string) (bool, error)
}

// SavedItemService handles the wishlist: save, remove, and list with
// availability enrichment
type SavedItemService struct {
	store  SavedItemStore
	logger *logrus.Logger
}

// NewSavedItemService creates a new SavedItemService
func NewSavedItemService(store SavedItemStore, logger *logrus.Logger) *SavedItemService {
	return &SavedItemService{store: store, logger: logger}
}

// SaveItem saves a listing to the user's wishlist. The referenced listing
// must exist (and not be soft-deleted), and the same item cannot be saved
// twice by one user.
func (s *SavedItemService) SaveItem(userID string, req *models.SaveItemRequest) (*models.SavedItem, error) {
	if err := req.Validate(); err != nil {
		return nil, models.NewBookingError(models.ErrCodeItemNotFound, err.Error())
	}

	exists, err := s.store.ItemExists(req.ItemType, req.ItemID)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"item_type": req.ItemType,
			"item_id":   req.ItemID,
		}).Error("Failed to verify item existence")
		return nil, models.NewBookingError(models.ErrCodeItemNotFound, "failed to verify item")
	}
	if !exists {
		return nil, models.NewBookingError(models.ErrCodeItemNotFound, "item not found")
	}

	alreadySaved, err := s.store.Exists(userID, req.ItemType, req.ItemID)
	if err != nil {
		return nil, models.NewBookingError(models.ErrCodeItemNotFound, "failed to check saved items")
	}
	if alreadySaved {
		return nil, models.NewBookingError(models.ErrCodeAlreadySaved, "item already saved").
			WithDetail("item_type", req.ItemType).
			WithDetail("item_id", req.ItemID)
	}

	item := &models.SavedItem{
		UserID:   userID,
		ItemType: req.ItemType,
		ItemID:   req.ItemID,
	}
	if err := s.store.Create(item); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to save item")
		return nil, models.NewBookingError(models.ErrCodeItemNotFound, "failed to save item")
	}

	s.logger.WithFields(logrus.Fields{
		"saved_item_id": item.ID,
		"user_id":       userID,
		"item_type":     item.ItemType,
		"item_id":       item.ItemID,
	}).Info("Item saved")

	return item, nil
}

// RemoveSavedItem removes a saved item scoped to its owner. A saved item
// belonging to another user reports the same not-found as one that does not
// exist.
func (s *SavedItemService) RemoveSavedItem(savedItemID, userID string) error {
	removed, err := s.store.DeleteForUser(savedItemID, userID)
	if err != nil {
		s.logger.WithError(err).WithField("saved_item_id", savedItemID).
			Error("Failed to remove saved item")
		return models.NewBookingError(models.ErrCodeItemNotFound, "failed to remove saved item")
	}
	if !removed {
		return models.NewBookingError(models.ErrCodeItemNotFound, "saved item not found")
	}

	return nil
}

// GetSavedItems lists the user's saved items, each enriched with the
// referenced listing's current availability. A listing that was soft-deleted
// after being saved is flagged unavailable rather than dropped.
func (s *SavedItemService) GetSavedItems(userID string) ([]models.SavedItemWithAvailability, error) {
	items, err := s.store.GetByUserID(userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to list saved items")
		return nil, models.NewBookingError(models.ErrCodeItemNotFound, "failed to list saved items")
	}

	enriched := make([]models.SavedItemWithAvailability, 0, len(items))
	for _, item := range items {
		available, err := s.store.ItemAvailable(item.ItemType, item.ItemID)
		if err != nil {
			// Enrichment is best-effort; an unreadable listing shows as
			// unavailable rather than failing the whole list.
			s.logger.WithError(err).WithField("saved_item_id", item.ID).
				Warn("Failed to check availability for saved item")
			available = false
		}
		enriched = append(enriched, models.SavedItemWithAvailability{
			SavedItem: item,
			Available: available,
		})
	}

	return enriched, nil
}
