package database

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

// SavedItemRepository handles database operations for the saved_items table
type SavedItemRepository struct {
	db DB
}

// NewSavedItemRepository creates a new SavedItemRepository
func NewSavedItemRepository(db DB) *SavedItemRepository {
	return &SavedItemRepository{db: db}
}

// itemTables maps a saved-item kind to the listing table it references
var itemTables = map[models.SavedItemType]string{
	models.SavedItemAccommodation: "accommodations",
	models.SavedItemEvent:         "events",
	models.SavedItemTransport:     "transport_options",
	models.SavedItemFlight:        "flights",
	models.SavedItemTour:          "tours",
}

// Create creates a new saved item
func (r *SavedItemRepository) Create(item *models.SavedItem) error {
	query := `
		INSERT INTO saved_items (id, user_id, item_type, item_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	err := r.db.QueryRow(query, item.ID, item.UserID, item.ItemType, item.ItemID).
		Scan(&item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create saved item: %w", err)
	}

	return nil
}

// Exists reports whether the user already saved this item
func (r *SavedItemRepository) Exists(userID string, itemType models.SavedItemType, itemID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM saved_items
			WHERE user_id = $1 AND item_type = $2 AND item_id = $3
		)
	`

	var exists bool
	err := r.db.QueryRow(query, userID, itemType, itemID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check saved item: %w", err)
	}

	return exists, nil
}

// GetByUserID retrieves all saved items for a user, newest first
func (r *SavedItemRepository) GetByUserID(userID string) ([]models.SavedItem, error) {
	query := `
		SELECT id, user_id, item_type, item_id, created_at
		FROM saved_items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved items: %w", err)
	}
	defer rows.Close()

	var items []models.SavedItem
	for rows.Next() {
		var s models.SavedItem
		if err := rows.Scan(&s.ID, &s.UserID, &s.ItemType, &s.ItemID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan saved item: %w", err)
		}
		items = append(items, s)
	}

	return items, rows.Err()
}

// DeleteForUser removes a saved item scoped to its owner. Zero rows affected
// covers both "does not exist" and "not yours".
func (r *SavedItemRepository) DeleteForUser(savedItemID, userID string) (bool, error) {
	result, err := r.db.Exec(
		`DELETE FROM saved_items WHERE id = $1 AND user_id = $2`,
		savedItemID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete saved item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

// ItemExists reports whether the referenced listing exists and is not
// soft-deleted
func (r *SavedItemRepository) ItemExists(itemType models.SavedItemType, itemID string) (bool, error) {
	table, ok := itemTables[itemType]
	if !ok {
		return false, fmt.Errorf("unknown item type: %s", itemType)
	}

	query := fmt.Sprintf(
		`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1 AND deleted_at IS NULL)`,
		table,
	)

	var exists bool
	err := r.db.QueryRow(query, itemID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check item existence: %w", err)
	}

	return exists, nil
}

// ItemAvailable condenses the referenced listing's current availability to a
// boolean. Counter-shape listings need spare capacity; interval-shape and
// save-only listings just need to be active. Soft-deleted listings are
// unavailable.
func (r *SavedItemRepository) ItemAvailable(itemType models.SavedItemType, itemID string) (bool, error) {
	var query string

	switch itemType {
	case models.SavedItemEvent:
		query = `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1 AND deleted_at IS NULL AND available_spots > 0)`
	case models.SavedItemTransport:
		query = `SELECT EXISTS(SELECT 1 FROM transport_options WHERE id = $1 AND deleted_at IS NULL AND available_seats > 0)`
	default:
		return r.ItemExists(itemType, itemID)
	}

	var available bool
	err := r.db.QueryRow(query, itemID).Scan(&available)
	if err != nil {
		return false, fmt.Errorf("failed to check item availability: %w", err)
	}

	return available, nil
}
