package database

import (
	"database/sql"
	"fmt"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

// EventRepository handles database operations for the events table
type EventRepository struct {
	db DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, title, description, location, category, start_time,
	   total_spots, available_spots, ticket_tiers, currency, image_url,
	   deleted_at, created_at, updated_at`

// GetByID retrieves an event by ID, excluding soft-deleted rows.
// Returns (nil, nil) when no active row exists.
func (r *EventRepository) GetByID(id string) (*models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1 AND deleted_at IS NULL
	`

	return scanEvent(r.db.QueryRow(query, id))
}

// List retrieves events matching the filter, soonest first
func (r *EventRepository) List(filter models.EventFilter) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE deleted_at IS NULL
	`

	args := []interface{}{}
	argNum := 1

	if filter.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", argNum)
		args = append(args, "%"+filter.Location+"%")
		argNum++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argNum)
		args = append(args, filter.Category)
		argNum++
	}
	// Price bounds filter on the first (base) tier
	if filter.MinPrice != nil {
		query += fmt.Sprintf(" AND (ticket_tiers->0->>'price')::numeric >= $%d", argNum)
		args = append(args, *filter.MinPrice)
		argNum++
	}
	if filter.MaxPrice != nil {
		query += fmt.Sprintf(" AND (ticket_tiers->0->>'price')::numeric <= $%d", argNum)
		args = append(args, *filter.MaxPrice)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY start_time ASC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Location, &e.Category, &e.StartTime,
			&e.TotalSpots, &e.AvailableSpots, &e.TicketTiers, &e.Currency, &e.ImageURL,
			&e.DeletedAt, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// DecrementSpots atomically reserves n spots. The WHERE guard makes the
// decrement and the availability check one statement: zero rows affected
// means the event is gone or no longer has n spots free.
func (r *EventRepository) DecrementSpots(id string, n int) (bool, error) {
	query := `
		UPDATE events
		SET available_spots = available_spots - $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL AND available_spots >= $2
	`

	result, err := r.db.Exec(query, id, n)
	if err != nil {
		return false, fmt.Errorf("failed to decrement event spots: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

// RestoreSpots returns n spots to the event, capped at total_spots so a
// duplicate restore can never inflate capacity
func (r *EventRepository) RestoreSpots(id string, n int) error {
	query := `
		UPDATE events
		SET available_spots = LEAST(available_spots + $2, total_spots), updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(query, id, n)
	if err != nil {
		return fmt.Errorf("failed to restore event spots: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("event not found")
	}

	return nil
}

func scanEvent(row *sql.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.Category, &e.StartTime,
		&e.TotalSpots, &e.AvailableSpots, &e.TicketTiers, &e.Currency, &e.ImageURL,
		&e.DeletedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &e, nil
}
