package database

import (
	"database/sql"
	"fmt"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

// AccommodationRepository handles database operations for the accommodations table
type AccommodationRepository struct {
	db DB
}

// NewAccommodationRepository creates a new AccommodationRepository
func NewAccommodationRepository(db DB) *AccommodationRepository {
	return &AccommodationRepository{db: db}
}

const accommodationColumns = `id, title, description, location, price_per_night, currency,
	   max_guests, bedrooms, amenities, rating, image_url,
	   deleted_at, created_at, updated_at`

// GetByID retrieves an accommodation by ID, excluding soft-deleted rows.
// Returns (nil, nil) when no active row exists.
func (r *AccommodationRepository) GetByID(id string) (*models.Accommodation, error) {
	query := `
		SELECT ` + accommodationColumns + `
		FROM accommodations
		WHERE id = $1 AND deleted_at IS NULL
	`

	return scanAccommodation(r.db.QueryRow(query, id))
}

// List retrieves accommodations matching the filter, newest first
func (r *AccommodationRepository) List(filter models.AccommodationFilter) ([]models.Accommodation, error) {
	query := `
		SELECT ` + accommodationColumns + `
		FROM accommodations
		WHERE deleted_at IS NULL
	`

	args := []interface{}{}
	argNum := 1

	if filter.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", argNum)
		args = append(args, "%"+filter.Location+"%")
		argNum++
	}
	if filter.MinPrice != nil {
		query += fmt.Sprintf(" AND price_per_night >= $%d", argNum)
		args = append(args, *filter.MinPrice)
		argNum++
	}
	if filter.MaxPrice != nil {
		query += fmt.Sprintf(" AND price_per_night <= $%d", argNum)
		args = append(args, *filter.MaxPrice)
		argNum++
	}
	if filter.Guests != nil {
		query += fmt.Sprintf(" AND max_guests >= $%d", argNum)
		args = append(args, *filter.Guests)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accommodations: %w", err)
	}
	defer rows.Close()

	var accommodations []models.Accommodation
	for rows.Next() {
		var a models.Accommodation
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Description, &a.Location, &a.PricePerNight, &a.Currency,
			&a.MaxGuests, &a.Bedrooms, &a.Amenities, &a.Rating, &a.ImageURL,
			&a.DeletedAt, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan accommodation: %w", err)
		}
		accommodations = append(accommodations, a)
	}

	return accommodations, rows.Err()
}

func scanAccommodation(row *sql.Row) (*models.Accommodation, error) {
	var a models.Accommodation
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.Location, &a.PricePerNight, &a.Currency,
		&a.MaxGuests, &a.Bedrooms, &a.Amenities, &a.Rating, &a.ImageURL,
		&a.DeletedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get accommodation: %w", err)
	}
	return &a, nil
}
