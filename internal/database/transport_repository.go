package database

import (
	"database/sql"
	"fmt"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

// TransportRepository handles database operations for the transport_options table
type TransportRepository struct {
	db DB
}

// NewTransportRepository creates a new TransportRepository
func NewTransportRepository(db DB) *TransportRepository {
	return &TransportRepository{db: db}
}

const transportColumns = `id, operator, transport_type, origin, destination, departure_time,
	   total_seats, available_seats, price_per_seat, currency, features,
	   deleted_at, created_at, updated_at`

// GetByID retrieves a transport option by ID, excluding soft-deleted rows.
// Returns (nil, nil) when no active row exists.
func (r *TransportRepository) GetByID(id string) (*models.TransportOption, error) {
	query := `
		SELECT ` + transportColumns + `
		FROM transport_options
		WHERE id = $1 AND deleted_at IS NULL
	`

	return scanTransportOption(r.db.QueryRow(query, id))
}

// List retrieves transport options matching the filter, ordered by departure
func (r *TransportRepository) List(filter models.TransportFilter) ([]models.TransportOption, error) {
	query := `
		SELECT ` + transportColumns + `
		FROM transport_options
		WHERE deleted_at IS NULL
	`

	args := []interface{}{}
	argNum := 1

	if filter.Origin != "" {
		query += fmt.Sprintf(" AND origin ILIKE $%d", argNum)
		args = append(args, "%"+filter.Origin+"%")
		argNum++
	}
	if filter.Destination != "" {
		query += fmt.Sprintf(" AND destination ILIKE $%d", argNum)
		args = append(args, "%"+filter.Destination+"%")
		argNum++
	}
	if filter.TransportType != "" {
		query += fmt.Sprintf(" AND transport_type = $%d", argNum)
		args = append(args, filter.TransportType)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY departure_time ASC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transport options: %w", err)
	}
	defer rows.Close()

	var options []models.TransportOption
	for rows.Next() {
		var t models.TransportOption
		if err := rows.Scan(
			&t.ID, &t.Operator, &t.TransportType, &t.Origin, &t.Destination, &t.DepartureTime,
			&t.TotalSeats, &t.AvailableSeats, &t.PricePerSeat, &t.Currency, &t.Features,
			&t.DeletedAt, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transport option: %w", err)
		}
		options = append(options, t)
	}

	return options, rows.Err()
}

// DecrementSeats atomically reserves n seats. Zero rows affected means the
// option is gone or no longer has n seats free.
func (r *TransportRepository) DecrementSeats(id string, n int) (bool, error) {
	query := `
		UPDATE transport_options
		SET available_seats = available_seats - $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL AND available_seats >= $2
	`

	result, err := r.db.Exec(query, id, n)
	if err != nil {
		return false, fmt.Errorf("failed to decrement transport seats: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

// RestoreSeats returns n seats to the option, capped at total_seats
func (r *TransportRepository) RestoreSeats(id string, n int) error {
	query := `
		UPDATE transport_options
		SET available_seats = LEAST(available_seats + $2, total_seats), updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(query, id, n)
	if err != nil {
		return fmt.Errorf("failed to restore transport seats: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("transport option not found")
	}

	return nil
}

func scanTransportOption(row *sql.Row) (*models.TransportOption, error) {
	var t models.TransportOption
	err := row.Scan(
		&t.ID, &t.Operator, &t.TransportType, &t.Origin, &t.Destination, &t.DepartureTime,
		&t.TotalSeats, &t.AvailableSeats, &t.PricePerSeat, &t.Currency, &t.Features,
		&t.DeletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transport option: %w", err)
	}
	return &t, nil
}
