package database

import (
	"database/sql"
	"fmt"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

// FlightRepository handles database operations for the flights table.
// Flights are save-only listings: no capacity counter, no booking writes.
type FlightRepository struct {
	db DB
}

// NewFlightRepository creates a new FlightRepository
func NewFlightRepository(db DB) *FlightRepository {
	return &FlightRepository{db: db}
}

const flightColumns = `id, airline, flight_number, origin, destination,
	   departure_time, arrival_time, price, currency,
	   deleted_at, created_at, updated_at`

// GetByID retrieves a flight by ID, excluding soft-deleted rows.
// Returns (nil, nil) when no active row exists.
func (r *FlightRepository) GetByID(id string) (*models.Flight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM flights
		WHERE id = $1 AND deleted_at IS NULL
	`

	var f models.Flight
	err := r.db.QueryRow(query, id).Scan(
		&f.ID, &f.Airline, &f.FlightNumber, &f.Origin, &f.Destination,
		&f.DepartureTime, &f.ArrivalTime, &f.Price, &f.Currency,
		&f.DeletedAt, &f.CreatedAt, &f.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}

	return &f, nil
}

// List retrieves flights matching the filter, ordered by departure
func (r *FlightRepository) List(filter models.FlightFilter) ([]models.Flight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM flights
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
	if filter.Airline != "" {
		query += fmt.Sprintf(" AND airline ILIKE $%d", argNum)
		args = append(args, "%"+filter.Airline+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY departure_time ASC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	defer rows.Close()

	var flights []models.Flight
	for rows.Next() {
		var f models.Flight
		if err := rows.Scan(
			&f.ID, &f.Airline, &f.FlightNumber, &f.Origin, &f.Destination,
			&f.DepartureTime, &f.ArrivalTime, &f.Price, &f.Currency,
			&f.DeletedAt, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		flights = append(flights, f)
	}

	return flights, rows.Err()
}
