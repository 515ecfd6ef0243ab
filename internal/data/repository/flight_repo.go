package repository

import (
	"context"
	"fmt"
	"time"

	"airline-ops/internal/data/entity"
	"airline-ops/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FlightRepository interface {
	WithTx(tx pgx.Tx) FlightRepository
	Create(ctx context.Context, flight *entity.Flight) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Flight, error)
	CountAll(ctx context.Context) (int64, error)
	FindAircraftConflict(ctx context.Context, aircraftID uuid.UUID, departure, arrival time.Time) (*entity.Flight, error)
	FindGateConflict(ctx context.Context, gateID uuid.UUID, departure, arrival time.Time) (*entity.Flight, error)
	AddBookedSeats(ctx context.Context, id uuid.UUID, delta int) error
	Update(ctx context.Context, flight *entity.Flight) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type flightRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewFlightRepository(db database.Querier, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

func (r *flightRepository) WithTx(tx pgx.Tx) FlightRepository {
	return &flightRepository{db: tx, log: r.log}
}

const flightColumns = `id, airline_id, aircraft_id, gate_id, origin, destination,
	departure, arrival, status, booked_seats, capacity, created_at, updated_at`

func scanFlight(row pgx.Row) (*entity.Flight, error) {
	var flight entity.Flight
	err := row.Scan(
		&flight.ID,
		&flight.AirlineID,
		&flight.AircraftID,
		&flight.GateID,
		&flight.Origin,
		&flight.Destination,
		&flight.Departure,
		&flight.Arrival,
		&flight.Status,
		&flight.BookedSeats,
		&flight.Capacity,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *flightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	query := `
		INSERT INTO flights (id, airline_id, aircraft_id, gate_id, origin, destination,
		                     departure, arrival, status, booked_seats, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		flight.ID,
		flight.AirlineID,
		flight.AircraftID,
		flight.GateID,
		flight.Origin,
		flight.Destination,
		flight.Departure,
		flight.Arrival,
		flight.Status,
		flight.BookedSeats,
		flight.Capacity,
		flight.CreatedAt,
		flight.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("origin", flight.Origin),
			zap.String("destination", flight.Destination),
		)
		return fmt.Errorf("create flight %s-%s: %w", flight.Origin, flight.Destination, err)
	}

	return nil
}

func (r *flightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE id = $1`

	flight, err := scanFlight(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight by ID %s: %w", id.String(), err)
	}

	return flight, nil
}

func (r *flightRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Flight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM flights
		ORDER BY departure
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find flights", zap.Error(err))
		return nil, fmt.Errorf("find flights: %w", err)
	}
	defer rows.Close()

	var flights []*entity.Flight
	for rows.Next() {
		flight, err := scanFlight(rows)
		if err != nil {
			r.log.Error("Failed to scan flight row", zap.Error(err))
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, flight)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate flight rows: %w", err)
	}

	return flights, nil
}

func (r *flightRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM flights`).Scan(&count); err != nil {
		r.log.Error("Failed to count flights", zap.Error(err))
		return 0, fmt.Errorf("count flights: %w", err)
	}
	return count, nil
}

// FindAircraftConflict returns any flight on the given aircraft whose
// [departure, arrival] window overlaps the given one. Boundaries are
// inclusive: back-to-back flights sharing an exact instant conflict. That is
// a deliberately conservative policy (an aircraft needs turnaround time).
// The SQL predicate mirrors entity.Flight.OverlapsWindow.
func (r *flightRepository) FindAircraftConflict(ctx context.Context, aircraftID uuid.UUID, departure, arrival time.Time) (*entity.Flight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM flights
		WHERE aircraft_id = $1 AND departure <= $3 AND arrival >= $2
		LIMIT 1
	`

	flight, err := scanFlight(r.db.QueryRow(ctx, query, aircraftID, departure, arrival))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to check aircraft conflict",
			zap.Error(err),
			zap.String("aircraft_id", aircraftID.String()),
		)
		return nil, fmt.Errorf("check aircraft conflict %s: %w", aircraftID.String(), err)
	}

	return flight, nil
}

// FindGateConflict is the gate-side counterpart of FindAircraftConflict,
// with the same inclusive-boundary overlap test.
func (r *flightRepository) FindGateConflict(ctx context.Context, gateID uuid.UUID, departure, arrival time.Time) (*entity.Flight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM flights
		WHERE gate_id = $1 AND departure <= $3 AND arrival >= $2
		LIMIT 1
	`

	flight, err := scanFlight(r.db.QueryRow(ctx, query, gateID, departure, arrival))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to check gate conflict",
			zap.Error(err),
			zap.String("gate_id", gateID.String()),
		)
		return nil, fmt.Errorf("check gate conflict %s: %w", gateID.String(), err)
	}

	return flight, nil
}

// AddBookedSeats shifts the cached booked_seats counter. The CHECK
// constraint keeps it from going negative if callers get the delta wrong.
func (r *flightRepository) AddBookedSeats(ctx context.Context, id uuid.UUID, delta int) error {
	query := `UPDATE flights SET booked_seats = booked_seats + $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, delta)
	if err != nil {
		r.log.Error("Failed to adjust booked seats",
			zap.Error(err),
			zap.String("flight_id", id.String()),
			zap.Int("delta", delta),
		)
		return fmt.Errorf("adjust booked seats for flight %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flight %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func (r *flightRepository) Update(ctx context.Context, flight *entity.Flight) error {
	query := `
		UPDATE flights
		SET airline_id = $2, aircraft_id = $3, gate_id = $4, origin = $5, destination = $6,
		    departure = $7, arrival = $8, status = $9, capacity = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		flight.ID,
		flight.AirlineID,
		flight.AircraftID,
		flight.GateID,
		flight.Origin,
		flight.Destination,
		flight.Departure,
		flight.Arrival,
		flight.Status,
		flight.Capacity,
		flight.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update flight",
			zap.Error(err),
			zap.String("flight_id", flight.ID.String()),
		)
		return fmt.Errorf("update flight %s: %w", flight.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flight %s: %w", flight.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *flightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM flights WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete flight",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return fmt.Errorf("delete flight %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flight %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
