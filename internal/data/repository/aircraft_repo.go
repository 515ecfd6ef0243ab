package repository

import (
	"context"
	"fmt"

	"airline-ops/internal/data/entity"
	"airline-ops/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AircraftRepository interface {
	WithTx(tx pgx.Tx) AircraftRepository
	Create(ctx context.Context, aircraft *entity.Aircraft) error
	CreateBatch(ctx context.Context, aircraft []*entity.Aircraft) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Aircraft, error)
	FindByRegistration(ctx context.Context, registration string) (*entity.Aircraft, error)
	FindExistingRegistrations(ctx context.Context, registrations []string) ([]string, error)
	FindAll(ctx context.Context) ([]*entity.Aircraft, error)
	Update(ctx context.Context, aircraft *entity.Aircraft) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type aircraftRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAircraftRepository(db database.Querier, log *zap.Logger) AircraftRepository {
	return &aircraftRepository{
		db:  db,
		log: log.With(zap.String("repository", "aircraft")),
	}
}

func (r *aircraftRepository) WithTx(tx pgx.Tx) AircraftRepository {
	return &aircraftRepository{db: tx, log: r.log}
}

func (r *aircraftRepository) Create(ctx context.Context, aircraft *entity.Aircraft) error {
	query := `
		INSERT INTO aircraft (id, airline_id, model, seat_capacity, registration_number, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		aircraft.ID,
		aircraft.AirlineID,
		aircraft.Model,
		aircraft.SeatCapacity,
		aircraft.RegistrationNumber,
		aircraft.Status,
		aircraft.CreatedAt,
		aircraft.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create aircraft",
			zap.Error(err),
			zap.String("registration", aircraft.RegistrationNumber),
		)
		return fmt.Errorf("create aircraft %s: %w", aircraft.RegistrationNumber, err)
	}

	return nil
}

// CreateBatch inserts aircraft in order and stops at the first failure.
// Callers run it inside a transaction so a partial batch never survives.
func (r *aircraftRepository) CreateBatch(ctx context.Context, aircraft []*entity.Aircraft) error {
	for _, a := range aircraft {
		if err := r.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (r *aircraftRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Aircraft, error) {
	query := `
		SELECT id, airline_id, model, seat_capacity, registration_number, status, created_at, updated_at
		FROM aircraft
		WHERE id = $1
	`

	var aircraft entity.Aircraft
	err := r.db.QueryRow(ctx, query, id).Scan(
		&aircraft.ID,
		&aircraft.AirlineID,
		&aircraft.Model,
		&aircraft.SeatCapacity,
		&aircraft.RegistrationNumber,
		&aircraft.Status,
		&aircraft.CreatedAt,
		&aircraft.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find aircraft by ID",
			zap.Error(err),
			zap.String("aircraft_id", id.String()),
		)
		return nil, fmt.Errorf("find aircraft by ID %s: %w", id.String(), err)
	}

	return &aircraft, nil
}

func (r *aircraftRepository) FindByRegistration(ctx context.Context, registration string) (*entity.Aircraft, error) {
	query := `
		SELECT id, airline_id, model, seat_capacity, registration_number, status, created_at, updated_at
		FROM aircraft
		WHERE registration_number = $1
	`

	var aircraft entity.Aircraft
	err := r.db.QueryRow(ctx, query, registration).Scan(
		&aircraft.ID,
		&aircraft.AirlineID,
		&aircraft.Model,
		&aircraft.SeatCapacity,
		&aircraft.RegistrationNumber,
		&aircraft.Status,
		&aircraft.CreatedAt,
		&aircraft.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find aircraft by registration",
			zap.Error(err),
			zap.String("registration", registration),
		)
		return nil, fmt.Errorf("find aircraft by registration %s: %w", registration, err)
	}

	return &aircraft, nil
}

// FindExistingRegistrations returns the subset of the given registration
// numbers that are already present in the store.
func (r *aircraftRepository) FindExistingRegistrations(ctx context.Context, registrations []string) ([]string, error) {
	query := `SELECT registration_number FROM aircraft WHERE registration_number = ANY($1)`

	rows, err := r.db.Query(ctx, query, registrations)
	if err != nil {
		r.log.Error("Failed to find existing registrations", zap.Error(err))
		return nil, fmt.Errorf("find existing registrations: %w", err)
	}
	defer rows.Close()

	var existing []string
	for rows.Next() {
		var reg string
		if err := rows.Scan(&reg); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		existing = append(existing, reg)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate registration rows: %w", err)
	}

	return existing, nil
}

func (r *aircraftRepository) FindAll(ctx context.Context) ([]*entity.Aircraft, error) {
	query := `
		SELECT id, airline_id, model, seat_capacity, registration_number, status, created_at, updated_at
		FROM aircraft
		ORDER BY registration_number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find aircraft", zap.Error(err))
		return nil, fmt.Errorf("find aircraft: %w", err)
	}
	defer rows.Close()

	var fleet []*entity.Aircraft
	for rows.Next() {
		var aircraft entity.Aircraft
		err := rows.Scan(
			&aircraft.ID,
			&aircraft.AirlineID,
			&aircraft.Model,
			&aircraft.SeatCapacity,
			&aircraft.RegistrationNumber,
			&aircraft.Status,
			&aircraft.CreatedAt,
			&aircraft.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan aircraft row", zap.Error(err))
			return nil, fmt.Errorf("scan aircraft row: %w", err)
		}
		fleet = append(fleet, &aircraft)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate aircraft rows: %w", err)
	}

	return fleet, nil
}

func (r *aircraftRepository) Update(ctx context.Context, aircraft *entity.Aircraft) error {
	query := `
		UPDATE aircraft
		SET airline_id = $2, model = $3, seat_capacity = $4, registration_number = $5, status = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		aircraft.ID,
		aircraft.AirlineID,
		aircraft.Model,
		aircraft.SeatCapacity,
		aircraft.RegistrationNumber,
		aircraft.Status,
		aircraft.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update aircraft",
			zap.Error(err),
			zap.String("aircraft_id", aircraft.ID.String()),
		)
		return fmt.Errorf("update aircraft %s: %w", aircraft.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("aircraft %s: %w", aircraft.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *aircraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM aircraft WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete aircraft",
			zap.Error(err),
			zap.String("aircraft_id", id.String()),
		)
		return fmt.Errorf("delete aircraft %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("aircraft %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
