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

type AirlineRepository interface {
	WithTx(tx pgx.Tx) AirlineRepository
	Create(ctx context.Context, airline *entity.Airline) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Airline, error)
	FindAll(ctx context.Context) ([]*entity.Airline, error)
	FindExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
	Update(ctx context.Context, airline *entity.Airline) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type airlineRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAirlineRepository(db database.Querier, log *zap.Logger) AirlineRepository {
	return &airlineRepository{
		db:  db,
		log: log.With(zap.String("repository", "airline")),
	}
}

func (r *airlineRepository) WithTx(tx pgx.Tx) AirlineRepository {
	return &airlineRepository{db: tx, log: r.log}
}

func (r *airlineRepository) Create(ctx context.Context, airline *entity.Airline) error {
	query := `
		INSERT INTO airlines (id, name, iata_code, country, fleet_size, founded_year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		airline.ID,
		airline.Name,
		airline.IataCode,
		airline.Country,
		airline.FleetSize,
		airline.FoundedYear,
		airline.CreatedAt,
		airline.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create airline",
			zap.Error(err),
			zap.String("name", airline.Name),
		)
		return fmt.Errorf("create airline %s: %w", airline.Name, err)
	}

	return nil
}

func (r *airlineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Airline, error) {
	query := `
		SELECT id, name, iata_code, country, fleet_size, founded_year, created_at, updated_at
		FROM airlines
		WHERE id = $1
	`

	var airline entity.Airline
	err := r.db.QueryRow(ctx, query, id).Scan(
		&airline.ID,
		&airline.Name,
		&airline.IataCode,
		&airline.Country,
		&airline.FleetSize,
		&airline.FoundedYear,
		&airline.CreatedAt,
		&airline.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find airline by ID",
			zap.Error(err),
			zap.String("airline_id", id.String()),
		)
		return nil, fmt.Errorf("find airline by ID %s: %w", id.String(), err)
	}

	return &airline, nil
}

func (r *airlineRepository) FindAll(ctx context.Context) ([]*entity.Airline, error) {
	query := `
		SELECT id, name, iata_code, country, fleet_size, founded_year, created_at, updated_at
		FROM airlines
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find airlines", zap.Error(err))
		return nil, fmt.Errorf("find airlines: %w", err)
	}
	defer rows.Close()

	var airlines []*entity.Airline
	for rows.Next() {
		var airline entity.Airline
		err := rows.Scan(
			&airline.ID,
			&airline.Name,
			&airline.IataCode,
			&airline.Country,
			&airline.FleetSize,
			&airline.FoundedYear,
			&airline.CreatedAt,
			&airline.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan airline row", zap.Error(err))
			return nil, fmt.Errorf("scan airline row: %w", err)
		}
		airlines = append(airlines, &airline)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate airline rows: %w", err)
	}

	return airlines, nil
}

// FindExistingIDs reports which of the given airline IDs exist. Used by the
// bulk aircraft pre-check to validate every referenced airline in one query.
func (r *airlineRepository) FindExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	query := `SELECT id FROM airlines WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find existing airline IDs", zap.Error(err))
		return nil, fmt.Errorf("find existing airline IDs: %w", err)
	}
	defer rows.Close()

	existing := make(map[uuid.UUID]bool, len(ids))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan airline ID: %w", err)
		}
		existing[id] = true
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate airline ID rows: %w", err)
	}

	return existing, nil
}

func (r *airlineRepository) Update(ctx context.Context, airline *entity.Airline) error {
	query := `
		UPDATE airlines
		SET name = $2, iata_code = $3, country = $4, fleet_size = $5, founded_year = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		airline.ID,
		airline.Name,
		airline.IataCode,
		airline.Country,
		airline.FleetSize,
		airline.FoundedYear,
		airline.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update airline",
			zap.Error(err),
			zap.String("airline_id", airline.ID.String()),
		)
		return fmt.Errorf("update airline %s: %w", airline.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("airline %s: %w", airline.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *airlineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM airlines WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete airline",
			zap.Error(err),
			zap.String("airline_id", id.String()),
		)
		return fmt.Errorf("delete airline %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("airline %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
