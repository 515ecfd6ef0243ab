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

type PassengerRepository interface {
	WithTx(tx pgx.Tx) PassengerRepository
	Create(ctx context.Context, passenger *entity.Passenger) error
	CreateBatch(ctx context.Context, passengers []*entity.Passenger) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error)
	FindByEmail(ctx context.Context, email string) (*entity.Passenger, error)
	FindByIdentityNumber(ctx context.Context, identityNumber string) (*entity.Passenger, error)
	FindByPhone(ctx context.Context, phone string) (*entity.Passenger, error)
	FindExistingEmails(ctx context.Context, emails []string) ([]string, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Passenger, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, passenger *entity.Passenger) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type passengerRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPassengerRepository(db database.Querier, log *zap.Logger) PassengerRepository {
	return &passengerRepository{
		db:  db,
		log: log.With(zap.String("repository", "passenger")),
	}
}

func (r *passengerRepository) WithTx(tx pgx.Tx) PassengerRepository {
	return &passengerRepository{db: tx, log: r.log}
}

const passengerColumns = `id, full_name, passport_number, identity_number, phone, email,
	nationality, created_at, updated_at`

func scanPassenger(row pgx.Row) (*entity.Passenger, error) {
	var passenger entity.Passenger
	err := row.Scan(
		&passenger.ID,
		&passenger.FullName,
		&passenger.PassportNumber,
		&passenger.IdentityNumber,
		&passenger.Phone,
		&passenger.Email,
		&passenger.Nationality,
		&passenger.CreatedAt,
		&passenger.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &passenger, nil
}

func (r *passengerRepository) Create(ctx context.Context, passenger *entity.Passenger) error {
	query := `
		INSERT INTO passengers (id, full_name, passport_number, identity_number, phone, email,
		                        nationality, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		passenger.ID,
		passenger.FullName,
		passenger.PassportNumber,
		passenger.IdentityNumber,
		passenger.Phone,
		passenger.Email,
		passenger.Nationality,
		passenger.CreatedAt,
		passenger.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create passenger",
			zap.Error(err),
			zap.String("full_name", passenger.FullName),
		)
		return fmt.Errorf("create passenger %s: %w", passenger.FullName, err)
	}

	return nil
}

// CreateBatch inserts passengers in order and stops at the first failure.
// Callers run it inside a transaction so a partial batch never survives.
func (r *passengerRepository) CreateBatch(ctx context.Context, passengers []*entity.Passenger) error {
	for _, p := range passengers {
		if err := r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *passengerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error) {
	query := `SELECT ` + passengerColumns + ` FROM passengers WHERE id = $1`

	passenger, err := scanPassenger(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find passenger by ID",
			zap.Error(err),
			zap.String("passenger_id", id.String()),
		)
		return nil, fmt.Errorf("find passenger by ID %s: %w", id.String(), err)
	}

	return passenger, nil
}

func (r *passengerRepository) FindByEmail(ctx context.Context, email string) (*entity.Passenger, error) {
	return r.findByField(ctx, "email", email)
}

func (r *passengerRepository) FindByIdentityNumber(ctx context.Context, identityNumber string) (*entity.Passenger, error) {
	return r.findByField(ctx, "identity_number", identityNumber)
}

func (r *passengerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Passenger, error) {
	return r.findByField(ctx, "phone", phone)
}

func (r *passengerRepository) findByField(ctx context.Context, field, value string) (*entity.Passenger, error) {
	query := `SELECT ` + passengerColumns + ` FROM passengers WHERE ` + field + ` = $1 LIMIT 1`

	passenger, err := scanPassenger(r.db.QueryRow(ctx, query, value))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find passenger",
			zap.Error(err),
			zap.String("field", field),
		)
		return nil, fmt.Errorf("find passenger by %s: %w", field, err)
	}

	return passenger, nil
}

// FindExistingEmails returns the subset of the given emails already used by
// a passenger record.
func (r *passengerRepository) FindExistingEmails(ctx context.Context, emails []string) ([]string, error) {
	query := `SELECT email FROM passengers WHERE email = ANY($1)`

	rows, err := r.db.Query(ctx, query, emails)
	if err != nil {
		r.log.Error("Failed to find existing passenger emails", zap.Error(err))
		return nil, fmt.Errorf("find existing passenger emails: %w", err)
	}
	defer rows.Close()

	var existing []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan passenger email: %w", err)
		}
		existing = append(existing, email)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate passenger email rows: %w", err)
	}

	return existing, nil
}

func (r *passengerRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Passenger, error) {
	query := `
		SELECT ` + passengerColumns + `
		FROM passengers
		ORDER BY full_name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find passengers", zap.Error(err))
		return nil, fmt.Errorf("find passengers: %w", err)
	}
	defer rows.Close()

	var passengers []*entity.Passenger
	for rows.Next() {
		passenger, err := scanPassenger(rows)
		if err != nil {
			r.log.Error("Failed to scan passenger row", zap.Error(err))
			return nil, fmt.Errorf("scan passenger row: %w", err)
		}
		passengers = append(passengers, passenger)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate passenger rows: %w", err)
	}

	return passengers, nil
}

func (r *passengerRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM passengers`).Scan(&count); err != nil {
		r.log.Error("Failed to count passengers", zap.Error(err))
		return 0, fmt.Errorf("count passengers: %w", err)
	}
	return count, nil
}

func (r *passengerRepository) Update(ctx context.Context, passenger *entity.Passenger) error {
	query := `
		UPDATE passengers
		SET full_name = $2, passport_number = $3, identity_number = $4, phone = $5,
		    email = $6, nationality = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		passenger.ID,
		passenger.FullName,
		passenger.PassportNumber,
		passenger.IdentityNumber,
		passenger.Phone,
		passenger.Email,
		passenger.Nationality,
		passenger.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update passenger",
			zap.Error(err),
			zap.String("passenger_id", passenger.ID.String()),
		)
		return fmt.Errorf("update passenger %s: %w", passenger.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("passenger %s: %w", passenger.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *passengerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM passengers WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete passenger",
			zap.Error(err),
			zap.String("passenger_id", id.String()),
		)
		return fmt.Errorf("delete passenger %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("passenger %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
