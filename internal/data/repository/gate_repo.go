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

type GateRepository interface {
	WithTx(tx pgx.Tx) GateRepository
	Create(ctx context.Context, gate *entity.Gate) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Gate, error)
	FindAll(ctx context.Context) ([]*entity.Gate, error)
	FindByTerminalID(ctx context.Context, terminalID uuid.UUID) ([]*entity.Gate, error)
	Update(ctx context.Context, gate *entity.Gate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type gateRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewGateRepository(db database.Querier, log *zap.Logger) GateRepository {
	return &gateRepository{
		db:  db,
		log: log.With(zap.String("repository", "gate")),
	}
}

func (r *gateRepository) WithTx(tx pgx.Tx) GateRepository {
	return &gateRepository{db: tx, log: r.log}
}

func (r *gateRepository) Create(ctx context.Context, gate *entity.Gate) error {
	query := `
		INSERT INTO gates (id, terminal_id, gate_number, status, area_capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		gate.ID,
		gate.TerminalID,
		gate.Number,
		gate.Status,
		gate.AreaCapacity,
		gate.CreatedAt,
		gate.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create gate",
			zap.Error(err),
			zap.String("gate_number", gate.Number),
		)
		return fmt.Errorf("create gate %s: %w", gate.Number, err)
	}

	return nil
}

func (r *gateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Gate, error) {
	query := `
		SELECT id, terminal_id, gate_number, status, area_capacity, created_at, updated_at
		FROM gates
		WHERE id = $1
	`

	var gate entity.Gate
	err := r.db.QueryRow(ctx, query, id).Scan(
		&gate.ID,
		&gate.TerminalID,
		&gate.Number,
		&gate.Status,
		&gate.AreaCapacity,
		&gate.CreatedAt,
		&gate.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find gate by ID", zap.Error(err), zap.String("gate_id", id.String()))
		return nil, fmt.Errorf("find gate by ID %s: %w", id.String(), err)
	}

	return &gate, nil
}

func (r *gateRepository) FindAll(ctx context.Context) ([]*entity.Gate, error) {
	query := `
		SELECT id, terminal_id, gate_number, status, area_capacity, created_at, updated_at
		FROM gates
		ORDER BY gate_number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find gates", zap.Error(err))
		return nil, fmt.Errorf("find gates: %w", err)
	}
	defer rows.Close()

	return scanGates(rows)
}

func (r *gateRepository) FindByTerminalID(ctx context.Context, terminalID uuid.UUID) ([]*entity.Gate, error) {
	query := `
		SELECT id, terminal_id, gate_number, status, area_capacity, created_at, updated_at
		FROM gates
		WHERE terminal_id = $1
		ORDER BY gate_number
	`

	rows, err := r.db.Query(ctx, query, terminalID)
	if err != nil {
		r.log.Error("Failed to find gates by terminal",
			zap.Error(err),
			zap.String("terminal_id", terminalID.String()),
		)
		return nil, fmt.Errorf("find gates by terminal %s: %w", terminalID.String(), err)
	}
	defer rows.Close()

	return scanGates(rows)
}

func scanGates(rows pgx.Rows) ([]*entity.Gate, error) {
	var gates []*entity.Gate
	for rows.Next() {
		var gate entity.Gate
		err := rows.Scan(
			&gate.ID,
			&gate.TerminalID,
			&gate.Number,
			&gate.Status,
			&gate.AreaCapacity,
			&gate.CreatedAt,
			&gate.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan gate row: %w", err)
		}
		gates = append(gates, &gate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gate rows: %w", err)
	}
	return gates, nil
}

func (r *gateRepository) Update(ctx context.Context, gate *entity.Gate) error {
	query := `
		UPDATE gates
		SET terminal_id = $2, gate_number = $3, status = $4, area_capacity = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		gate.ID,
		gate.TerminalID,
		gate.Number,
		gate.Status,
		gate.AreaCapacity,
		gate.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update gate", zap.Error(err), zap.String("gate_id", gate.ID.String()))
		return fmt.Errorf("update gate %s: %w", gate.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("gate %s: %w", gate.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *gateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM gates WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete gate", zap.Error(err), zap.String("gate_id", id.String()))
		return fmt.Errorf("delete gate %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("gate %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
