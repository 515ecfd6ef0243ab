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

type TerminalRepository interface {
	WithTx(tx pgx.Tx) TerminalRepository
	Create(ctx context.Context, terminal *entity.Terminal) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Terminal, error)
	FindAll(ctx context.Context) ([]*entity.Terminal, error)
	Update(ctx context.Context, terminal *entity.Terminal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type terminalRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewTerminalRepository(db database.Querier, log *zap.Logger) TerminalRepository {
	return &terminalRepository{
		db:  db,
		log: log.With(zap.String("repository", "terminal")),
	}
}

func (r *terminalRepository) WithTx(tx pgx.Tx) TerminalRepository {
	return &terminalRepository{db: tx, log: r.log}
}

func (r *terminalRepository) Create(ctx context.Context, terminal *entity.Terminal) error {
	query := `
		INSERT INTO terminals (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		terminal.ID,
		terminal.Name,
		terminal.CreatedAt,
		terminal.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create terminal", zap.Error(err), zap.String("name", terminal.Name))
		return fmt.Errorf("create terminal %s: %w", terminal.Name, err)
	}

	return nil
}

func (r *terminalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Terminal, error) {
	query := `SELECT id, name, created_at, updated_at FROM terminals WHERE id = $1`

	var terminal entity.Terminal
	err := r.db.QueryRow(ctx, query, id).Scan(
		&terminal.ID,
		&terminal.Name,
		&terminal.CreatedAt,
		&terminal.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find terminal by ID", zap.Error(err), zap.String("terminal_id", id.String()))
		return nil, fmt.Errorf("find terminal by ID %s: %w", id.String(), err)
	}

	return &terminal, nil
}

func (r *terminalRepository) FindAll(ctx context.Context) ([]*entity.Terminal, error) {
	query := `SELECT id, name, created_at, updated_at FROM terminals ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find terminals", zap.Error(err))
		return nil, fmt.Errorf("find terminals: %w", err)
	}
	defer rows.Close()

	var terminals []*entity.Terminal
	for rows.Next() {
		var terminal entity.Terminal
		if err := rows.Scan(&terminal.ID, &terminal.Name, &terminal.CreatedAt, &terminal.UpdatedAt); err != nil {
			r.log.Error("Failed to scan terminal row", zap.Error(err))
			return nil, fmt.Errorf("scan terminal row: %w", err)
		}
		terminals = append(terminals, &terminal)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate terminal rows: %w", err)
	}

	return terminals, nil
}

func (r *terminalRepository) Update(ctx context.Context, terminal *entity.Terminal) error {
	query := `UPDATE terminals SET name = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, terminal.ID, terminal.Name, terminal.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update terminal", zap.Error(err), zap.String("terminal_id", terminal.ID.String()))
		return fmt.Errorf("update terminal %s: %w", terminal.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("terminal %s: %w", terminal.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *terminalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM terminals WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete terminal", zap.Error(err), zap.String("terminal_id", id.String()))
		return fmt.Errorf("delete terminal %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("terminal %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
