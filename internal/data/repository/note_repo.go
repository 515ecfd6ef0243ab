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

type NoteRepository interface {
	WithTx(tx pgx.Tx) NoteRepository
	Create(ctx context.Context, note *entity.Note) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Note, error)
	FindAll(ctx context.Context) ([]*entity.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewNoteRepository(db database.Querier, log *zap.Logger) NoteRepository {
	return &noteRepository{
		db:  db,
		log: log.With(zap.String("repository", "note")),
	}
}

func (r *noteRepository) WithTx(tx pgx.Tx) NoteRepository {
	return &noteRepository{db: tx, log: r.log}
}

const noteColumns = `id, title, content, attachment_path, attachment_name, attachment_size,
	created_at, updated_at`

func scanNote(row pgx.Row) (*entity.Note, error) {
	var note entity.Note
	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.AttachmentPath,
		&note.AttachmentName,
		&note.AttachmentSize,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	query := `
		INSERT INTO notes (id, title, content, attachment_path, attachment_name, attachment_size,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		note.ID,
		note.Title,
		note.Content,
		note.AttachmentPath,
		note.AttachmentName,
		note.AttachmentSize,
		note.CreatedAt,
		note.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create note", zap.Error(err), zap.String("title", note.Title))
		return fmt.Errorf("create note %s: %w", note.Title, err)
	}

	return nil
}

func (r *noteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`

	note, err := scanNote(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find note by ID", zap.Error(err), zap.String("note_id", id.String()))
		return nil, fmt.Errorf("find note by ID %s: %w", id.String(), err)
	}

	return note, nil
}

func (r *noteRepository) FindAll(ctx context.Context) ([]*entity.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find notes", zap.Error(err))
		return nil, fmt.Errorf("find notes: %w", err)
	}
	defer rows.Close()

	var notes []*entity.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			r.log.Error("Failed to scan note row", zap.Error(err))
			return nil, fmt.Errorf("scan note row: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate note rows: %w", err)
	}

	return notes, nil
}

func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM notes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete note", zap.Error(err), zap.String("note_id", id.String()))
		return fmt.Errorf("delete note %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
