package usecase

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"airline-ops/internal/data/entity"
	"airline-ops/internal/data/repository"
	"airline-ops/internal/dto/request"
	"airline-ops/internal/dto/response"
	"airline-ops/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NoteService stores operational notes with an optional file attachment.
// Attachments land in the configured upload directory under a generated
// name; only metadata goes into the store.
type NoteService interface {
	CreateNote(ctx context.Context, req *request.CreateNoteRequest, attachment *multipart.FileHeader) (*response.NoteResponse, error)
	GetNoteByID(ctx context.Context, noteID string) (*response.NoteResponse, error)
	GetAllNotes(ctx context.Context) ([]response.NoteResponse, error)
	GetAttachmentPath(ctx context.Context, noteID string) (string, string, error)
	DeleteNote(ctx context.Context, noteID string) error
}

type noteService struct {
	noteRepo repository.NoteRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewNoteService(noteRepo repository.NoteRepository, config *utils.Config, log *zap.Logger) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		config:   config,
		log:      log.With(zap.String("service", "note")),
	}
}

func (s *noteService) CreateNote(ctx context.Context, req *request.CreateNoteRequest, attachment *multipart.FileHeader) (*response.NoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create note validation failed", zap.Any("errors", errs))
		return nil, newFieldValidationError(errs)
	}

	now := time.Now()
	note := &entity.Note{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:   req.Title,
		Content: req.Content,
	}

	if attachment != nil {
		maxBytes := s.config.Upload.MaxSizeMB * 1024 * 1024
		if attachment.Size > maxBytes {
			return nil, newFieldValidationError(map[string]string{
				"attachment": fmt.Sprintf("file exceeds the %d MB limit", s.config.Upload.MaxSizeMB),
			})
		}

		storedName, err := s.saveAttachment(attachment, note.ID)
		if err != nil {
			s.log.Error("Failed to save attachment", zap.Error(err), zap.String("filename", attachment.Filename))
			return nil, fmt.Errorf("save attachment: %w", err)
		}

		originalName := attachment.Filename
		size := attachment.Size
		note.AttachmentPath = &storedName
		note.AttachmentName = &originalName
		note.AttachmentSize = &size
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		// Don't leave the file behind if the row never made it.
		if note.AttachmentPath != nil {
			_ = os.Remove(filepath.Join(s.config.Upload.Dir, *note.AttachmentPath))
		}
		s.log.Warn("Create note failed", zap.Error(err), zap.String("title", req.Title))
		return nil, err
	}

	s.log.Info("Note created",
		zap.String("note_id", note.ID.String()),
		zap.Bool("has_attachment", note.AttachmentPath != nil),
	)

	resp := response.NoteToResponse(note)
	return &resp, nil
}

// saveAttachment writes the uploaded file under a name derived from the note
// ID, keeping only the original extension. The client filename never touches
// the filesystem.
func (s *noteService) saveAttachment(attachment *multipart.FileHeader, noteID uuid.UUID) (string, error) {
	if err := os.MkdirAll(s.config.Upload.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := attachment.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	storedName := noteID.String() + filepath.Ext(attachment.Filename)
	dst, err := os.Create(filepath.Join(s.config.Upload.Dir, storedName))
	if err != nil {
		return "", fmt.Errorf("create attachment file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write attachment: %w", err)
	}

	return storedName, nil
}

func (s *noteService) GetNoteByID(ctx context.Context, noteID string) (*response.NoteResponse, error) {
	id, err := parseID("note", noteID)
	if err != nil {
		return nil, err
	}

	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	if note == nil {
		return nil, fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}

	resp := response.NoteToResponse(note)
	return &resp, nil
}

func (s *noteService) GetAllNotes(ctx context.Context) ([]response.NoteResponse, error) {
	notes, err := s.noteRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get notes: %w", err)
	}

	responses := make([]response.NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = response.NoteToResponse(note)
	}

	return responses, nil
}

// GetAttachmentPath returns the on-disk path and the original filename for
// a note's attachment, for the handler to stream back.
func (s *noteService) GetAttachmentPath(ctx context.Context, noteID string) (string, string, error) {
	id, err := parseID("note", noteID)
	if err != nil {
		return "", "", err
	}

	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		return "", "", fmt.Errorf("get note: %w", err)
	}
	if note == nil || note.AttachmentPath == nil {
		return "", "", fmt.Errorf("attachment for note %s: %w", noteID, ErrNotFound)
	}

	return filepath.Join(s.config.Upload.Dir, *note.AttachmentPath), *note.AttachmentName, nil
}

func (s *noteService) DeleteNote(ctx context.Context, noteID string) error {
	id, err := parseID("note", noteID)
	if err != nil {
		return err
	}

	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get note: %w", err)
	}
	if note == nil {
		return fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}

	if err := s.noteRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	if note.AttachmentPath != nil {
		path := filepath.Join(s.config.Upload.Dir, *note.AttachmentPath)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.log.Warn("Failed to remove attachment file", zap.Error(err), zap.String("path", path))
		}
	}

	s.log.Info("Note deleted", zap.String("note_id", noteID))
	return nil
}
