package response

import (
	"time"

	"airline-ops/internal/data/entity"
)

type NoteResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AttachmentName *string   `json:"attachment_name,omitempty"`
	AttachmentSize *int64    `json:"attachment_size,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func NoteToResponse(note *entity.Note) NoteResponse {
	return NoteResponse{
		ID:             note.ID.String(),
		Title:          note.Title,
		Content:        note.Content,
		AttachmentName: note.AttachmentName,
		AttachmentSize: note.AttachmentSize,
		CreatedAt:      note.CreatedAt,
	}
}
