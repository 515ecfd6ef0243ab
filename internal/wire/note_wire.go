package wire

import (
	"airline-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireNote(r chi.Router, noteHandler *adaptor.NoteHandler) {
	r.Route("/api/notes", func(r chi.Router) {
		// POST /api/notes - Create note (multipart, optional attachment)
		r.Post("/", noteHandler.CreateNote)

		// GET /api/notes - List notes
		r.Get("/", noteHandler.GetAllNotes)

		// GET /api/notes/{id} - View single note
		r.Get("/{id}", noteHandler.GetNoteByID)

		// GET /api/notes/{id}/attachment - Download attachment
		r.Get("/{id}/attachment", noteHandler.DownloadAttachment)

		// DELETE /api/notes/{id} - Remove note and its attachment
		r.Delete("/{id}", noteHandler.DeleteNote)
	})
}
