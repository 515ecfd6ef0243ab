package adaptor

import (
	"errors"
	"mime/multipart"
	"net/http"

	"airline-ops/internal/dto/request"
	"airline-ops/internal/usecase"
	"airline-ops/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NoteHandler struct {
	service usecase.NoteService
	log     *zap.Logger
}

func NewNoteHandler(service usecase.NoteService, log *zap.Logger) *NoteHandler {
	return &NoteHandler{
		service: service,
		log:     log.With(zap.String("handler", "note")),
	}
}

const maxMultipartMemory = 32 << 20 // 32 MB buffered before spilling to disk

// CreateNote handles POST /api/notes (multipart form: title, content,
// optional "attachment" file part).
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := request.CreateNoteRequest{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	var attachment *multipart.FileHeader
	if r.MultipartForm != nil && len(r.MultipartForm.File["attachment"]) > 0 {
		attachment = r.MultipartForm.File["attachment"][0]
	}

	note, err := h.service.CreateNote(r.Context(), &req, attachment)
	if err != nil {
		respondError(w, h.log, err, "create note")
		return
	}

	utils.ResponseCreated(w, "success", note)
}

// GetAllNotes handles GET /api/notes
func (h *NoteHandler) GetAllNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.service.GetAllNotes(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get notes")
		return
	}

	utils.ResponseSuccess(w, "success", notes)
}

// GetNoteByID handles GET /api/notes/{id}
func (h *NoteHandler) GetNoteByID(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")
	if noteID == "" {
		utils.ResponseBadRequest(w, "Note ID is required", nil)
		return
	}

	note, err := h.service.GetNoteByID(r.Context(), noteID)
	if err != nil {
		respondError(w, h.log, err, "get note by ID")
		return
	}

	utils.ResponseSuccess(w, "success", note)
}

// DownloadAttachment handles GET /api/notes/{id}/attachment
func (h *NoteHandler) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")
	if noteID == "" {
		utils.ResponseBadRequest(w, "Note ID is required", nil)
		return
	}

	path, filename, err := h.service.GetAttachmentPath(r.Context(), noteID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			utils.ResponseNotFound(w, err.Error())
			return
		}
		respondError(w, h.log, err, "download attachment")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	http.ServeFile(w, r, path)
}

// DeleteNote handles DELETE /api/notes/{id}
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")
	if noteID == "" {
		utils.ResponseBadRequest(w, "Note ID is required", nil)
		return
	}

	if err := h.service.DeleteNote(r.Context(), noteID); err != nil {
		respondError(w, h.log, err, "delete note")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
