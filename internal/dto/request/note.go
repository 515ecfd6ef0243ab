package request

// CreateNoteRequest is parsed from multipart form fields; the optional
// attachment travels as the "attachment" file part.
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}
