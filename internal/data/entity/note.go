package entity

type Note struct {
	Base
	Title          string  `db:"title"`
	Content        string  `db:"content"`
	AttachmentPath *string `db:"attachment_path"` // stored filename under the upload dir
	AttachmentName *string `db:"attachment_name"` // original client filename
	AttachmentSize *int64  `db:"attachment_size"`
}
