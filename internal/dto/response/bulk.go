package response

// BulkCreateResponse reports an atomic batch insert: everything in Created
// was committed together.
type BulkCreateResponse[T any] struct {
	Created   []T   `json:"created"`
	Count     int   `json:"count"`
	ElapsedMS int64 `json:"elapsed_ms"`
}

func NewBulkCreateResponse[T any](created []T, elapsedMS int64) *BulkCreateResponse[T] {
	return &BulkCreateResponse[T]{
		Created:   created,
		Count:     len(created),
		ElapsedMS: elapsedMS,
	}
}
