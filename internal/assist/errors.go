package assist

import "errors"

var (
	ErrEmptyText  = errors.New("text is required")
	ErrEmptyTitle = errors.New("title is required")
)
