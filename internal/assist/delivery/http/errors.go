package http

import (
	"smart-todo-assistant/internal/assist"
	pkgErrors "smart-todo-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Binding errors pass through unchanged; pkg/response renders them as 400.
func (h *handler) mapError(err error) error {
	switch err {
	case assist.ErrEmptyText:
		return pkgErrors.NewHTTPError(400, "text is required")
	case assist.ErrEmptyTitle:
		return pkgErrors.NewHTTPError(400, "title is required")
	default:
		return err
	}
}
