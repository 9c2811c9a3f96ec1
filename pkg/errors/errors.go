package errors

import "fmt"

// HTTPError is a domain error annotated with the HTTP status it maps to.
type HTTPError struct {
	Status  int
	Message string
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) HTTPError {
	return HTTPError{Status: status, Message: message}
}
