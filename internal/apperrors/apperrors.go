package apperrors

import (
	"fmt"
	"net/http"
)

// Kind classifies an application error so the transport layer can map it to
// an HTTP status without inspecting message strings.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindConflict
	KindUnprocessable
	KindPersistence
)

// Error is the error type returned by the service layer. Message is safe to
// show to API clients; Err carries the underlying cause for logs only.
type Error struct {
	Kind    Kind
	Message string
	Detail  map[string]interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to a response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// NotFound reports that a requested entity does not exist.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Validation reports one or more violated field rules.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Conflict reports a uniqueness violation.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Unprocessable reports a violated business rule along with structured
// detail about the offending entities.
func Unprocessable(message string, detail map[string]interface{}) *Error {
	return &Error{Kind: KindUnprocessable, Message: message, Detail: detail}
}

// Persistence wraps an underlying store error. The client-facing message is
// intentionally generic; the cause is kept for logging.
func Persistence(err error) *Error {
	return &Error{Kind: KindPersistence, Message: "An unexpected error occurred.", Err: err}
}
