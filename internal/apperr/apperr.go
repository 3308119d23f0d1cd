package apperr

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Kind string

const (
	KindBadRequest   Kind = "bad_request"
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInternal     Kind = "internal"
)

// Error is the typed error raised by the service layer. The HTTP status is
// decided here, once, instead of in every handler.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string]string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Status: http.StatusBadRequest, Message: message}
}

func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusUnprocessableEntity, Message: message, Fields: fields}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Status: http.StatusConflict, Message: message}
}

func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: "Internal server error", cause: cause}
}

const uniqueViolation = "23505"

// From normalizes any error into a typed *Error. Typed errors pass through
// untouched. gorm's not-found becomes NotFound, a Postgres unique violation
// becomes Conflict so the pre-check race surfaces as 409 rather than 500,
// and everything else is wrapped as Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("Record not found")
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return Conflict("A record with the same unique value already exists")
	}

	return Internal(err)
}
