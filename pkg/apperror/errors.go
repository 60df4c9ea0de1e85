package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so the transport layer can map it without
// inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidRange
	KindConflict
	KindConstraintViolation
	KindRoomInUse
	KindNotFound
	KindForbidden
	KindUnauthorized
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRange:
		return "INVALID_RANGE"
	case KindConflict:
		return "CONFLICT"
	case KindConstraintViolation:
		return "CONSTRAINT_VIOLATION"
	case KindRoomInUse:
		return "ROOM_IN_USE"
	case KindNotFound:
		return "NOT_FOUND"
	case KindForbidden:
		return "FORBIDDEN"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindValidation:
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// Error is the error type returned by the usecase layer.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error

	// Status overrides the default HTTP status of Kind when non-zero.
	Status int
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (caused by: %v)", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status code the error should be reported with.
func (e *Error) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Kind {
	case KindInvalidRange, KindValidation:
		return http.StatusBadRequest
	case KindConflict, KindRoomInUse:
		return http.StatusConflict
	case KindConstraintViolation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func InvalidRange(message string) *Error {
	return New(KindInvalidRange, message)
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

func RoomInUse(message string) *Error {
	return New(KindRoomInUse, message)
}

func NotFound(resource string) *Error {
	return New(KindNotFound, fmt.Sprintf("%s not found", resource))
}

func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// ConstraintViolation reports a write rejected by a storage constraint.
// status is the HTTP status the rejection is equivalent to.
func ConstraintViolation(err error, message string, status int) *Error {
	return &Error{Kind: KindConstraintViolation, Message: message, Err: err, Status: status}
}

func Internal(err error, message string) *Error {
	return Wrap(err, KindInternal, message)
}

// KindOf returns the Kind of the first *Error in err's chain, or
// KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// As is a shorthand for errors.As with *Error.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}
