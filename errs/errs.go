package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel values. Handlers and tests match on these with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrBadRequest    = errors.New("malformed request")
	ErrAlreadyExists = errors.New("already exists")
	ErrDatabaseQuery = errors.New("database query failed")
)

// ApiErr carries the HTTP status a handler error should surface with. The
// Responder maps anything else to a 500.
type ApiErr struct {
	StatusCode int
	err        error
	Cause      error
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{StatusCode: statusCode, err: errors.New(message)}
}

func (e *ApiErr) Error() string {
	return e.err.Error()
}

// Unwrap lets errors.Is see through to the sentinel this ApiErr wraps.
func (e *ApiErr) Unwrap() error {
	return e.err
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: errors.New(message)}
}

func NewUnauthorizedError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: errors.New(message)}
}

// NewNotFoundError reports a missing record. The status is 400, not 404:
// the API has always answered missing records this way and the deployed
// frontend matches on it.
func NewNotFoundError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("%s: %w", message, ErrNotFound),
	}
}

func NewDuplicateError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("%s: %w", message, ErrAlreadyExists),
	}
}

func NewValidationError(field string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("%s is required", field),
	}
}

func NewInternalError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, err: errors.New(message)}
}

// NewDatabaseError wraps a store failure with the operation that hit it.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	if cause != nil && strings.Contains(cause.Error(), "duplicate key") {
		return &ApiErr{
			StatusCode: http.StatusBadRequest,
			err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
			Cause:      cause,
		}
	}
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("failed to %s %s: %w", operation, entity, ErrDatabaseQuery),
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUnauthorized(err error) bool {
	var apiErr *ApiErr
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		return true
	}
	return errors.Is(err, ErrUnauthorized)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
