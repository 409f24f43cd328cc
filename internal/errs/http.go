package errs

import (
	"net/http"
)

// ValidationFailed is the detail carried by every request validation error.
const ValidationFailed = "Validation failed"

// New creates an HTTPError whose code is derived from the status text.
func New(status int, detail string) *HTTPError {
	return &HTTPError{
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Detail: detail,
		Status: status,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
func NewBadRequestError(detail string) *HTTPError {
	return New(http.StatusBadRequest, detail)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(detail string) *HTTPError {
	return New(http.StatusNotFound, detail)
}

// NewUnprocessableEntityError creates a 422 HTTPError listing the offending
// fields.
func NewUnprocessableEntityError(detail string, errors []FieldError) *HTTPError {
	err := New(http.StatusUnprocessableEntity, detail)
	err.Errors = errors
	return err
}

// NewInternalServerError creates a 500 HTTPError. The detail is the generic
// status text; the real cause is only logged.
func NewInternalServerError() *HTTPError {
	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// ValidationError wraps field errors into the standard 422 response.
func ValidationError(errors ...FieldError) *HTTPError {
	return NewUnprocessableEntityError(ValidationFailed, errors)
}
