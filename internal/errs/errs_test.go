package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "UNPROCESSABLE_ENTITY", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity)))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"bad request", NewBadRequestError("nope"), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("this person doesn't exist"), http.StatusNotFound, "NOT_FOUND"},
		{"unprocessable", ValidationError(FieldError{Field: "age"}), http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestValidationErrorCarriesFields(t *testing.T) {
	err := ValidationError(
		FieldError{Field: "age", Location: "body", Error: "is required"},
		FieldError{Field: "email", Location: "body", Error: "must be a valid email address"},
	)

	assert.Equal(t, ValidationFailed, err.Error())
	require.Len(t, err.Errors, 2)
	assert.Equal(t, "email", err.Errors[1].Field)
}

func TestHTTPErrorMatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("missing"))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}

func TestWithDetailCopies(t *testing.T) {
	base := NewNotFoundError("base")
	copied := base.WithDetail("other")

	assert.Equal(t, "base", base.Detail)
	assert.Equal(t, "other", copied.Detail)
	assert.Equal(t, base.Status, copied.Status)
}
