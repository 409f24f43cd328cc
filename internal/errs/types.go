package errs

import "strings"

// FieldError is a single field-level validation failure.
//
//	{ "field": "person.age", "location": "body", "error": "must be greater than 0" }
type FieldError struct {
	// Field is the wire name of the field, dotted for nested body records.
	Field string `json:"field"`

	// Location is the request part the field was read from
	// (path, query, header, cookie, form or body).
	Location string `json:"location"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type written to API responses.
type HTTPError struct {
	Code   string       `json:"code"`
	Detail string       `json:"detail"`
	Status int          `json:"status"`
	Errors []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Detail
}

// Is reports whether target is also an *HTTPError, regardless of its fields.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithDetail returns a copy of e with Detail replaced.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	return &HTTPError{
		Code:   e.Code,
		Detail: detail,
		Status: e.Status,
		Errors: e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts "Bad Request" to "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
