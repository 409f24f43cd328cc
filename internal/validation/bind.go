package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/errs"
)

// Request part names reported in FieldError.Location.
const (
	LocationPath   = "path"
	LocationQuery  = "query"
	LocationHeader = "header"
	LocationCookie = "cookie"
	LocationForm   = "form"
	LocationBody   = "body"
)

type source struct {
	tag      string
	location string
	lookup   func(c echo.Context, name string) (string, bool)
}

var sources = []source{
	{tag: "param", location: LocationPath, lookup: func(c echo.Context, name string) (string, bool) {
		v := c.Param(name)
		return v, v != ""
	}},
	{tag: "query", location: LocationQuery, lookup: func(c echo.Context, name string) (string, bool) {
		values, ok := c.QueryParams()[name]
		if !ok || len(values) == 0 {
			return "", false
		}
		return values[0], true
	}},
	{tag: "header", location: LocationHeader, lookup: func(c echo.Context, name string) (string, bool) {
		values := c.Request().Header.Values(name)
		if len(values) == 0 {
			return "", false
		}
		return values[0], true
	}},
	{tag: "cookie", location: LocationCookie, lookup: func(c echo.Context, name string) (string, bool) {
		cookie, err := c.Cookie(name)
		if err != nil {
			return "", false
		}
		return cookie.Value, true
	}},
}

var fileHeaderType = reflect.TypeOf((*multipart.FileHeader)(nil))

// BindAndValidate binds request data into payload and validates it.
//
// payload must be a pointer to a struct. Bind and constraint failures are
// returned together as a 422 *errs.HTTPError listing every offending field;
// a field that failed to bind is not reported again by its constraints.
func BindAndValidate(c echo.Context, payload Validatable) error {
	bindErrors, err := bind(c, payload)
	if err != nil {
		return err
	}

	fieldErrors := bindErrors
	if err := payload.Validate(); err != nil {
		constraintErrors, ok := extractValidationError(payload, err)
		if !ok {
			return err
		}
		fieldErrors = mergeFieldErrors(bindErrors, constraintErrors)
	}

	if len(fieldErrors) > 0 {
		return errs.ValidationError(fieldErrors...)
	}

	return nil
}

// Bind fills payload from the request body (JSON or form) and from the
// path, query, header, cookie and file fields it declares.
func Bind(c echo.Context, payload any) error {
	fieldErrors, err := bind(c, payload)
	if err != nil {
		return err
	}
	if len(fieldErrors) > 0 {
		return errs.ValidationError(fieldErrors...)
	}
	return nil
}

// bind returns conversion failures as field errors and aborts with err only
// when the request cannot be read at all.
func bind(c echo.Context, payload any) ([]errs.FieldError, error) {
	v := reflect.ValueOf(payload)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("validation: payload must be a pointer to a struct, got %T", payload)
	}

	fieldErrors, err := bindBody(c, payload)
	if err != nil {
		return nil, err
	}

	v = v.Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		if name := tagName(field, "file"); name != "" {
			bindFile(c, v.Field(i), name)
			continue
		}

		for _, src := range sources {
			name := tagName(field, src.tag)
			if name == "" {
				continue
			}

			raw, ok := src.lookup(c, name)
			if !ok {
				break
			}

			if err := setField(v.Field(i), raw); err != nil {
				fieldErrors = append(fieldErrors, errs.FieldError{
					Field:    name,
					Location: src.location,
					Error:    err.Error(),
				})
			}
			break
		}
	}

	return fieldErrors, nil
}

// bindBody decodes JSON and form bodies with Echo's binder.
//
// A type mismatch is reported as a field error and binding goes on, since
// encoding/json still fills the remaining fields. A body that cannot be
// parsed aborts with a 422, and other Echo errors (415) pass through.
func bindBody(c echo.Context, payload any) ([]errs.FieldError, error) {
	err := (&echo.DefaultBinder{}).BindBody(c, payload)
	if err == nil {
		return nil, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			// The document itself has the wrong shape, e.g. an array.
			field = LocationBody
		}
		return []errs.FieldError{{
			Field:    field,
			Location: LocationBody,
			Error:    "must be of type " + kindName(typeErr.Type),
		}}, nil
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) && echoErr.Code != http.StatusBadRequest {
		return nil, err
	}

	return nil, errs.ValidationError(errs.FieldError{
		Field:    LocationBody,
		Location: LocationBody,
		Error:    "must be a valid document",
	})
}

// mergeFieldErrors appends constraint errors for fields that bound cleanly.
func mergeFieldErrors(bindErrors, constraintErrors []errs.FieldError) []errs.FieldError {
	reported := make(map[string]struct{}, len(bindErrors))
	for _, fe := range bindErrors {
		reported[fe.Field] = struct{}{}
	}

	merged := append([]errs.FieldError(nil), bindErrors...)
	for _, fe := range constraintErrors {
		if _, ok := reported[fe.Field]; ok {
			continue
		}
		merged = append(merged, fe)
	}
	return merged
}

func bindFile(c echo.Context, field reflect.Value, name string) {
	if field.Type() != fileHeaderType {
		return
	}

	// A missing file, or a request that is not multipart, leaves the field
	// nil for the `required` rule to report.
	fh, err := c.FormFile(name)
	if err != nil {
		return
	}
	field.Set(reflect.ValueOf(fh))
}

// setField converts raw to field's kind and stores it.
func setField(field reflect.Value, raw string) error {
	if field.Kind() == reflect.Pointer {
		ptr := reflect.New(field.Type().Elem())
		if err := setField(ptr.Elem(), raw); err != nil {
			return err
		}
		field.Set(ptr)
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return errors.New("must be a valid integer")
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return errors.New("must be a valid non-negative integer")
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return errors.New("must be a valid number")
		}
		field.SetFloat(f)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.New("must be a valid boolean")
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("cannot bind into %s", field.Type())
	}

	return nil
}

// kindName names t the way a JSON client would think of it.
func kindName(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}

	switch t.Kind() {
	case reflect.Pointer:
		return kindName(t.Elem())
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
