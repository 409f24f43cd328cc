// Package validation binds request records and validates them.
//
// Request records are structs whose fields name the request part they are
// read from (param, query, header, cookie, form, file or json tags) and
// carry their constraints in `validate` tags. Failures are turned into
// field-level errors the client can act on.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by request records that know how to validate
// themselves, usually by calling Struct.
type Validatable interface {
	Validate() error
}

// sourceTags are checked in order when naming a field in error messages.
var sourceTags = []string{"json", "param", "query", "header", "cookie", "form", "file"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(wireName)
	return v
}

// wireName returns the name the client used for fld.
func wireName(fld reflect.StructField) string {
	for _, tag := range sourceTags {
		if name := tagName(fld, tag); name != "" {
			return name
		}
	}
	return ""
}

func tagName(fld reflect.StructField, tag string) string {
	name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
	if name == "-" {
		return ""
	}
	return name
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	return validate.Struct(v)
}
