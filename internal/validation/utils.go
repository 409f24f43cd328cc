package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/deppfellow/person-api/internal/errs"
)

// extractValidationError converts validator errors into field errors.
// ok is false when err did not come from the validator.
func extractValidationError(payload any, err error) (fieldErrors []errs.FieldError, ok bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	root := reflect.TypeOf(payload)
	for root.Kind() == reflect.Pointer {
		root = root.Elem()
	}

	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field:    stripRoot(fe.Namespace()),
			Location: fieldLocation(root, stripRoot(fe.StructNamespace())),
			Error:    message(fe),
		})
	}

	return fieldErrors, true
}

// stripRoot drops the struct type name validator puts in front of every
// namespace: "UpdatePersonRequest.person.age" -> "person.age".
func stripRoot(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return namespace
}

// fieldLocation reports which request part the top-level field of
// structPath was bound from.
func fieldLocation(root reflect.Type, structPath string) string {
	name, _, _ := strings.Cut(structPath, ".")
	// Slice and map elements are reported as Field[0].
	name, _, _ = strings.Cut(name, "[")

	field, found := root.FieldByName(name)
	if !found {
		return LocationBody
	}

	switch {
	case tagName(field, "param") != "":
		return LocationPath
	case tagName(field, "query") != "":
		return LocationQuery
	case tagName(field, "header") != "":
		return LocationHeader
	case tagName(field, "cookie") != "":
		return LocationCookie
	case tagName(field, "form") != "", tagName(field, "file") != "":
		return LocationForm
	default:
		return LocationBody
	}
}

func isString(fe validator.FieldError) bool {
	return fe.Kind() == reflect.String
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		if isString(fe) {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if isString(fe) {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())

	case "gt":
		if isString(fe) {
			return fmt.Sprintf("must be longer than %s characters", fe.Param())
		}
		return fmt.Sprintf("must be greater than %s", fe.Param())

	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())

	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())

	case "lte":
		if isString(fe) {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	case "email":
		return "must be a valid email address"

	case "numeric":
		return "must be numeric"

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s:%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}
