package docs

import (
	"mime/multipart"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-openapi/spec"

	"github.com/deppfellow/person-api/internal/errs"
)

var (
	httpErrorType  = reflect.TypeOf(errs.HTTPError{})
	fileHeaderType = reflect.TypeOf((*multipart.FileHeader)(nil))
)

const (
	mimeJSON      = "application/json"
	mimeForm      = "application/x-www-form-urlencoded"
	mimeMultipart = "multipart/form-data"
)

type requestInput struct {
	params   []*spec.Parameter
	consumes []string
	cookies  []string
}

// requestParams turns the fields of a request record into parameters.
func (b *builder) requestParams(record any) requestInput {
	t := reflect.TypeOf(record)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var in requestInput
	var bodyFields []reflect.StructField
	hasForm, hasFile := false, false

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		rules := parseRules(field.Tag.Get("validate"))

		var p *spec.Parameter
		switch {
		case tagName(field, "param") != "":
			p = spec.PathParam(tagName(field, "param"))
		case tagName(field, "query") != "":
			p = spec.QueryParam(tagName(field, "query"))
		case tagName(field, "header") != "":
			p = spec.HeaderParam(tagName(field, "header"))
		case tagName(field, "cookie") != "":
			in.cookies = append(in.cookies, tagName(field, "cookie"))
			continue
		case tagName(field, "form") != "":
			p = spec.FormDataParam(tagName(field, "form"))
			hasForm = true
		case tagName(field, "file") != "":
			p = spec.FileParam(tagName(field, "file"))
			if rules.required {
				p.AsRequired()
			}
			p.WithDescription(field.Tag.Get("description"))
			in.params = append(in.params, p)
			hasFile = true
			continue
		case tagName(field, "json") != "":
			bodyFields = append(bodyFields, field)
			continue
		default:
			continue
		}

		typ, format := primitive(field.Type)
		p.Typed(typ, format)
		if rules.required {
			p.AsRequired()
		}
		p.WithDescription(field.Tag.Get("description"))
		if ex, ok := example(field); ok {
			p.Example = ex
		}
		rules.applyToParam(p, field.Type)

		in.params = append(in.params, p)
	}

	if len(bodyFields) > 0 {
		name := t.Name()
		if len(bodyFields) < countExported(t) {
			name += "Body"
		}
		b.define(name, t, bodyFields)

		body := spec.BodyParam("body", spec.RefProperty("#/definitions/"+name)).AsRequired()
		in.params = append(in.params, body)
		in.consumes = []string{mimeJSON}
	}

	switch {
	case hasFile:
		in.consumes = []string{mimeMultipart}
	case hasForm:
		in.consumes = []string{mimeForm, mimeMultipart}
	}

	return in
}

// schemaFor returns the schema of t, registering struct definitions.
func (b *builder) schemaFor(t reflect.Type) *spec.Schema {
	if t == nil {
		return nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		return b.schemaFor(t.Elem())

	case reflect.Struct:
		if _, ok := b.definitions[t.Name()]; !ok {
			b.define(t.Name(), t, exportedFields(t))
		}
		return spec.RefProperty("#/definitions/" + t.Name())

	case reflect.Slice, reflect.Array:
		return spec.ArrayProperty(b.schemaFor(t.Elem()))

	case reflect.Map:
		if t.Elem().Kind() == reflect.Interface {
			return spec.MapProperty(nil)
		}
		return spec.MapProperty(b.schemaFor(t.Elem()))

	case reflect.Interface:
		return new(spec.Schema)

	default:
		typ, format := primitive(t)
		return new(spec.Schema).Typed(typ, format)
	}
}

// define registers an object definition made of fields.
func (b *builder) define(name string, t reflect.Type, fields []reflect.StructField) {
	// Placeholder first so self-references terminate.
	b.definitions[name] = spec.Schema{}

	schema := new(spec.Schema).Typed("object", "")
	for _, field := range fields {
		wire := tagName(field, "json")
		if wire == "" {
			continue
		}

		rules := parseRules(field.Tag.Get("validate"))

		prop := b.schemaFor(field.Type)
		if field.Type.Kind() != reflect.Struct && (field.Type.Kind() != reflect.Pointer || field.Type.Elem().Kind() != reflect.Struct) {
			if desc := field.Tag.Get("description"); desc != "" {
				prop.WithDescription(desc)
			}
			if ex, ok := example(field); ok {
				prop.WithExample(ex)
			}
			rules.applyToSchema(prop, field.Type)
		}

		schema.SetProperty(wire, *prop)
		if rules.required {
			schema.Required = append(schema.Required, wire)
		}
	}

	b.definitions[name] = *schema
}

// rules are the documented subset of a `validate` tag.
type rules struct {
	required bool
	email    bool
	oneOf    []string

	min, max *float64
	gt, lt   *float64
	gte, lte *float64
	exactLen *float64
}

func parseRules(tag string) rules {
	var r rules
	for _, rule := range strings.Split(tag, ",") {
		name, arg, _ := strings.Cut(rule, "=")
		num := func() *float64 {
			f, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return nil
			}
			return &f
		}

		switch name {
		case "required":
			r.required = true
		case "email":
			r.email = true
		case "oneof":
			r.oneOf = strings.Fields(arg)
		case "min":
			r.min = num()
		case "max":
			r.max = num()
		case "len":
			r.exactLen = num()
		case "gt":
			r.gt = num()
		case "gte":
			r.gte = num()
		case "lt":
			r.lt = num()
		case "lte":
			r.lte = num()
		}
	}
	return r
}

func isString(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.String
}

func enumValues(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func (r rules) applyToParam(p *spec.Parameter, t reflect.Type) {
	if isString(t) {
		if r.min != nil {
			p.WithMinLength(int64(*r.min))
		}
		if r.max != nil {
			p.WithMaxLength(int64(*r.max))
		}
		if r.exactLen != nil {
			p.WithMinLength(int64(*r.exactLen)).WithMaxLength(int64(*r.exactLen))
		}
		if r.email {
			p.Format = "email"
		}
		if len(r.oneOf) > 0 {
			p.WithEnum(enumValues(r.oneOf)...)
		}
		return
	}

	switch {
	case r.gt != nil:
		p.WithMinimum(*r.gt, true)
	case r.gte != nil:
		p.WithMinimum(*r.gte, false)
	case r.min != nil:
		p.WithMinimum(*r.min, false)
	}
	switch {
	case r.lt != nil:
		p.WithMaximum(*r.lt, true)
	case r.lte != nil:
		p.WithMaximum(*r.lte, false)
	case r.max != nil:
		p.WithMaximum(*r.max, false)
	}
}

func (r rules) applyToSchema(s *spec.Schema, t reflect.Type) {
	if isString(t) {
		if r.min != nil {
			s.WithMinLength(int64(*r.min))
		}
		if r.max != nil {
			s.WithMaxLength(int64(*r.max))
		}
		if r.exactLen != nil {
			s.WithMinLength(int64(*r.exactLen)).WithMaxLength(int64(*r.exactLen))
		}
		if r.email {
			s.Format = "email"
		}
		if len(r.oneOf) > 0 {
			s.WithEnum(enumValues(r.oneOf)...)
		}
		return
	}

	switch {
	case r.gt != nil:
		s.WithMinimum(*r.gt, true)
	case r.gte != nil:
		s.WithMinimum(*r.gte, false)
	case r.min != nil:
		s.WithMinimum(*r.min, false)
	}
	switch {
	case r.lt != nil:
		s.WithMaximum(*r.lt, true)
	case r.lte != nil:
		s.WithMaximum(*r.lte, false)
	case r.max != nil:
		s.WithMaximum(*r.max, false)
	}
}

// primitive maps a Go kind to a Swagger type and format.
func primitive(t reflect.Type) (string, string) {
	for t.Kind() == reflect.Pointer {
		if t == fileHeaderType {
			return "file", ""
		}
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		return "boolean", ""
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return "integer", "int64"
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return "integer", "int32"
	case reflect.Float32:
		return "number", "float"
	case reflect.Float64:
		return "number", "double"
	default:
		return "string", ""
	}
}

// example parses the field's `example` tag into the field's type.
func example(field reflect.StructField) (any, bool) {
	raw, ok := field.Tag.Lookup("example")
	if !ok {
		return nil, false
	}

	t := field.Type
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		if v, err := strconv.ParseBool(raw); err == nil {
			return v, true
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return v, true
		}
	case reflect.Float32, reflect.Float64:
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v, true
		}
	case reflect.String:
		return raw, true
	}
	return nil, false
}

func tagName(field reflect.StructField, tag string) string {
	name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
	if name == "-" {
		return ""
	}
	return name
}

func exportedFields(t reflect.Type) []reflect.StructField {
	var fields []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			fields = append(fields, t.Field(i))
		}
	}
	return fields
}

func countExported(t reflect.Type) int {
	return len(exportedFields(t))
}
