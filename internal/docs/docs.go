// Package docs builds the API's Swagger 2.0 document from the request and
// response records each route is registered with.
//
// Parameters are derived from the same source tags the binder reads
// (param, query, header, form, file, json) and constraints from the
// `validate` tags the validator enforces, so the document cannot drift
// from what the server accepts.
package docs

import (
	"encoding/json"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-openapi/spec"
)

// Operation describes one route.
type Operation struct {
	Method      string
	Path        string
	Summary     string
	Description string
	Tags        []string

	// Status is the success status code.
	Status int

	// Request is a pointer to a zero request record, or nil when the route
	// takes no input.
	Request any

	// Response is a zero value of the success payload.
	Response any

	// Errors lists error statuses the route can return besides 422.
	Errors []int
}

// Registry collects operations and renders them as one document.
type Registry struct {
	title       string
	version     string
	description string

	mu  sync.RWMutex
	ops []Operation
}

func NewRegistry(title, version, description string) *Registry {
	return &Registry{
		title:       title,
		version:     version,
		description: description,
	}
}

// Add registers op.
func (r *Registry) Add(op Operation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
}

// Operations returns a copy of the registered operations.
func (r *Registry) Operations() []Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Operation(nil), r.ops...)
}

// Swagger builds the document for every registered operation.
func (r *Registry) Swagger() *spec.Swagger {
	b := newBuilder()

	for _, op := range r.Operations() {
		b.addOperation(op)
	}

	return &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger: "2.0",
			Info: &spec.Info{
				InfoProps: spec.InfoProps{
					Title:       r.title,
					Version:     r.version,
					Description: r.description,
				},
			},
			Consumes:    []string{"application/json"},
			Produces:    []string{"application/json"},
			Paths:       &spec.Paths{Paths: b.paths},
			Definitions: b.definitions,
			Tags:        b.tags(),
		},
	}
}

// JSON renders the document.
func (r *Registry) JSON() ([]byte, error) {
	return json.MarshalIndent(r.Swagger(), "", "  ")
}

type builder struct {
	paths       map[string]spec.PathItem
	definitions spec.Definitions
	tagNames    map[string]struct{}
}

func newBuilder() *builder {
	return &builder{
		paths:       map[string]spec.PathItem{},
		definitions: spec.Definitions{},
		tagNames:    map[string]struct{}{},
	}
}

func (b *builder) tags() []spec.Tag {
	names := make([]string, 0, len(b.tagNames))
	for name := range b.tagNames {
		names = append(names, name)
	}
	sort.Strings(names)

	tags := make([]spec.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, spec.NewTag(name, "", nil))
	}
	return tags
}

func (b *builder) addOperation(op Operation) {
	path := SwaggerPath(op.Path)

	o := spec.NewOperation(operationID(op.Method, path)).
		WithSummary(op.Summary).
		WithTags(op.Tags...)

	for _, tag := range op.Tags {
		b.tagNames[tag] = struct{}{}
	}

	description := op.Description
	hasInput := false

	if op.Request != nil {
		in := b.requestParams(op.Request)
		for _, p := range in.params {
			o.AddParam(p)
		}
		if len(in.consumes) > 0 {
			o.WithConsumes(in.consumes...)
		}
		if len(in.cookies) > 0 {
			// Swagger 2.0 has no cookie parameters.
			description = strings.TrimSpace(description + "\n\nOptional cookies: `" + strings.Join(in.cookies, "`, `") + "`.")
		}
		hasInput = len(in.params) > 0 || len(in.cookies) > 0
	}

	o.WithDescription(description)

	status := op.Status
	if status == 0 {
		status = http.StatusOK
	}
	o.RespondsWith(status, spec.NewResponse().
		WithDescription(http.StatusText(status)).
		WithSchema(b.schemaFor(reflect.TypeOf(op.Response))))

	errorStatuses := op.Errors
	if hasInput {
		errorStatuses = append(errorStatuses, http.StatusUnprocessableEntity)
	}
	for _, code := range errorStatuses {
		o.RespondsWith(code, spec.NewResponse().
			WithDescription(http.StatusText(code)).
			WithSchema(b.schemaFor(httpErrorType)))
	}

	item := b.paths[path]
	switch op.Method {
	case http.MethodGet:
		item.Get = o
	case http.MethodPost:
		item.Post = o
	case http.MethodPut:
		item.Put = o
	case http.MethodPatch:
		item.Patch = o
	case http.MethodDelete:
		item.Delete = o
	case http.MethodHead:
		item.Head = o
	case http.MethodOptions:
		item.Options = o
	}
	b.paths[path] = item
}

// SwaggerPath converts an Echo route ("/person/:person_id") to Swagger
// notation ("/person/{person_id}").
func SwaggerPath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

func operationID(method, path string) string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(method))

	for _, seg := range strings.Split(path, "/") {
		seg = strings.Trim(seg, "{}")
		for _, word := range strings.FieldsFunc(seg, func(r rune) bool { return r == '_' || r == '-' }) {
			sb.WriteString(strings.ToUpper(word[:1]) + word[1:])
		}
	}
	return sb.String()
}
