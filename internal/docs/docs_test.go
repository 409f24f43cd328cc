package docs

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/go-openapi/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name  string  `json:"name" validate:"required,min=1,max=50" example:"lamp"`
	Color *string `json:"color" validate:"omitempty,oneof=red blue"`
	Count int     `json:"count" validate:"required,gt=0,lte=115" example:"3"`
	Email string  `json:"email" validate:"required,email"`
}

type updateItem struct {
	ID    int    `param:"id" json:"-" validate:"gt=0" description:"Item id"`
	Trace string `header:"X-Trace" json:"-"`
	Ads   string `cookie:"ads" json:"-"`
	Item  item   `json:"item"`
}

type search struct {
	Q string `query:"q" json:"-" validate:"omitempty,min=1,max=5"`
}

type login struct {
	Username string `form:"username" json:"-" validate:"required,max=20"`
}

type upload struct {
	File *multipart.FileHeader `file:"file" json:"-" validate:"required"`
}

func findParam(t *testing.T, op *spec.Operation, in, name string) spec.Parameter {
	t.Helper()
	for _, p := range op.Parameters {
		if p.In == in && p.Name == name {
			return p
		}
	}
	t.Fatalf("parameter %s in %s not found", name, in)
	return spec.Parameter{}
}

func TestSwaggerPath(t *testing.T) {
	assert.Equal(t, "/person/{person_id}", SwaggerPath("/person/:person_id"))
	assert.Equal(t, "/person/detail", SwaggerPath("/person/detail"))
	assert.Equal(t, "/", SwaggerPath("/"))
}

func TestBodyRecordBecomesDefinition(t *testing.T) {
	r := NewRegistry("Test", "1.0", "")
	r.Add(Operation{
		Method:   http.MethodPost,
		Path:     "/items",
		Tags:     []string{"Items"},
		Status:   http.StatusCreated,
		Request:  &item{},
		Response: item{},
	})

	doc := r.Swagger()
	op := doc.Paths.Paths["/items"].Post
	require.NotNil(t, op)

	body := findParam(t, op, "body", "body")
	assert.True(t, body.Required)
	assert.Equal(t, "#/definitions/item", body.Schema.Ref.String())
	assert.Equal(t, []string{"application/json"}, op.Consumes)

	def, ok := doc.Definitions["item"]
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"name", "count", "email"}, def.Required)

	name := def.Properties["name"]
	require.NotNil(t, name.MinLength)
	require.NotNil(t, name.MaxLength)
	assert.EqualValues(t, 1, *name.MinLength)
	assert.EqualValues(t, 50, *name.MaxLength)
	assert.Equal(t, "lamp", name.Example)

	count := def.Properties["count"]
	require.NotNil(t, count.Minimum)
	require.NotNil(t, count.Maximum)
	assert.Equal(t, 0.0, *count.Minimum)
	assert.True(t, count.ExclusiveMinimum)
	assert.Equal(t, 115.0, *count.Maximum)
	assert.False(t, count.ExclusiveMaximum)
	assert.EqualValues(t, 3, count.Example)

	assert.Equal(t, []any{"red", "blue"}, def.Properties["color"].Enum)
	assert.Equal(t, "email", def.Properties["email"].Format)

	_, ok = op.Responses.StatusCodeResponses[http.StatusCreated]
	assert.True(t, ok)
	_, ok = op.Responses.StatusCodeResponses[http.StatusUnprocessableEntity]
	assert.True(t, ok)
	assert.Contains(t, doc.Definitions, "HTTPError")
}

func TestMixedRecord(t *testing.T) {
	r := NewRegistry("Test", "1.0", "")
	r.Add(Operation{
		Method:      http.MethodPut,
		Path:        "/items/:id",
		Description: "Updates an item.",
		Request:     &updateItem{},
		Response:    map[string]any{},
		Errors:      []int{http.StatusNotFound},
	})

	doc := r.Swagger()
	op := doc.Paths.Paths["/items/{id}"].Put
	require.NotNil(t, op)

	id := findParam(t, op, "path", "id")
	assert.True(t, id.Required)
	assert.Equal(t, "integer", id.Type)
	assert.Equal(t, "Item id", id.Description)
	require.NotNil(t, id.Minimum)
	assert.True(t, id.ExclusiveMinimum)

	trace := findParam(t, op, "header", "X-Trace")
	assert.False(t, trace.Required)

	body := findParam(t, op, "body", "body")
	assert.Equal(t, "#/definitions/updateItemBody", body.Schema.Ref.String())
	bodyDef := doc.Definitions["updateItemBody"]
	assert.Len(t, bodyDef.Properties, 1)
	itemProp := bodyDef.Properties["item"]
	assert.Equal(t, "#/definitions/item", itemProp.Ref.String())

	assert.Contains(t, op.Description, "`ads`")

	_, ok := op.Responses.StatusCodeResponses[http.StatusNotFound]
	assert.True(t, ok)
	_, ok = op.Responses.StatusCodeResponses[http.StatusOK]
	assert.True(t, ok)
}

func TestQueryFormAndFileParams(t *testing.T) {
	r := NewRegistry("Test", "1.0", "")
	r.Add(Operation{Method: http.MethodGet, Path: "/search", Request: &search{}, Response: map[string]string{}})
	r.Add(Operation{Method: http.MethodPost, Path: "/login", Request: &login{}, Response: ""})
	r.Add(Operation{Method: http.MethodPost, Path: "/upload", Request: &upload{}, Response: map[string]string{}})

	doc := r.Swagger()

	q := findParam(t, doc.Paths.Paths["/search"].Get, "query", "q")
	assert.False(t, q.Required)
	require.NotNil(t, q.MaxLength)
	assert.EqualValues(t, 5, *q.MaxLength)

	loginOp := doc.Paths.Paths["/login"].Post
	username := findParam(t, loginOp, "formData", "username")
	assert.True(t, username.Required)
	assert.Contains(t, loginOp.Consumes, "application/x-www-form-urlencoded")

	uploadOp := doc.Paths.Paths["/upload"].Post
	file := findParam(t, uploadOp, "formData", "file")
	assert.Equal(t, "file", file.Type)
	assert.True(t, file.Required)
	assert.Equal(t, []string{"multipart/form-data"}, uploadOp.Consumes)
}

func TestOperationWithoutInput(t *testing.T) {
	r := NewRegistry("Test", "1.0", "")
	r.Add(Operation{Method: http.MethodGet, Path: "/", Tags: []string{"Home"}, Response: map[string]string{}})

	doc := r.Swagger()
	op := doc.Paths.Paths["/"].Get
	require.NotNil(t, op)

	assert.Empty(t, op.Parameters)
	assert.Len(t, op.Responses.StatusCodeResponses, 1)
	assert.Equal(t, "get", op.ID)
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, "Home", doc.Tags[0].Name)
}

func TestJSON(t *testing.T) {
	r := NewRegistry("Test", "1.0", "A test API")
	r.Add(Operation{Method: http.MethodPost, Path: "/items", Request: &item{}, Response: item{}})

	data, err := r.JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2.0", decoded["swagger"])
	assert.Contains(t, decoded["paths"], "/items")
	assert.Contains(t, decoded["definitions"], "item")
}
