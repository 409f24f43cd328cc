package validation

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/person-api/internal/errs"
)

type address struct {
	City string `json:"city" validate:"required,min=1,max=50"`
}

type sampleRequest struct {
	ID      int      `param:"id" json:"-" validate:"gt=0"`
	Name    string   `query:"name" json:"-" validate:"omitempty,min=1,max=5"`
	Limit   *int     `query:"limit" json:"-"`
	Agent   string   `header:"User-Agent" json:"-"`
	Ads     string   `cookie:"ads" json:"-"`
	Age     int      `json:"age" validate:"required,gt=0,lte=115"`
	Email   string   `json:"email" validate:"required,email"`
	Address *address `json:"address" validate:"required"`
}

func (r *sampleRequest) Validate() error {
	return Struct(r)
}

type formRequest struct {
	Username string                `form:"username" validate:"required,max=20"`
	Upload   *multipart.FileHeader `file:"upload" validate:"required"`
}

func (r *formRequest) Validate() error {
	return Struct(r)
}

func newContext(req *http.Request, paramNames, paramValues []string) echo.Context {
	e := echo.New()
	c := e.NewContext(req, httptest.NewRecorder())
	if len(paramNames) > 0 {
		c.SetParamNames(paramNames...)
		c.SetParamValues(paramValues...)
	}
	return c
}

func jsonRequest(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok, "expected *errs.HTTPError, got %T: %v", err, err)
	return httpErr
}

func findField(fieldErrors []errs.FieldError, field string) (errs.FieldError, bool) {
	for _, fe := range fieldErrors {
		if fe.Field == field {
			return fe, true
		}
	}
	return errs.FieldError{}, false
}

func TestBindAndValidateAllSources(t *testing.T) {
	req := jsonRequest("/items/7?name=ana&limit=3", `{"age":30,"email":"a@b.com","address":{"city":"Lima"}}`)
	req.Header.Set("User-Agent", "tests/1.0")
	req.AddCookie(&http.Cookie{Name: "ads", Value: "yes"})
	c := newContext(req, []string{"id"}, []string{"7"})

	var payload sampleRequest
	require.NoError(t, BindAndValidate(c, &payload))

	assert.Equal(t, 7, payload.ID)
	assert.Equal(t, "ana", payload.Name)
	require.NotNil(t, payload.Limit)
	assert.Equal(t, 3, *payload.Limit)
	assert.Equal(t, "tests/1.0", payload.Agent)
	assert.Equal(t, "yes", payload.Ads)
	assert.Equal(t, 30, payload.Age)
	assert.Equal(t, "Lima", payload.Address.City)
}

func TestBindAndValidateOptionalSourcesStayEmpty(t *testing.T) {
	req := jsonRequest("/items/1", `{"age":1,"email":"a@b.com","address":{"city":"Lima"}}`)
	req.Header.Del("User-Agent")
	c := newContext(req, []string{"id"}, []string{"1"})

	var payload sampleRequest
	require.NoError(t, BindAndValidate(c, &payload))

	assert.Empty(t, payload.Name)
	assert.Nil(t, payload.Limit)
	assert.Empty(t, payload.Agent)
	assert.Empty(t, payload.Ads)
}

func TestBindAndValidateConversionErrors(t *testing.T) {
	req := jsonRequest("/items/abc?limit=ten", `{"age":30,"email":"a@b.com","address":{"city":"Lima"}}`)
	c := newContext(req, []string{"id"}, []string{"abc"})

	var payload sampleRequest
	httpErr := asHTTPError(t, BindAndValidate(c, &payload))

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Len(t, httpErr.Errors, 2)

	id, ok := findField(httpErr.Errors, "id")
	require.True(t, ok)
	assert.Equal(t, LocationPath, id.Location)
	assert.Equal(t, "must be a valid integer", id.Error)

	limit, ok := findField(httpErr.Errors, "limit")
	require.True(t, ok)
	assert.Equal(t, LocationQuery, limit.Location)
}

func TestBindAndValidateConstraintErrors(t *testing.T) {
	req := jsonRequest("/items/-1?name=toolongname", `{"age":116,"email":"not-an-email","address":{"city":""}}`)
	c := newContext(req, []string{"id"}, []string{"-1"})

	var payload sampleRequest
	httpErr := asHTTPError(t, BindAndValidate(c, &payload))

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, errs.ValidationFailed, httpErr.Detail)

	expected := map[string]struct{ location, message string }{
		"id":           {LocationPath, "must be greater than 0"},
		"name":         {LocationQuery, "must not exceed 5 characters"},
		"age":          {LocationBody, "must be less than or equal to 115"},
		"email":        {LocationBody, "must be a valid email address"},
		"address.city": {LocationBody, "is required"},
	}
	require.Len(t, httpErr.Errors, len(expected))
	for field, want := range expected {
		fe, ok := findField(httpErr.Errors, field)
		require.True(t, ok, "missing error for %s", field)
		assert.Equal(t, want.location, fe.Location, field)
		assert.Equal(t, want.message, fe.Error, field)
	}
}

func TestBindAndValidateBodyTypeMismatch(t *testing.T) {
	req := jsonRequest("/items/1", `{"age":"thirty","email":"a@b.com"}`)
	c := newContext(req, []string{"id"}, []string{"1"})

	var payload sampleRequest
	httpErr := asHTTPError(t, BindAndValidate(c, &payload))

	// age is reported once, by its type, and address still by its rule.
	require.Len(t, httpErr.Errors, 2)
	assert.Equal(t, errs.FieldError{Field: "age", Location: LocationBody, Error: "must be of type integer"}, httpErr.Errors[0])

	address, ok := findField(httpErr.Errors, "address")
	require.True(t, ok)
	assert.Equal(t, "is required", address.Error)
	assert.Equal(t, "a@b.com", payload.Email)
}

func TestBindAndValidateNestedTypeMismatch(t *testing.T) {
	req := jsonRequest("/items/abc", `{"age":30,"email":"nope","address":{"city":7}}`)
	c := newContext(req, []string{"id"}, []string{"abc"})

	var payload sampleRequest
	httpErr := asHTTPError(t, BindAndValidate(c, &payload))

	require.Len(t, httpErr.Errors, 3)

	city, ok := findField(httpErr.Errors, "address.city")
	require.True(t, ok)
	assert.Equal(t, "must be of type string", city.Error)

	id, ok := findField(httpErr.Errors, "id")
	require.True(t, ok)
	assert.Equal(t, "must be a valid integer", id.Error)

	email, ok := findField(httpErr.Errors, "email")
	require.True(t, ok)
	assert.Equal(t, "must be a valid email address", email.Error)
}

func TestBindAndValidateBodyOfWrongShape(t *testing.T) {
	req := jsonRequest("/items/1", `[1, 2]`)
	c := newContext(req, []string{"id"}, []string{"1"})

	var payload sampleRequest
	httpErr := asHTTPError(t, BindAndValidate(c, &payload))

	body, ok := findField(httpErr.Errors, LocationBody)
	require.True(t, ok)
	assert.Equal(t, LocationBody, body.Location)
	assert.Equal(t, "must be of type object", body.Error)

	for _, fe := range httpErr.Errors {
		assert.NotEmpty(t, fe.Field)
	}
}

func TestBindReportsConversionErrors(t *testing.T) {
	c := newContext(httptest.NewRequest(http.MethodGet, "/items/abc", nil), []string{"id"}, []string{"abc"})

	var payload sampleRequest
	httpErr := asHTTPError(t, Bind(c, &payload))

	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "id", httpErr.Errors[0].Field)
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	req := jsonRequest("/items/1", `{"age":`)
	c := newContext(req, []string{"id"}, []string{"1"})

	var payload sampleRequest
	httpErr := asHTTPError(t, BindAndValidate(c, &payload))

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, LocationBody, httpErr.Errors[0].Location)
}

func TestBindAndValidateUnsupportedMediaType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/items/1", strings.NewReader("age=1"))
	req.Header.Set(echo.HeaderContentType, "application/x-yaml")
	c := newContext(req, []string{"id"}, []string{"1"})

	var payload sampleRequest
	err := BindAndValidate(c, &payload)

	var echoErr *echo.HTTPError
	require.ErrorAs(t, err, &echoErr)
	assert.Equal(t, http.StatusUnsupportedMediaType, echoErr.Code)
}

func TestBindAndValidateMultipartForm(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("username", "miguel2021"))
	part, err := writer.CreateFormFile("upload", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	c := newContext(req, nil, nil)

	var payload formRequest
	require.NoError(t, BindAndValidate(c, &payload))

	assert.Equal(t, "miguel2021", payload.Username)
	require.NotNil(t, payload.Upload)
	assert.Equal(t, "notes.txt", payload.Upload.Filename)
	assert.EqualValues(t, 5, payload.Upload.Size)
}

func TestBindAndValidateMissingFormFields(t *testing.T) {
	form := url.Values{"username": {strings.Repeat("x", 21)}}
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c := newContext(req, nil, nil)

	var payload formRequest
	httpErr := asHTTPError(t, BindAndValidate(c, &payload))

	username, ok := findField(httpErr.Errors, "username")
	require.True(t, ok)
	assert.Equal(t, LocationForm, username.Location)
	assert.Equal(t, "must not exceed 20 characters", username.Error)

	upload, ok := findField(httpErr.Errors, "upload")
	require.True(t, ok)
	assert.Equal(t, LocationForm, upload.Location)
	assert.Equal(t, "is required", upload.Error)
}

func TestBindRejectsNonPointer(t *testing.T) {
	c := newContext(httptest.NewRequest(http.MethodGet, "/", nil), nil, nil)
	assert.Error(t, Bind(c, sampleRequest{}))
}
