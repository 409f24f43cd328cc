package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/docs"
	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/model"
)

// routes registers a route on Echo and its operation in the registry in
// one step.
type routes struct {
	echo     *echo.Echo
	registry *docs.Registry
}

func newRoutes(e *echo.Echo, registry *docs.Registry) routes {
	return routes{echo: e, registry: registry}
}

func (r routes) add(op docs.Operation, h echo.HandlerFunc) {
	r.echo.Add(op.Method, op.Path, h)
	r.registry.Add(op)
}

func registerAPIRoutes(r routes, h *handler.Handlers) {
	r.add(docs.Operation{
		Method:   http.MethodGet,
		Path:     "/",
		Summary:  "Home",
		Tags:     []string{"Home"},
		Status:   http.StatusOK,
		Response: map[string]string{},
	}, handler.Handle(h.Home.Handler, h.Home.Home, http.StatusOK))

	r.add(docs.Operation{
		Method:      http.MethodPost,
		Path:        "/person/new",
		Summary:     "Create Person in the app",
		Description: "Saves a person in the app. The response echoes the person without the password.",
		Tags:        []string{"Persons"},
		Status:      http.StatusCreated,
		Request:     &model.Person{},
		Response:    model.PersonOutput{},
	}, handler.Handle(h.Person.Handler, h.Person.CreatePerson, http.StatusCreated))

	r.add(docs.Operation{
		Method:      http.MethodGet,
		Path:        "/person/detail",
		Summary:     "Show a person",
		Description: "Maps the given name to the given age. Without a name the key is \"null\".",
		Tags:        []string{"Persons"},
		Status:      http.StatusOK,
		Request:     &model.PersonDetailQuery{},
		Response:    map[string]string{},
	}, handler.Handle(h.Person.Handler, h.Person.ShowPerson, http.StatusOK))

	r.add(docs.Operation{
		Method:      http.MethodGet,
		Path:        "/person/detail/:person_id",
		Summary:     "Check that a person exists",
		Description: "Known person ids are 1 to 5.",
		Tags:        []string{"Persons"},
		Status:      http.StatusOK,
		Request:     &model.PersonIDPath{},
		Response:    map[string]string{},
		Errors:      []int{http.StatusNotFound},
	}, handler.Handle(h.Person.Handler, h.Person.ShowPersonByID, http.StatusOK))

	r.add(docs.Operation{
		Method:      http.MethodPut,
		Path:        "/person/:person_id",
		Summary:     "Update a person",
		Description: "Merges the person (without password) and the location into one object. Location fields win on a name collision.",
		Tags:        []string{"Persons"},
		Status:      http.StatusAccepted,
		Request:     &model.UpdatePersonRequest{},
		Response:    map[string]any{},
	}, handler.Handle(h.Person.Handler, h.Person.UpdatePerson, http.StatusAccepted))

	r.add(docs.Operation{
		Method:      http.MethodPost,
		Path:        "/login",
		Summary:     "Login",
		Description: "Accepts a username and password from a form and echoes the username.",
		Tags:        []string{"Auth"},
		Status:      http.StatusOK,
		Request:     &model.LoginRequest{},
		Response:    model.LoginOutput{},
	}, handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK))

	r.add(docs.Operation{
		Method:      http.MethodPost,
		Path:        "/contact",
		Summary:     "Contact",
		Description: "Accepts a contact message from a form and responds with the caller's User-Agent, or null.",
		Tags:        []string{"Contact"},
		Status:      http.StatusOK,
		Request:     &model.ContactRequest{},
		Response:    "",
	}, handler.Handle(h.Contact.Handler, h.Contact.Contact, http.StatusOK))

	r.add(docs.Operation{
		Method:      http.MethodPost,
		Path:        "/post-image",
		Summary:     "Upload an image",
		Description: "Reports the file name, declared content type and size in KiB rounded to two decimals.",
		Tags:        []string{"Uploads"},
		Status:      http.StatusOK,
		Request:     &model.ImageUploadRequest{},
		Response:    model.ImageOutput{},
	}, handler.Handle(h.Image.Handler, h.Image.PostImage, http.StatusOK))
}
