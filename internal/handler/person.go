package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
)

type PersonHandler struct {
	Handler
	personService *service.PersonService
}

func NewPersonHandler(s *server.Server, personService *service.PersonService) *PersonHandler {
	return &PersonHandler{
		Handler:       NewHandler(s),
		personService: personService,
	}
}

func (h *PersonHandler) CreatePerson(c echo.Context, person *model.Person) (model.PersonOutput, error) {
	return h.personService.Create(c.Request().Context(), person), nil
}

func (h *PersonHandler) ShowPerson(c echo.Context, query *model.PersonDetailQuery) (map[string]string, error) {
	return h.personService.DetailByQuery(c.Request().Context(), query), nil
}

func (h *PersonHandler) ShowPersonByID(c echo.Context, path *model.PersonIDPath) (map[string]string, error) {
	return h.personService.DetailByID(c.Request().Context(), path.PersonID)
}

func (h *PersonHandler) UpdatePerson(c echo.Context, req *model.UpdatePersonRequest) (map[string]any, error) {
	return h.personService.Update(c.Request().Context(), req)
}
