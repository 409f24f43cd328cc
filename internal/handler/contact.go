package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
)

type ContactHandler struct {
	Handler
	contactService *service.ContactService
}

func NewContactHandler(s *server.Server, contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:        NewHandler(s),
		contactService: contactService,
	}
}

// Contact responds with the caller's User-Agent, serialized as null when
// the header is absent.
func (h *ContactHandler) Contact(c echo.Context, req *model.ContactRequest) (*string, error) {
	return h.contactService.Contact(c.Request().Context(), req), nil
}
