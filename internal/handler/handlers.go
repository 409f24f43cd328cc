package handler

import (
	"github.com/deppfellow/person-api/internal/docs"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
)

// Handlers groups all HTTP handlers.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Home    *HomeHandler
	Person  *PersonHandler
	Auth    *AuthHandler
	Contact *ContactHandler
	Image   *ImageHandler
}

func NewHandlers(s *server.Server, services *service.Services, registry *docs.Registry) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s, registry),
		Home:    NewHomeHandler(s),
		Person:  NewPersonHandler(s, services.Person),
		Auth:    NewAuthHandler(s, services.Auth),
		Contact: NewContactHandler(s, services.Contact),
		Image:   NewImageHandler(s, services.Image),
	}
}
