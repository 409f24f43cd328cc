package service

import (
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/server"
)

type Services struct {
	Person  *PersonService
	Auth    *AuthService
	Contact *ContactService
	Image   *ImageService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Person:  NewPersonService(s, repos.Persons),
		Auth:    NewAuthService(s),
		Contact: NewContactService(s),
		Image:   NewImageService(s),
	}
}
