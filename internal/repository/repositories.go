package repository

import (
	"github.com/deppfellow/person-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Persons *PersonRepository
}

// NewRepositories constructs the repository container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Persons: NewPersonRepository(s.Logger, DefaultPersonIDs...),
	}
}
