package repository

import (
	"context"

	"github.com/rs/zerolog"
)

// DefaultPersonIDs are the persons known to exist.
var DefaultPersonIDs = []int{1, 2, 3, 4, 5}

// PersonRepository answers membership questions about a fixed id list.
type PersonRepository struct {
	logger *zerolog.Logger
	ids    []int
}

// NewPersonRepository copies ids so later changes by the caller cannot
// alter membership.
func NewPersonRepository(logger *zerolog.Logger, ids ...int) *PersonRepository {
	return &PersonRepository{
		logger: logger,
		ids:    append([]int(nil), ids...),
	}
}

// Exists reports whether id is in the list.
func (r *PersonRepository) Exists(ctx context.Context, id int) bool {
	for _, known := range r.ids {
		if known == id {
			return true
		}
	}

	r.logger.Debug().Int("person_id", id).Msg("person not found")
	return false
}
