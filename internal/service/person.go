package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/server"
)

// PersonNotFound is the detail returned for an unknown person id.
const PersonNotFound = "this person doesn't exist"

// NullKey keys the detail mapping when no name was given.
const NullKey = "null"

type PersonService struct {
	server  *server.Server
	persons *repository.PersonRepository
}

func NewPersonService(s *server.Server, persons *repository.PersonRepository) *PersonService {
	return &PersonService{
		server:  s,
		persons: persons,
	}
}

// Create returns the person without its password.
func (s *PersonService) Create(ctx context.Context, person *model.Person) model.PersonOutput {
	zerolog.Ctx(ctx).Debug().
		Str("first_name", person.FirstName).
		Int("age", person.Age).
		Msg("person accepted")

	return person.Output()
}

// DetailByQuery maps name to age.
func (s *PersonService) DetailByQuery(ctx context.Context, query *model.PersonDetailQuery) map[string]string {
	key := query.Name
	if key == "" {
		key = NullKey
	}
	return map[string]string{key: query.Age}
}

// DetailByID confirms that id is a known person.
func (s *PersonService) DetailByID(ctx context.Context, id int) (map[string]string, error) {
	if !s.persons.Exists(ctx, id) {
		return nil, errs.NewNotFoundError(PersonNotFound)
	}
	return map[string]string{strconv.Itoa(id): "It exists!"}, nil
}

// Update merges the person (without password) and location into one
// mapping. Location keys win on collision.
func (s *PersonService) Update(ctx context.Context, req *model.UpdatePersonRequest) (map[string]any, error) {
	result, err := toMap(req.Person.Output())
	if err != nil {
		return nil, fmt.Errorf("failed to map person: %w", err)
	}

	location, err := toMap(req.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to map location: %w", err)
	}

	for k, v := range location {
		result[k] = v
	}

	zerolog.Ctx(ctx).Debug().
		Int("person_id", req.PersonID).
		Int("fields", len(result)).
		Msg("person updated")

	return result, nil
}

// toMap flattens a record into a map keyed by its json tag names.
func toMap(record any) (map[string]any, error) {
	out := map[string]any{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &out,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(record); err != nil {
		return nil, err
	}

	return out, nil
}
