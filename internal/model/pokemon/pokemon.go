// Package pokemon holds the pokedex document and its payloads.
package pokemon

import (
	"fmt"
	"strings"

	"github.com/deppfellow/course-apis/internal/model"
	"github.com/deppfellow/course-apis/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pokemon is stored in the "pokemons" collection. Name and No are unique.
type Pokemon struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name string             `bson:"name" json:"name"`
	No   int                `bson:"no" json:"no"`
}

// NormalizeName is how names are stored and looked up.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ------------------------------------------------------------

type CreatePokemonPayload struct {
	Name string `json:"name" validate:"required,min=1"`
	No   int    `json:"no" validate:"required,min=1"`
}

func (p *CreatePokemonPayload) Normalize() {
	p.Name = NormalizeName(p.Name)
}

func (p *CreatePokemonPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type ListPokemonPayload struct {
	model.PaginationQuery
}

func (p *ListPokemonPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// GetPokemonPayload looks a pokemon up by number, ObjectID or name.
type GetPokemonPayload struct {
	Term string `param:"term" json:"-" validate:"required"`
}

func (p *GetPokemonPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type UpdatePokemonPayload struct {
	Term string  `param:"term" json:"-" validate:"required"`
	Name *string `json:"name" validate:"omitempty,min=1"`
	No   *int    `json:"no" validate:"omitempty,min=1"`
}

func (p *UpdatePokemonPayload) Normalize() {
	if p.Name != nil {
		name := NormalizeName(*p.Name)
		p.Name = &name
	}
}

func (p *UpdatePokemonPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// DeletePokemonPayload only accepts a MongoID.
type DeletePokemonPayload struct {
	ID string `param:"id" json:"-"`
}

func (p *DeletePokemonPayload) Validate() error {
	if !validation.IsValidMongoID(p.ID) {
		return fmt.Errorf("%s is not a valid MongoID", p.ID)
	}
	return nil
}

// ------------------------------------------------------------

type SeedPokedexPayload struct {
	Async bool `query:"async"`
}

func (p *SeedPokedexPayload) Validate() error {
	return nil
}

// SeedTaskResponse is returned when a seed is queued instead of run.
type SeedTaskResponse struct {
	TaskID string `json:"task_id"`
}
