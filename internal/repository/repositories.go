package repository

import (
	"github.com/deppfellow/course-apis/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Car     *CarRepository
	Brand   *BrandRepository
	Pokemon *PokemonRepository
	Product *ProductRepository
	User    *UserRepository
}

// NewRepositories wires every repository to the stores held by s.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Car:     NewCarRepository(),
		Brand:   NewBrandRepository(),
		Pokemon: NewPokemonRepository(s.Mongo.Database),
		Product: NewProductRepository(s.DB.Pool),
		User:    NewUserRepository(s.DB.Pool),
	}
}
