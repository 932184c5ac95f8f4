package handler

import (
	"github.com/deppfellow/course-apis/internal/server"
	"github.com/deppfellow/course-apis/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Car     *CarHandler
	Brand   *BrandHandler
	Pokemon *PokemonHandler
	Product *ProductHandler
	Auth    *AuthHandler
	File    *FileHandler
	Seed    *SeedHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	h := NewHandler(s)

	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Car:     &CarHandler{Handler: h, cars: services.Car},
		Brand:   &BrandHandler{Handler: h, brands: services.Brand},
		Pokemon: &PokemonHandler{Handler: h, pokemon: services.Pokemon},
		Product: &ProductHandler{Handler: h, products: services.Product},
		Auth:    &AuthHandler{Handler: h, auth: services.Auth},
		File:    &FileHandler{Handler: h, files: services.File},
		Seed:    &SeedHandler{Handler: h, seed: services.Seed},
	}
}
