package handler

import (
	"github.com/deppfellow/course-apis/internal/model/pokemon"
	"github.com/deppfellow/course-apis/internal/service"
	"github.com/labstack/echo/v4"
)

type PokemonHandler struct {
	Handler
	pokemon *service.PokemonService
}

func (h *PokemonHandler) Create(c echo.Context, payload *pokemon.CreatePokemonPayload) (*pokemon.Pokemon, error) {
	return h.pokemon.Create(c.Request().Context(), payload)
}

func (h *PokemonHandler) FindAll(c echo.Context, payload *pokemon.ListPokemonPayload) ([]pokemon.Pokemon, error) {
	return h.pokemon.FindAll(c.Request().Context(), payload)
}

func (h *PokemonHandler) FindOne(c echo.Context, payload *pokemon.GetPokemonPayload) (*pokemon.Pokemon, error) {
	return h.pokemon.FindOne(c.Request().Context(), payload.Term)
}

func (h *PokemonHandler) Update(c echo.Context, payload *pokemon.UpdatePokemonPayload) (*pokemon.Pokemon, error) {
	return h.pokemon.Update(c.Request().Context(), payload)
}

func (h *PokemonHandler) Remove(c echo.Context, payload *pokemon.DeletePokemonPayload) error {
	return h.pokemon.Remove(c.Request().Context(), payload)
}
