package handler

import (
	"net/http"

	"github.com/deppfellow/course-apis/internal/model"
	"github.com/deppfellow/course-apis/internal/model/pokemon"
	"github.com/deppfellow/course-apis/internal/service"
	"github.com/deppfellow/course-apis/internal/validation"
	"github.com/labstack/echo/v4"
)

// SeedHandler resets each API to its starting dataset. Results are plain
// text.
type SeedHandler struct {
	Handler
	seed *service.SeedService
}

func (h *SeedHandler) Dealership(c echo.Context, _ *model.EmptyPayload) (string, error) {
	return h.seed.Dealership(c.Request().Context()), nil
}

func (h *SeedHandler) Teslo(c echo.Context, _ *model.EmptyPayload) (string, error) {
	return h.seed.Teslo(c.Request().Context())
}

// Pokedex reloads the pokedex inline, or queues the reload and answers
// 202 {task_id} when called with ?async=true.
func (h *SeedHandler) Pokedex(c echo.Context) error {
	payload := &pokemon.SeedPokedexPayload{}
	if err := validation.BindAndValidate(c, payload); err != nil {
		return err
	}

	ctx := c.Request().Context()

	if payload.Async {
		queued, err := h.seed.EnqueuePokedex(ctx)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusAccepted, queued)
	}

	msg, err := h.seed.Pokedex(ctx)
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, msg)
}
