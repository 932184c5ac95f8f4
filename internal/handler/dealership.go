package handler

import (
	"github.com/deppfellow/course-apis/internal/model"
	"github.com/deppfellow/course-apis/internal/model/brand"
	"github.com/deppfellow/course-apis/internal/model/car"
	"github.com/deppfellow/course-apis/internal/service"
	"github.com/labstack/echo/v4"
)

type CarHandler struct {
	Handler
	cars *service.CarService
}

func (h *CarHandler) FindAll(c echo.Context, _ *model.EmptyPayload) ([]car.Car, error) {
	return h.cars.FindAll(c.Request().Context()), nil
}

func (h *CarHandler) FindByID(c echo.Context, payload *car.GetCarPayload) (*car.Car, error) {
	return h.cars.FindByID(c.Request().Context(), payload.ID)
}

func (h *CarHandler) Create(c echo.Context, payload *car.CreateCarPayload) (*car.Car, error) {
	return h.cars.Create(c.Request().Context(), payload), nil
}

func (h *CarHandler) Update(c echo.Context, payload *car.UpdateCarPayload) (*car.Car, error) {
	return h.cars.Update(c.Request().Context(), payload)
}

func (h *CarHandler) Delete(c echo.Context, payload *car.DeleteCarPayload) (*car.DeleteResponse, error) {
	return h.cars.Delete(c.Request().Context(), payload)
}

type BrandHandler struct {
	Handler
	brands *service.BrandService
}

func (h *BrandHandler) Create(c echo.Context, payload *brand.CreateBrandPayload) (*brand.Brand, error) {
	return h.brands.Create(c.Request().Context(), payload), nil
}

func (h *BrandHandler) FindAll(c echo.Context, _ *model.EmptyPayload) ([]brand.Brand, error) {
	return h.brands.FindAll(c.Request().Context()), nil
}

func (h *BrandHandler) FindOne(c echo.Context, payload *brand.GetBrandPayload) (*brand.Brand, error) {
	return h.brands.FindOne(c.Request().Context(), payload.ID)
}

func (h *BrandHandler) Update(c echo.Context, payload *brand.UpdateBrandPayload) (*brand.Brand, error) {
	return h.brands.Update(c.Request().Context(), payload)
}

func (h *BrandHandler) Remove(c echo.Context, payload *brand.DeleteBrandPayload) error {
	h.brands.Remove(c.Request().Context(), payload)
	return nil
}
