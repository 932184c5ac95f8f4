package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/course-apis/internal/errs"
	"github.com/deppfellow/course-apis/internal/model/car"
	"github.com/google/uuid"
)

type CarService struct {
	store CarStore
}

func NewCarService(store CarStore) *CarService {
	return &CarService{store: store}
}

func carNotFound(id string) error {
	return errs.NotFound(fmt.Sprintf("Car with id '%s' not found", id))
}

func (s *CarService) FindAll(_ context.Context) []car.Car {
	return s.store.FindAll()
}

func (s *CarService) FindByID(_ context.Context, id string) (*car.Car, error) {
	carID, err := uuid.Parse(id)
	if err != nil {
		return nil, carNotFound(id)
	}

	c, ok := s.store.FindByID(carID)
	if !ok {
		return nil, carNotFound(id)
	}
	return &c, nil
}

func (s *CarService) Create(_ context.Context, payload *car.CreateCarPayload) *car.Car {
	c := car.Car{
		ID:    uuid.New(),
		Brand: payload.Brand,
		Model: payload.Model,
	}
	s.store.Insert(c)
	return &c
}

// Update merges brand and model into an existing car. An id in the body
// must match the path id.
func (s *CarService) Update(ctx context.Context, payload *car.UpdateCarPayload) (*car.Car, error) {
	c, err := s.FindByID(ctx, payload.ID)
	if err != nil {
		return nil, err
	}

	if payload.BodyID != nil && *payload.BodyID != c.ID.String() {
		return nil, errs.BadRequest("Car id is not valid inside body")
	}

	if payload.Brand != nil {
		c.Brand = *payload.Brand
	}
	if payload.Model != nil {
		c.Model = *payload.Model
	}

	if !s.store.Update(*c) {
		return nil, carNotFound(payload.ID)
	}
	return c, nil
}

func (s *CarService) Delete(ctx context.Context, payload *car.DeleteCarPayload) (*car.DeleteResponse, error) {
	c, err := s.FindByID(ctx, payload.ID)
	if err != nil {
		return nil, err
	}

	if !s.store.Delete(c.ID) {
		return nil, carNotFound(payload.ID)
	}
	return &car.DeleteResponse{Method: "delete", ID: c.ID}, nil
}

// FillWithSeed replaces every car.
func (s *CarService) FillWithSeed(cars []car.Car) {
	s.store.Replace(cars)
}
