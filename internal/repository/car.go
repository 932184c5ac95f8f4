package repository

import (
	"slices"
	"sync"

	"github.com/deppfellow/course-apis/internal/model/car"
	"github.com/google/uuid"
)

// CarRepository keeps cars in memory, in insertion order.
type CarRepository struct {
	mu   sync.RWMutex
	cars []car.Car
}

// NewCarRepository starts with the seed inventory.
func NewCarRepository() *CarRepository {
	return &CarRepository{cars: car.SeedCars()}
}

func (r *CarRepository) FindAll() []car.Car {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.cars)
}

func (r *CarRepository) FindByID(id uuid.UUID) (car.Car, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.index(id); i >= 0 {
		return r.cars[i], true
	}
	return car.Car{}, false
}

func (r *CarRepository) Insert(c car.Car) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cars = append(r.cars, c)
}

// Update replaces the car with the same id. It reports false when the car
// is gone.
func (r *CarRepository) Update(c car.Car) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(c.ID)
	if i < 0 {
		return false
	}
	r.cars[i] = c
	return true
}

// Delete reports whether a car was removed.
func (r *CarRepository) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return false
	}
	r.cars = slices.Delete(r.cars, i, i+1)
	return true
}

// Replace swaps the whole collection.
func (r *CarRepository) Replace(cars []car.Car) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cars = slices.Clone(cars)
}

// index must be called with mu held.
func (r *CarRepository) index(id uuid.UUID) int {
	return slices.IndexFunc(r.cars, func(c car.Car) bool { return c.ID == id })
}
