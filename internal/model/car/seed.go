package car

import "github.com/google/uuid"

// SeedCars returns a fresh copy of the dealership's starting inventory.
func SeedCars() []Car {
	return []Car{
		{ID: uuid.New(), Brand: "Toyota", Model: "Corolla"},
		{ID: uuid.New(), Brand: "Honda", Model: "Civic"},
		{ID: uuid.New(), Brand: "Jeep", Model: "Cherokee"},
	}
}
