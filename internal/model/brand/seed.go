package brand

import "github.com/google/uuid"

// SeedBrands returns a fresh copy of the dealership's starting brands.
func SeedBrands() []Brand {
	now := NowMillis()
	return []Brand{
		{ID: uuid.New(), Name: "toyota", CreatedAt: now},
		{ID: uuid.New(), Name: "honda", CreatedAt: now},
		{ID: uuid.New(), Name: "jeep", CreatedAt: now},
	}
}
