package repository

import (
	"slices"
	"sync"

	"github.com/deppfellow/course-apis/internal/model/brand"
	"github.com/google/uuid"
)

// BrandRepository keeps brands in memory, in insertion order.
type BrandRepository struct {
	mu     sync.RWMutex
	brands []brand.Brand
}

// NewBrandRepository starts with the seed brands.
func NewBrandRepository() *BrandRepository {
	return &BrandRepository{brands: brand.SeedBrands()}
}

func (r *BrandRepository) FindAll() []brand.Brand {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.brands)
}

func (r *BrandRepository) FindByID(id uuid.UUID) (brand.Brand, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.index(id); i >= 0 {
		return r.brands[i], true
	}
	return brand.Brand{}, false
}

func (r *BrandRepository) Insert(b brand.Brand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.brands = append(r.brands, b)
}

func (r *BrandRepository) Update(b brand.Brand) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(b.ID)
	if i < 0 {
		return false
	}
	r.brands[i] = b
	return true
}

// Delete filters the brand out; a missing id is not an error.
func (r *BrandRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.brands = slices.DeleteFunc(r.brands, func(b brand.Brand) bool { return b.ID == id })
}

func (r *BrandRepository) Replace(brands []brand.Brand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.brands = slices.Clone(brands)
}

func (r *BrandRepository) index(id uuid.UUID) int {
	return slices.IndexFunc(r.brands, func(b brand.Brand) bool { return b.ID == id })
}
