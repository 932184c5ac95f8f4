package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/course-apis/internal/errs"
	"github.com/deppfellow/course-apis/internal/model/brand"
	"github.com/google/uuid"
)

type BrandService struct {
	store BrandStore
}

func NewBrandService(store BrandStore) *BrandService {
	return &BrandService{store: store}
}

func brandNotFound(id string) error {
	return errs.NotFound(fmt.Sprintf("Brand with id '%s' not found", id))
}

// Create stores a brand; the payload has already lower-cased the name.
func (s *BrandService) Create(_ context.Context, payload *brand.CreateBrandPayload) *brand.Brand {
	b := brand.Brand{
		ID:        uuid.New(),
		Name:      payload.Name,
		CreatedAt: brand.NowMillis(),
	}
	s.store.Insert(b)
	return &b
}

func (s *BrandService) FindAll(_ context.Context) []brand.Brand {
	return s.store.FindAll()
}

func (s *BrandService) FindOne(_ context.Context, id string) (*brand.Brand, error) {
	brandID, err := uuid.Parse(id)
	if err != nil {
		return nil, brandNotFound(id)
	}

	b, ok := s.store.FindByID(brandID)
	if !ok {
		return nil, brandNotFound(id)
	}
	return &b, nil
}

// Update stamps updatedAt and keeps the id.
func (s *BrandService) Update(ctx context.Context, payload *brand.UpdateBrandPayload) (*brand.Brand, error) {
	b, err := s.FindOne(ctx, payload.ID)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		b.Name = *payload.Name
	}
	now := brand.NowMillis()
	b.UpdatedAt = &now

	if !s.store.Update(*b) {
		return nil, brandNotFound(payload.ID)
	}
	return b, nil
}

// Remove succeeds whether or not the brand exists.
func (s *BrandService) Remove(_ context.Context, payload *brand.DeleteBrandPayload) {
	if id, err := uuid.Parse(payload.ID); err == nil {
		s.store.Delete(id)
	}
}

func (s *BrandService) FillWithSeed(brands []brand.Brand) {
	s.store.Replace(brands)
}
