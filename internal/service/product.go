package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/course-apis/internal/errs"
	"github.com/deppfellow/course-apis/internal/model/product"
	"github.com/deppfellow/course-apis/internal/model/user"
	"github.com/deppfellow/course-apis/internal/repository"
	"github.com/deppfellow/course-apis/internal/validation"
	"github.com/google/uuid"
)

// defaultProductLimit is the page size when ?limit is omitted.
const defaultProductLimit = 10

type ProductService struct {
	store ProductStore
}

func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

func productNotFound(term string) error {
	return errs.NotFound(fmt.Sprintf("Product with id: %s not found", term))
}

// Create stores the product owned by owner. Unique title or slug
// violations reach the global error handler as Postgres errors.
func (s *ProductService) Create(ctx context.Context, owner *user.User, payload *product.CreateProductPayload) (*product.Product, error) {
	p := &product.Product{
		Title:       payload.Title,
		Description: payload.Description,
		Sizes:       payload.Sizes,
		Gender:      payload.Gender,
		Tags:        payload.Tags,
		Images:      payload.Images,
	}
	if payload.Price != nil {
		p.Price = *payload.Price
	}
	if payload.Slug != nil {
		p.Slug = *payload.Slug
	}
	if payload.Stock != nil {
		p.Stock = *payload.Stock
	}
	if p.Images == nil {
		p.Images = []string{}
	}

	return s.store.Create(ctx, p, owner.ID)
}

func (s *ProductService) FindAll(ctx context.Context, payload *product.ListProductsPayload) ([]product.Product, error) {
	return s.store.FindAll(ctx, payload.LimitOr(defaultProductLimit), payload.OffsetOrZero())
}

// FindOne looks term up as an id when it is a UUID, otherwise by title
// (case-insensitive) or slug.
func (s *ProductService) FindOne(ctx context.Context, term string) (*product.Product, error) {
	var (
		p   *product.Product
		err error
	)

	if validation.IsValidUUID(term) {
		p, err = s.store.FindByID(ctx, uuid.MustParse(term))
	} else {
		p, err = s.store.FindByTitleOrSlug(ctx, term)
	}

	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, productNotFound(term)
		}
		return nil, err
	}
	return p, nil
}

// Update merges the payload into the stored product. Sending images
// replaces all of them; the whole write is one transaction.
func (s *ProductService) Update(ctx context.Context, payload *product.UpdateProductPayload) (*product.Product, error) {
	p, err := s.FindOne(ctx, payload.ID)
	if err != nil {
		return nil, err
	}

	payload.Apply(p)

	updated, err := s.store.Update(ctx, p, payload.Images != nil)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, productNotFound(payload.ID)
		}
		return nil, err
	}
	return updated, nil
}

func (s *ProductService) Remove(ctx context.Context, payload *product.DeleteProductPayload) error {
	p, err := s.FindOne(ctx, payload.ID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, p.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return productNotFound(payload.ID)
		}
		return err
	}
	return nil
}

// DeleteAllProducts empties the catalogue.
func (s *ProductService) DeleteAllProducts(ctx context.Context) error {
	return s.store.DeleteAll(ctx)
}
