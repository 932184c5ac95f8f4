// Package product holds the teslo product entity and its payloads.
package product

import (
	"strings"

	"github.com/deppfellow/course-apis/internal/model"
	"github.com/deppfellow/course-apis/internal/model/user"
	"github.com/deppfellow/course-apis/internal/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderKid    Gender = "kid"
	GenderUnisex Gender = "unisex"
)

// Product is the plain product: Images holds URLs only.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description"`
	Slug        string          `json:"slug"`
	Stock       int             `json:"stock"`
	Sizes       []string        `json:"sizes"`
	Gender      Gender          `json:"gender"`
	Tags        []string        `json:"tags"`
	Images      []string        `json:"images"`
	User        *user.User      `json:"user,omitempty"`
}

// Slugify lower-cases s, turns spaces into underscores and drops
// apostrophes: "Men's Chill Crew" -> "mens_chill_crew".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "'", "")
}

var negativePrice = validation.CustomValidationErrors{{Field: "price", Message: "must be at least 0"}}

// ------------------------------------------------------------

type CreateProductPayload struct {
	Title       string           `json:"title" validate:"required,min=1"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Slug        *string          `json:"slug" validate:"omitempty,min=1"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Sizes       []string         `json:"sizes" validate:"required,min=1,dive,min=1"`
	Gender      Gender           `json:"gender" validate:"required,oneof=men women kid unisex"`
	Tags        []string         `json:"tags" validate:"omitempty,dive,min=1"`
	Images      []string         `json:"images" validate:"omitempty,dive,min=1"`
}

// Normalize derives the slug from the title when it is missing.
func (p *CreateProductPayload) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	slug := p.Title
	if p.Slug != nil && strings.TrimSpace(*p.Slug) != "" {
		slug = *p.Slug
	}
	slug = Slugify(slug)
	p.Slug = &slug
}

func (p *CreateProductPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	if p.Price != nil && p.Price.IsNegative() {
		return negativePrice
	}
	return nil
}

// ------------------------------------------------------------

type ListProductsPayload struct {
	model.PaginationQuery
}

func (p *ListProductsPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// GetProductPayload looks a product up by id, title or slug.
type GetProductPayload struct {
	Term string `param:"term" json:"-" validate:"required"`
}

func (p *GetProductPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// UpdateProductPayload is a partial update. A non-nil Images, even empty,
// replaces every image of the product.
type UpdateProductPayload struct {
	ID          string           `param:"id" json:"-" validate:"required,uuid"`
	Title       *string          `json:"title" validate:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Slug        *string          `json:"slug" validate:"omitempty,min=1"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Sizes       []string         `json:"sizes" validate:"omitempty,min=1,dive,min=1"`
	Gender      *Gender          `json:"gender" validate:"omitempty,oneof=men women kid unisex"`
	Tags        []string         `json:"tags" validate:"omitempty,dive,min=1"`
	Images      []string         `json:"images" validate:"omitempty,dive,min=1"`
}

func (p *UpdateProductPayload) Normalize() {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		p.Title = &title
	}
	if p.Slug != nil {
		slug := Slugify(*p.Slug)
		p.Slug = &slug
	}
}

func (p *UpdateProductPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	if p.Price != nil && p.Price.IsNegative() {
		return negativePrice
	}
	return nil
}

// Apply merges the set fields of p into prod.
func (p *UpdateProductPayload) Apply(prod *Product) {
	if p.Title != nil {
		prod.Title = *p.Title
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.Description != nil {
		prod.Description = p.Description
	}
	if p.Slug != nil {
		prod.Slug = *p.Slug
	}
	if p.Stock != nil {
		prod.Stock = *p.Stock
	}
	if p.Sizes != nil {
		prod.Sizes = p.Sizes
	}
	if p.Gender != nil {
		prod.Gender = *p.Gender
	}
	if p.Tags != nil {
		prod.Tags = p.Tags
	}
	if p.Images != nil {
		prod.Images = p.Images
	}
}

// ------------------------------------------------------------

type DeleteProductPayload struct {
	ID string `param:"id" json:"-" validate:"required,uuid"`
}

func (p *DeleteProductPayload) Validate() error {
	return validation.Struct(p)
}
