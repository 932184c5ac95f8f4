// Package brand holds the dealership brand entity and its payloads.
package brand

import (
	"strings"
	"time"

	"github.com/deppfellow/course-apis/internal/validation"
	"github.com/google/uuid"
)

// Brand timestamps are epoch milliseconds.
type Brand struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt int64     `json:"createdAt"`
	UpdatedAt *int64    `json:"updatedAt,omitempty"`
}

// NowMillis is the timestamp format used by brands.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// ------------------------------------------------------------

type CreateBrandPayload struct {
	Name string `json:"name" validate:"required,min=1"`
}

func (p *CreateBrandPayload) Normalize() {
	p.Name = strings.ToLower(strings.TrimSpace(p.Name))
}

func (p *CreateBrandPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type GetBrandPayload struct {
	ID string `param:"id" json:"-" validate:"required,uuid"`
}

func (p *GetBrandPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type UpdateBrandPayload struct {
	ID   string  `param:"id" json:"-" validate:"required,uuid"`
	Name *string `json:"name" validate:"omitempty,min=1"`
}

func (p *UpdateBrandPayload) Normalize() {
	if p.Name != nil {
		name := strings.ToLower(strings.TrimSpace(*p.Name))
		p.Name = &name
	}
}

func (p *UpdateBrandPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type DeleteBrandPayload struct {
	ID string `param:"id" json:"-" validate:"required,uuid"`
}

func (p *DeleteBrandPayload) Validate() error {
	return validation.Struct(p)
}
