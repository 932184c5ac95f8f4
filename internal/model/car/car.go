// Package car holds the dealership car entity and its payloads.
package car

import (
	"github.com/deppfellow/course-apis/internal/validation"
	"github.com/google/uuid"
)

type Car struct {
	ID    uuid.UUID `json:"id"`
	Brand string    `json:"brand"`
	Model string    `json:"model"`
}

// DeleteResponse is returned after a car is removed.
type DeleteResponse struct {
	Method string    `json:"method"`
	ID     uuid.UUID `json:"id"`
}

// ------------------------------------------------------------

type GetCarPayload struct {
	ID string `param:"id" json:"-" validate:"required,uuid"`
}

func (p *GetCarPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type CreateCarPayload struct {
	Brand string `json:"brand" validate:"required,min=1"`
	Model string `json:"model" validate:"required,min=1"`
}

func (p *CreateCarPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// UpdateCarPayload is a partial update. BodyID may repeat the path id but
// must not differ from it.
type UpdateCarPayload struct {
	ID     string  `param:"id" json:"-" validate:"required,uuid"`
	BodyID *string `json:"id" validate:"omitempty,uuid"`
	Brand  *string `json:"brand" validate:"omitempty,min=1"`
	Model  *string `json:"model" validate:"omitempty,min=1"`
}

func (p *UpdateCarPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type DeleteCarPayload struct {
	ID string `param:"id" json:"-" validate:"required,uuid"`
}

func (p *DeleteCarPayload) Validate() error {
	return validation.Struct(p)
}
