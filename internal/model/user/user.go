// Package user holds the teslo user entity, roles and auth payloads.
package user

import (
	"slices"
	"strings"

	"github.com/deppfellow/course-apis/internal/validation"
	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSuperUser Role = "super-user"
	RoleUser      Role = "user"
)

// User never serializes its password hash.
type User struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	FullName string    `json:"fullName"`
	IsActive bool      `json:"isActive"`
	Roles    []string  `json:"roles"`
}

// HasAnyRole reports whether u holds at least one of roles. An empty
// roles list is always satisfied.
func (u *User) HasAnyRole(roles ...Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if slices.Contains(u.Roles, string(r)) {
			return true
		}
	}
	return false
}

// NormalizeEmail is how emails are stored and looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthResponse is the user plus a freshly signed token.
type AuthResponse struct {
	*User
	Token string `json:"token"`
}

// ------------------------------------------------------------

type RegisterPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50,password"`
	FullName string `json:"fullName" validate:"required,min=1"`
}

func (p *RegisterPayload) Normalize() {
	p.Email = NormalizeEmail(p.Email)
	p.FullName = strings.TrimSpace(p.FullName)
}

func (p *RegisterPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50,password"`
}

func (p *LoginPayload) Normalize() {
	p.Email = NormalizeEmail(p.Email)
}

func (p *LoginPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type CheckStatusPayload struct{}

func (p *CheckStatusPayload) Validate() error {
	return nil
}
