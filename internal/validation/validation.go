// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidator()

	mongoIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under the name clients send: json, then query, then
	// param tag, falling back to the Go field name. Path parameters are
	// usually tagged json:"-" and fall through to their param name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})

	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("mongoid", func(fl validator.FieldLevel) bool {
		return IsValidMongoID(fl.Field().String())
	})

	return v
}

// Struct validates s against its `validate` tags using the shared
// validator, which knows the custom password and mongoid tags.
func Struct(s any) error {
	return validate.Struct(s)
}

// IsStrongPassword requires an upper-case letter, a lower-case letter and
// a digit or symbol.
func IsStrongPassword(password string) bool {
	var upper, lower, digitOrSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r), unicode.IsPunct(r), unicode.IsSymbol(r):
			digitOrSymbol = true
		}
	}
	return upper && lower && digitOrSymbol
}

// IsValidMongoID reports whether id is a 24 character hex ObjectID.
func IsValidMongoID(id string) bool {
	return mongoIDRegex.MatchString(id)
}
