package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"

	"github.com/deppfellow/course-apis/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves, usually by calling Struct(r).
type Validatable interface {
	Validate() error
}

// Normalizer is implemented by requests that clean their input (trim,
// lower-case, apply defaults) after binding and before validation.
type Normalizer interface {
	Normalize()
}

// CustomValidationError represents a single validation issue that cannot
// be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds path params, query params and the body into
// payload, normalizes it and validates it.
//
// Both binding and validation failures come back as a 400 *errs.HTTPError.
// payload must be a pointer.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
	}

	// echo only binds the query string for GET, DELETE and HEAD.
	switch c.Request().Method {
	case http.MethodGet, http.MethodDelete, http.MethodHead:
	default:
		if err := (&echo.DefaultBinder{}).BindQueryParams(c, payload); err != nil {
			return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
		}
	}

	if n, ok := payload.(Normalizer); ok {
		n.Normalize()
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// bindErrorMessage extracts echo's "message=..." part from a bind error.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request payload"
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// A plain error from Validate(): report it without a field.
		return err.Error(), []errs.FieldError{}
	}

	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: err.Field(),
			Error: fieldMessage(err),
		})
	}

	return "Validation failed", fieldErrors
}

func fieldMessage(err validator.FieldError) string {
	isString := err.Kind() == reflect.String
	isSlice := err.Kind() == reflect.Slice

	switch err.Tag() {
	case "required":
		return "is required"

	case "min", "gte":
		switch {
		case isString:
			return fmt.Sprintf("must be at least %s characters", err.Param())
		case isSlice:
			return fmt.Sprintf("must contain at least %s items", err.Param())
		default:
			return fmt.Sprintf("must be at least %s", err.Param())
		}

	case "max", "lte":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	case "email":
		return "must be a valid email address"

	case "uuid", "uuid4":
		return "must be a valid UUID"

	case "mongoid":
		return fmt.Sprintf("%v is not a valid MongoID", err.Value())

	case "password":
		return "must have a Uppercase, lowercase letter and a number"

	case "url":
		return "must be a valid URL"

	case "dive":
		return "some items are invalid"

	default:
		if err.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", err.Field(), err.Tag(), err.Param())
		}
		return fmt.Sprintf("%s: %s", err.Field(), err.Tag())
	}
}

// uuidRegex matches standard UUID format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsValidUUID checks whether a string matches UUID format.
//
// Note: This validates format only. It does not validate UUID version/variant semantics.
func IsValidUUID(uuid string) bool {
	return uuidRegex.MatchString(uuid)
}
