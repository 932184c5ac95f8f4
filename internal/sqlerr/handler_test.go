package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/course-apis/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T (%v)", err, err)
	}
	return httpErr
}

func TestHandleErrorUniqueViolationUsesDetail(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		Message:        "duplicate key value violates unique constraint",
		Detail:         "Key (email)=(test1@google.com) already exists.",
		TableName:      "users",
		ConstraintName: "users_email_key",
	}

	httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert user: %w", pgErr)))

	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("status = %d", httpErr.Status)
	}
	if httpErr.Code != "USER_ALREADY_EXISTS" {
		t.Fatalf("code = %q", httpErr.Code)
	}
	if httpErr.Message != pgErr.Detail {
		t.Fatalf("message = %q", httpErr.Message)
	}
}

func TestHandleErrorUniqueViolationWithoutDetail(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		TableName:      "products",
		ConstraintName: "products_slug_key",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	if httpErr.Message != "A Product with this Slug already exists" {
		t.Fatalf("message = %q", httpErr.Message)
	}
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", TableName: "products", ColumnName: "title"}

	httpErr := asHTTPError(t, HandleError(pgErr))
	if httpErr.Code != "PRODUCT_REQUIRED" {
		t.Fatalf("code = %q", httpErr.Code)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "title" {
		t.Fatalf("field errors = %+v", httpErr.Errors)
	}
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", TableName: "products", ColumnName: "user_id"}

	httpErr := asHTTPError(t, HandleError(pgErr))
	if httpErr.Message != "The referenced User does not exist" {
		t.Fatalf("message = %q", httpErr.Message)
	}
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(fmt.Errorf("table:products: %w", pgx.ErrNoRows)))
	if httpErr.Status != http.StatusNotFound || httpErr.Message != "Product not found" {
		t.Fatalf("unexpected error: %+v", httpErr)
	}

	httpErr = asHTTPError(t, HandleError(pgx.ErrNoRows))
	if httpErr.Message != "Resource not found" {
		t.Fatalf("message = %q", httpErr.Message)
	}
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NotFound("Product with id: x not found")
	if got := HandleError(original); got != original {
		t.Fatalf("expected the same error back, got %v", got)
	}
}

func TestHandleErrorUnknownIsInternal(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))
	if httpErr.Status != http.StatusInternalServerError {
		t.Fatalf("status = %d", httpErr.Status)
	}
}

func TestHandleErrorCheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514", TableName: "products", ColumnName: "stock"}

	httpErr := asHTTPError(t, HandleError(pgErr))
	if httpErr.Status != http.StatusBadRequest || httpErr.Code != "PRODUCT_INVALID" {
		t.Fatalf("unexpected error: %+v", httpErr)
	}
	if httpErr.Message != "The Stock value does not meet required conditions" {
		t.Fatalf("message = %q", httpErr.Message)
	}
}
