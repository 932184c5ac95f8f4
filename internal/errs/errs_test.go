package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorsSetStatusAndCode(t *testing.T) {
	cases := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"unauthorized", NewUnauthorizedError("no", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("no", false), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", BadRequest("no"), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NotFound("no"), http.StatusNotFound, "NOT_FOUND"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Status != tc.status {
				t.Fatalf("status = %d, want %d", tc.err.Status, tc.status)
			}
			if tc.err.Code != tc.code {
				t.Fatalf("code = %q, want %q", tc.err.Code, tc.code)
			}
		})
	}
}

func TestBadRequestCustomCode(t *testing.T) {
	code := "PRODUCT_ALREADY_EXISTS"
	err := NewBadRequestError("exists", true, &code, nil, nil)
	if err.Code != code {
		t.Fatalf("code = %q", err.Code)
	}
}

func TestHTTPErrorMatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading product: %w", NotFound("Product with id: x not found"))

	var httpErr *HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("expected errors.As to find HTTPError")
	}
	if httpErr.Message != "Product with id: x not found" {
		t.Fatalf("message = %q", httpErr.Message)
	}
	if !errors.Is(wrapped, &HTTPError{}) {
		t.Fatal("expected errors.Is to match any HTTPError")
	}
}

func TestWithMessageCopies(t *testing.T) {
	base := NotFound("original")
	changed := base.WithMessage("changed")

	if base.Message != "original" {
		t.Fatal("WithMessage must not mutate the receiver")
	}
	if changed.Message != "changed" || changed.Status != http.StatusNotFound {
		t.Fatalf("unexpected copy: %+v", changed)
	}
}
