package service

import (
	"errors"
	"testing"

	"github.com/deppfellow/course-apis/internal/errs"
)

func ptr[T any](v T) *T { return &v }

func requireHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T (%v)", err, err)
	}
	if httpErr.Status != status {
		t.Fatalf("status = %d, want %d (%s)", httpErr.Status, status, httpErr.Message)
	}
	if message != "" && httpErr.Message != message {
		t.Fatalf("message = %q, want %q", httpErr.Message, message)
	}
}
