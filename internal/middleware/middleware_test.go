package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/course-apis/internal/config"
	"github.com/deppfellow/course-apis/internal/errs"
	"github.com/deppfellow/course-apis/internal/logger"
	"github.com/deppfellow/course-apis/internal/model/user"
	"github.com/deppfellow/course-apis/internal/server"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func testServer() *server.Server {
	cfg := config.DefaultConfig()
	cfg.Observability = config.DefaultObservabilityConfig()
	log := zerolog.Nop()

	return &server.Server{
		Config:        cfg,
		Logger:        &log,
		LoggerService: &logger.LoggerService{},
	}
}

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T (%v)", err, err)
	}
	if httpErr.Status != status {
		t.Fatalf("status = %d, want %d (%s)", httpErr.Status, status, httpErr.Message)
	}
	return httpErr
}

func ok(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

type fakeResolver struct {
	users map[string]*user.User
}

func (f *fakeResolver) ResolveToken(_ context.Context, token string) (*user.User, error) {
	if u, found := f.users[token]; found {
		return u, nil
	}
	return nil, errs.NewUnauthorizedError("Token not valid", true)
}

func authFixture() (*AuthMiddleware, *user.User, *user.User) {
	admin := &user.User{ID: uuid.New(), FullName: "Test One", IsActive: true, Roles: []string{"admin"}}
	plain := &user.User{ID: uuid.New(), FullName: "Test Two", IsActive: true, Roles: []string{"user"}}

	resolver := &fakeResolver{users: map[string]*user.User{
		"admin-token": admin,
		"user-token":  plain,
	}}
	return NewAuthMiddleware(testServer(), resolver), admin, plain
}

func TestRequireAuthMissingHeader(t *testing.T) {
	auth, _, _ := authFixture()
	c, _ := newContext(http.MethodGet, "/api/auth/check-status")

	requireStatus(t, auth.RequireAuth(ok)(c), http.StatusUnauthorized)
}

func TestRequireAuthRejectsUnknownToken(t *testing.T) {
	auth, _, _ := authFixture()
	c, _ := newContext(http.MethodGet, "/api/auth/check-status")
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer nope")

	httpErr := requireStatus(t, auth.RequireAuth(ok)(c), http.StatusUnauthorized)
	if httpErr.Message != "Token not valid" {
		t.Fatalf("message = %q", httpErr.Message)
	}
}

func TestRequireAuthStoresUser(t *testing.T) {
	auth, admin, _ := authFixture()
	c, rec := newContext(http.MethodGet, "/api/auth/check-status")
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer admin-token")

	if err := auth.RequireAuth(ok)(c); err != nil {
		t.Fatalf("RequireAuth: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if GetUser(c) != admin {
		t.Fatal("user not stored on context")
	}
	if GetUserID(c) != admin.ID.String() {
		t.Fatalf("user id = %q", GetUserID(c))
	}
}

func TestRequireRoles(t *testing.T) {
	auth, admin, plain := authFixture()
	guard := auth.RequireRoles(user.RoleAdmin, user.RoleSuperUser)(ok)

	c, _ := newContext(http.MethodDelete, "/api/products/x")
	requireStatus(t, guard(c), http.StatusUnauthorized)

	c, _ = newContext(http.MethodDelete, "/api/products/x")
	c.Set(UserKey, plain)
	httpErr := requireStatus(t, guard(c), http.StatusForbidden)
	if want := "User Test Two need a valid role: [admin,super-user]"; httpErr.Message != want {
		t.Fatalf("message = %q, want %q", httpErr.Message, want)
	}

	c, _ = newContext(http.MethodDelete, "/api/products/x")
	c.Set(UserKey, admin)
	if err := guard(c); err != nil {
		t.Fatalf("admin should pass: %v", err)
	}
}

func TestRequestIDGeneratesAndReuses(t *testing.T) {
	mw := RequestID()

	c, rec := newContext(http.MethodGet, "/cars")
	if err := mw(ok)(c); err != nil {
		t.Fatal(err)
	}
	generated := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(generated); err != nil {
		t.Fatalf("generated id %q is not a uuid", generated)
	}

	c, rec = newContext(http.MethodGet, "/cars")
	c.Request().Header.Set(RequestIDHeader, "abc-123")
	if err := mw(ok)(c); err != nil {
		t.Fatal(err)
	}
	if rec.Header().Get(RequestIDHeader) != "abc-123" || GetRequestID(c) != "abc-123" {
		t.Fatalf("incoming request id not reused")
	}
}

func TestRateLimitDeniesAfterBurst(t *testing.T) {
	s := testServer()
	s.Config.Server.RateLimit = 0.001
	s.Config.Server.RateBurst = 1

	limited := NewRateLimitMiddleware(s).Limit("auth")(ok)

	c, _ := newContext(http.MethodPost, "/api/auth/login")
	if err := limited(c); err != nil {
		t.Fatalf("first request should pass: %v", err)
	}

	c, _ = newContext(http.MethodPost, "/api/auth/login")
	requireStatus(t, limited(c), http.StatusTooManyRequests)
}

func TestGetLoggerWithoutEnhancer(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/")
	if GetLogger(c) == nil {
		t.Fatal("expected a no-op logger")
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, rec.Body.String())
	}
	return body
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(testServer())

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"http error", errs.NotFound("Car with id 'x' not found"), http.StatusNotFound, "Car with id 'x' not found"},
		{"unknown route", echo.ErrNotFound, http.StatusNotFound, "Route not found"},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/x")
			global.GlobalErrorHandler(tc.err, c)

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			if body := decodeError(t, rec); body.Message != tc.message {
				t.Fatalf("message = %q, want %q", body.Message, tc.message)
			}
		})
	}
}
