package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/course-apis/internal/lib/job"
	"github.com/deppfellow/course-apis/internal/model/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newAuthService() (*AuthService, *fakeUserStore, *fakeEnqueuer) {
	users := &fakeUserStore{}
	jobs := &fakeEnqueuer{}
	return NewAuthService(users, jobs, testSecret, time.Hour, nopLogger()), users, jobs
}

func register(t *testing.T, s *AuthService) *user.AuthResponse {
	t.Helper()
	payload := &user.RegisterPayload{Email: "Test1@Google.com", Password: "Abc123", FullName: "Test One"}
	payload.Normalize()
	resp, err := s.Register(context.Background(), payload)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return resp
}

func TestRegisterHashesAndQueuesWelcomeEmail(t *testing.T) {
	s, users, jobs := newAuthService()

	resp := register(t, s)
	if resp.Email != "test1@google.com" || resp.Token == "" {
		t.Fatalf("resp = %+v", resp)
	}
	if users.users[0].Password == "Abc123" {
		t.Fatal("password stored in clear text")
	}
	if len(jobs.tasks) != 1 || jobs.tasks[0].Type() != job.TaskWelcome {
		t.Fatalf("tasks = %d", len(jobs.tasks))
	}

	p, err := job.DecodeWelcomeEmail(jobs.tasks[0])
	if err != nil || p.To != "test1@google.com" || p.FullName != "Test One" {
		t.Fatalf("payload = %+v err = %v", p, err)
	}
}

func TestRegisterSurvivesEnqueueFailure(t *testing.T) {
	s, _, jobs := newAuthService()
	jobs.err = errors.New("redis down")

	if resp := register(t, s); resp.Token == "" {
		t.Fatal("expected token")
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newAuthService()
	register(t, s)

	resp, err := s.Login(ctx, &user.LoginPayload{Email: "test1@google.com", Password: "Abc123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected token")
	}

	_, err = s.Login(ctx, &user.LoginPayload{Email: "nobody@google.com", Password: "Abc123"})
	requireHTTPError(t, err, http.StatusUnauthorized, "Credentials are not valid (email)")

	_, err = s.Login(ctx, &user.LoginPayload{Email: "test1@google.com", Password: "Abc1234"})
	requireHTTPError(t, err, http.StatusUnauthorized, "Credentials are not valid (password)")
}

func TestResolveToken(t *testing.T) {
	ctx := context.Background()
	s, users, _ := newAuthService()
	resp := register(t, s)

	u, err := s.ResolveToken(ctx, resp.Token)
	if err != nil {
		t.Fatalf("ResolveToken: %v", err)
	}
	if u.ID != resp.ID {
		t.Fatalf("resolved %v, want %v", u.ID, resp.ID)
	}

	_, err = s.ResolveToken(ctx, "not-a-token")
	requireHTTPError(t, err, http.StatusUnauthorized, "Token not valid")

	users.users[0].IsActive = false
	_, err = s.ResolveToken(ctx, resp.Token)
	requireHTTPError(t, err, http.StatusUnauthorized, "User is inactive, talk with an admin")
}

func TestResolveTokenRejectsExpiredAndForeignTokens(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newAuthService()
	resp := register(t, s)

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err := s.ResolveToken(ctx, resp.Token)
	requireHTTPError(t, err, http.StatusUnauthorized, "Token not valid")
	s.now = time.Now

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ID:               resp.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("another-secret-another-secret"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.ResolveToken(ctx, foreign)
	requireHTTPError(t, err, http.StatusUnauthorized, "Token not valid")

	unknown, err := s.SignToken(uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.ResolveToken(ctx, unknown)
	requireHTTPError(t, err, http.StatusUnauthorized, "Token not valid")
}

func TestCheckStatusRenewsToken(t *testing.T) {
	s, _, _ := newAuthService()
	resp := register(t, s)

	s.now = func() time.Time { return time.Now().Add(time.Minute) }
	renewed, err := s.CheckStatus(context.Background(), resp.User)
	if err != nil {
		t.Fatal(err)
	}
	if renewed.Token == "" || renewed.Token == resp.Token {
		t.Fatal("expected a new token")
	}
}
