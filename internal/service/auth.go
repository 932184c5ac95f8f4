package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/course-apis/internal/errs"
	"github.com/deppfellow/course-apis/internal/lib/job"
	"github.com/deppfellow/course-apis/internal/model/user"
	"github.com/deppfellow/course-apis/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for stored password hashes.
const bcryptCost = 10

// Claims is the JWT body: the user id plus the registered claims.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users  UserStore
	jobs   TaskEnqueuer
	secret []byte
	ttl    time.Duration
	logger *zerolog.Logger
	now    func() time.Time
}

func NewAuthService(users UserStore, jobs TaskEnqueuer, secret string, ttl time.Duration, logger *zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		jobs:   jobs,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Register creates the user, queues the welcome email and signs a token.
// A failed enqueue is logged; the account still exists.
func (s *AuthService) Register(ctx context.Context, payload *user.RegisterPayload) (*user.AuthResponse, error) {
	hash, err := HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.users.Create(ctx, payload.Email, hash, payload.FullName, nil)
	if err != nil {
		return nil, err
	}

	if task, err := job.NewWelcomeEmailTask(u.Email, u.FullName); err != nil {
		s.logger.Error().Err(err).Str("user_id", u.ID.String()).Msg("failed to build welcome email task")
	} else if _, err := s.jobs.Enqueue(ctx, task); err != nil {
		s.logger.Error().Err(err).Str("user_id", u.ID.String()).Msg("failed to enqueue welcome email")
	}

	return s.withToken(u)
}

// Login reports which credential failed, email or password.
func (s *AuthService) Login(ctx context.Context, payload *user.LoginPayload) (*user.AuthResponse, error) {
	u, err := s.users.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewUnauthorizedError("Credentials are not valid (email)", true)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(payload.Password)); err != nil {
		return nil, errs.NewUnauthorizedError("Credentials are not valid (password)", true)
	}

	return s.withToken(u)
}

// CheckStatus returns the authenticated user with a renewed token.
func (s *AuthService) CheckStatus(_ context.Context, u *user.User) (*user.AuthResponse, error) {
	return s.withToken(u)
}

func (s *AuthService) withToken(u *user.User) (*user.AuthResponse, error) {
	token, err := s.SignToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &user.AuthResponse{User: u, Token: token}, nil
}

// SignToken issues an HS256 token carrying the user id.
func (s *AuthService) SignToken(id uuid.UUID) (string, error) {
	now := s.now()
	claims := Claims{
		ID: id.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

var errTokenNotValid = errs.NewUnauthorizedError("Token not valid", true)

// ResolveToken verifies tokenString and loads its user, who must still
// exist and be active.
func (s *AuthService) ResolveToken(ctx context.Context, tokenString string) (*user.User, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errTokenNotValid
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, errTokenNotValid
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errTokenNotValid
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, errs.NewUnauthorizedError("User is inactive, talk with an admin", true)
	}
	return u, nil
}
