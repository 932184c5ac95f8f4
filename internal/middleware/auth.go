package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/deppfellow/course-apis/internal/errs"
	"github.com/deppfellow/course-apis/internal/model/user"
	"github.com/deppfellow/course-apis/internal/server"
	"github.com/labstack/echo/v4"
)

// UserKey holds the authenticated *user.User in echo context.
const UserKey = "user"

// TokenResolver turns a bearer token into an active user.
// service.AuthService implements it.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*user.User, error)
}

type AuthMiddleware struct {
	server   *server.Server
	resolver TokenResolver
}

func NewAuthMiddleware(s *server.Server, resolver TokenResolver) *AuthMiddleware {
	return &AuthMiddleware{
		server:   s,
		resolver: resolver,
	}
}

// RequireAuth reads "Authorization: Bearer <token>", resolves the user and
// stores it on the echo context together with user_id and user_role.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		u, err := auth.resolver.ResolveToken(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			GetLogger(c).Warn().
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Err(err).
				Msg("token rejected")
			return err
		}

		c.Set(UserKey, u)
		c.Set(UserIDKey, u.ID.String())
		c.Set(UserRoleKey, strings.Join(u.Roles, ","))

		// The request logger was built before the user was known.
		withUser := GetLogger(c).With().
			Str("user_id", u.ID.String()).
			Logger()
		c.Set(LoggerKey, &withUser)

		withUser.Debug().
			Str("function", "RequireAuth").
			Dur("duration", time.Since(start)).
			Msg("user authenticated successfully")

		return next(c)
	}
}

// RequireRoles lets the request through when the user holds any of
// roles. It must run after RequireAuth.
func (auth *AuthMiddleware) RequireRoles(roles ...user.Role) echo.MiddlewareFunc {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := GetUser(c)
			if u == nil {
				return errs.NewUnauthorizedError("Unauthorized", false)
			}

			if !u.HasAnyRole(roles...) {
				return errs.NewForbiddenError(
					fmt.Sprintf("User %s need a valid role: [%s]", u.FullName, strings.Join(names, ",")),
					true,
				)
			}

			return next(c)
		}
	}
}

// GetUser returns the authenticated user, or nil outside RequireAuth.
func GetUser(c echo.Context) *user.User {
	if u, ok := c.Get(UserKey).(*user.User); ok {
		return u
	}
	return nil
}
