package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/course-apis/internal/model/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository stores teslo users in PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, password, full_name, is_active, roles`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.FullName, &u.IsActive, &u.Roles); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user. Roles falls back to the column default when empty.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash, fullName string, roles []string) (*user.User, error) {
	stmt := `
		INSERT INTO users (email, password, full_name, roles)
		VALUES ($1, $2, $3, COALESCE($4, '{user}'::TEXT[]))
		RETURNING ` + userColumns

	var rolesArg []string
	if len(roles) > 0 {
		rolesArg = roles
	}

	u, err := scanUser(r.pool.QueryRow(ctx, stmt, email, passwordHash, fullName, rolesArg))
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) findOne(ctx context.Context, stmt string, arg any) (*user.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, stmt, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("table:users: %w", err)
	}
	return u, nil
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("delete all users: %w", err)
	}
	return nil
}
