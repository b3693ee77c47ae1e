package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/user"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/serviceerrs"
)

const msgUserFieldTooLong = "Username or email is too long."

const (
	userColumns = `id, username, email, password_hash, created_at, updated_at`

	queryUserExists = `SELECT EXISTS (
		SELECT 1 FROM users WHERE username = $1 OR email = $2)`
	queryInsertUser = `INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`
	queryUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	// username wins over email when one user's username equals
	// another user's email.
	queryUserByIdentifier = `SELECT ` + userColumns + ` FROM users
		WHERE username = $1 OR email = $1
		ORDER BY (username = $1) DESC
		LIMIT 1`
)

type UserRepository struct {
	DB
}

func NewUserRepository(pool connectionPool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

// Create inserts u, assigning an ID when it has none. It returns
// serviceerrs.ErrUserExists when the username or email is taken.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	createLogic := func(ctx context.Context, tx connectionPool) (user.User, error) {
		var exists bool
		if err := tx.QueryRow(ctx, queryUserExists, u.Username, u.Email).
			Scan(&exists); err != nil {
			return user.User{}, fmt.Errorf("failed to check user existence: %w", err)
		}
		if exists {
			return user.User{}, serviceerrs.ErrUserExists
		}

		created := *u
		err := tx.QueryRow(ctx, queryInsertUser,
			u.ID, u.Username, u.Email, u.PasswordHash,
		).Scan(&created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return user.User{}, serviceerrs.ErrUserExists
			}
			if isValueTooLong(err) {
				return user.User{}, &serviceerrs.ValidationError{
					Message: msgUserFieldTooLong,
					Cause:   err,
				}
			}
			return user.User{}, fmt.Errorf("failed to insert user: %w", err)
		}
		return created, nil
	}

	created, err := WithTX[user.User](ctx, r.pool, r.log, createLogic)
	if err != nil {
		return err //nolint: wrapcheck // error from wrapped function
	}
	*u = created
	return nil
}

func (r *UserRepository) Exists(ctx context.Context, username, email string,
) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, queryUserExists, username, email).
		Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string,
) (user.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return user.User{}, serviceerrs.ErrNotFound
	}
	return r.findOne(ctx, queryUserByID, id)
}

func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string,
) (user.User, error) {
	return r.findOne(ctx, queryUserByIdentifier, identifier)
}

func (r *UserRepository) findOne(ctx context.Context, query, key string,
) (user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx, query, key).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, serviceerrs.ErrNotFound
		}
		return user.User{}, fmt.Errorf("failed to find user: %w", err)
	}
	return u, nil
}
