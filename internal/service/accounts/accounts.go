// Package accounts registers users, checks their credentials and resolves
// verified token identities back to stored users.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/user"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/serviceerrs"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/auth"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/logger"
)

type Result struct {
	User  user.User
	Token string
}

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) error
}

type Service struct {
	users     user.Repository
	tokens    *auth.TokenService
	passwords PasswordHasher
	// compared against when the identifier is unknown so both login
	// failures cost one bcrypt comparison.
	dummyHash string
	ttl       time.Duration
}

func New(
	users user.Repository,
	tokens *auth.TokenService,
	passwords PasswordHasher,
	ttl time.Duration,
) (*Service, error) {
	dummy, err := passwords.Hash("not-a-real-password")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}
	if ttl <= 0 {
		ttl = auth.DefaultTokenTTL
	}
	return &Service{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		dummyHash: dummy,
		ttl:       ttl,
	}, nil
}

// Register creates the user and returns a token for it. Input is
// expected to be validated already.
func (s *Service) Register(ctx context.Context, username, email, password string,
) (Result, error) {
	exists, err := s.users.Exists(ctx, username, email)
	if err != nil {
		return Result{}, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return Result{}, serviceerrs.ErrUserExists
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return Result{}, serviceerrs.NewValidationError(err.Error())
		}
		return Result{}, err //nolint: wrapcheck // already wrapped
	}

	u := &user.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err = s.users.Create(ctx, u); err != nil {
		if errors.Is(err, serviceerrs.ErrUserExists) {
			return Result{}, serviceerrs.ErrUserExists
		}
		return Result{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(
		user.Identity{UserID: u.ID, Username: u.Username}, s.ttl)
	if err != nil {
		return Result{}, fmt.Errorf("failed to issue token: %w", err)
	}

	logger.FromContext(ctx).LogAttrs(ctx, slog.LevelInfo, "user registered",
		slog.String("user_id", u.ID))
	return Result{User: *u, Token: token}, nil
}

// Login accepts a username or an email as identifier. Unknown users and
// wrong passwords are both reported as serviceerrs.ErrInvalidCredentials,
// and both report auth.ErrPasswordBusy the same way when no bcrypt slot
// is free.
func (s *Service) Login(ctx context.Context, identifier, password string,
) (Result, error) {
	u, err := s.users.FindByIdentifier(ctx, identifier)
	switch {
	case errors.Is(err, serviceerrs.ErrNotFound):
		if err = s.passwords.Verify(s.dummyHash, password); errors.Is(err, auth.ErrPasswordBusy) {
			return Result{}, passwordBusy(err)
		}
		return Result{}, serviceerrs.ErrInvalidCredentials
	case err != nil:
		return Result{}, fmt.Errorf("failed to find user: %w", err)
	}

	if err = s.passwords.Verify(u.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordBusy) {
			return Result{}, passwordBusy(err)
		}
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			logger.FromContext(ctx).LogAttrs(ctx, slog.LevelError,
				"stored password hash is unusable",
				slog.String("user_id", u.ID),
				slog.Any(model.KeyLoggerError, err))
		}
		return Result{}, serviceerrs.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(
		user.Identity{UserID: u.ID, Username: u.Username}, s.ttl)
	if err != nil {
		return Result{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return Result{User: u, Token: token}, nil
}

// Verify loads the user behind an already verified identity.
func (s *Service) Verify(ctx context.Context, id user.Identity) (user.User, error) {
	u, err := s.users.FindByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			return user.User{}, serviceerrs.ErrNotFound
		}
		return user.User{}, fmt.Errorf("failed to find user: %w", err)
	}
	return u, nil
}

func passwordBusy(err error) error {
	return fmt.Errorf("failed to check password: %w", err)
}
