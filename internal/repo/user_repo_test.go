package repo

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/user"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/serviceerrs"
)

func TestUserRepository_Create(t *testing.T) {
	repo, ctx, _ := setupRepo(t, NewUserRepository)

	tests := []struct {
		name     string
		username string
		email    string
		wantErr  error
	}{
		{"create dave", "dave", "dave@example.test", nil},
		{"create erin", "erin", "erin@example.test", nil},
		{"duplicate username", "dave", "dave2@example.test", serviceerrs.ErrUserExists},
		{"duplicate email", "dave2", "dave@example.test", serviceerrs.ErrUserExists},
		{"fixture username", "fixture_alice", "x@example.test", serviceerrs.ErrUserExists},
		{"username too long", strings.Repeat("u", 65), "long@example.test", serviceerrs.ErrValidation},
		{"email too long", "longmail", strings.Repeat("e", 244) + "@example.test", serviceerrs.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &user.User{
				Username:     tt.username,
				Email:        tt.email,
				PasswordHash: "hash",
			}
			err := repo.Create(ctx, u)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, u.ID)
			assert.False(t, u.CreatedAt.IsZero())

			exists, err := repo.Exists(ctx, tt.username, "nobody@example.test")
			require.NoError(t, err)
			assert.True(t, exists)
		})
	}
}

func TestUserRepository_Create_concurrent(t *testing.T) {
	repo, ctx, _ := setupRepo(t, NewUserRepository)

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = repo.Create(ctx, &user.User{
				Username:     "racer",
				Email:        "racer@example.test",
				PasswordHash: "hash",
			})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, serviceerrs.ErrUserExists)
	}
	assert.Equal(t, 1, succeeded)
}

func TestUserRepository_FindByIdentifier(t *testing.T) {
	repo, ctx, _ := setupRepo(t, NewUserRepository)

	tests := []struct {
		name       string
		identifier string
		wantID     string
		wantErr    error
	}{
		{"by username", "fixture_alice", fixtureAliceID, nil},
		{"by email", "bob@fixture.test", fixtureBobID, nil},
		{"unknown", "no-such-user", "", serviceerrs.ErrNotFound},
		{"empty", "", "", serviceerrs.ErrNotFound},
		{"case sensitive", "FIXTURE_ALICE", "", serviceerrs.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := repo.FindByIdentifier(ctx, tt.identifier)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, u.ID)
			assert.NotEmpty(t, u.PasswordHash)
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	repo, ctx, _ := setupRepo(t, NewUserRepository)

	u, err := repo.FindByID(ctx, fixtureAliceID)
	require.NoError(t, err)
	assert.Equal(t, "fixture_alice", u.Username)
	assert.Equal(t, "alice@fixture.test", u.Email)

	_, err = repo.FindByID(ctx, "7d1e1a52-0000-4000-8000-000000000000")
	require.ErrorIs(t, err, serviceerrs.ErrNotFound)

	_, err = repo.FindByID(ctx, "not-a-uuid")
	require.ErrorIs(t, err, serviceerrs.ErrNotFound)
}

func TestUserRepository_closedContext(t *testing.T) {
	repo, _, _ := setupRepo(t, NewUserRepository)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindByIdentifier(ctx, "fixture_alice")
	require.Error(t, err)
	assert.NotErrorIs(t, err, serviceerrs.ErrNotFound)

	err = repo.Create(ctx, &user.User{Username: "x", Email: "x@x.test", PasswordHash: "h"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, serviceerrs.ErrUserExists)
}

func TestWithTX_rollback(t *testing.T) {
	_, ctx, pool := setupRepo(t, NewUserRepository)

	_, err := WithTX[struct{}](ctx, pool, slog.Default(),
		func(ctx context.Context, tx connectionPool) (struct{}, error) {
			_, err := tx.Exec(ctx,
				`INSERT INTO users (id, username, email, password_hash)
				 VALUES ('5e2b8d2e-1111-4111-8111-111111111111', 'ghost', 'ghost@x.test', 'h')`)
			require.NoError(t, err)
			return struct{}{}, serviceerrs.ErrValidation
		})
	require.ErrorIs(t, err, serviceerrs.ErrValidation)

	var exists bool
	err = pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = 'ghost')`).Scan(&exists)
	require.NoError(t, err)
	assert.False(t, exists)
}
