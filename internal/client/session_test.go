package client_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/dto"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/client"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/favorite"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/user"
)

func TestSession_registerLoginLogout(t *testing.T) {
	ts := newTestServer(t)
	store := &client.MemoryTokenStore{}
	s := client.NewSession(ts.client(t), store)
	ctx := context.Background()

	assert.Equal(t, client.StateAnonymous, s.State())

	require.NoError(t, s.Register(ctx, "alice", "alice@example.com", "secret1"))
	assert.Equal(t, client.StateAuthenticated, s.State())
	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, s.Token(), stored)

	require.NoError(t, s.Logout())
	assert.Equal(t, client.StateAnonymous, s.State())
	_, ok = s.User()
	assert.False(t, ok)
	stored, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)

	require.NoError(t, s.Login(ctx, "alice", "secret1"))
	assert.Equal(t, client.StateAuthenticated, s.State())
}

func TestSession_failedLoginStaysAnonymous(t *testing.T) {
	ts := newTestServer(t)
	s := client.NewSession(ts.client(t), &client.MemoryTokenStore{})

	err := s.Login(context.Background(), "ghost", "secret1")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.StateAnonymous, s.State())
	assert.Empty(t, s.Token())
}

func TestSession_Hydrate(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	first := client.NewSession(ts.client(t), &client.MemoryTokenStore{})
	require.NoError(t, first.Register(ctx, "alice", "alice@example.com", "secret1"))
	alice, _ := first.User()
	valid := first.Token()

	expired, err := ts.tokens.Issue(user.Identity{UserID: alice.ID, Username: "alice"}, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name      string
		stored    string
		wantState client.State
	}{
		{"nothing stored", "", client.StateAnonymous},
		{"valid token", valid, client.StateAuthenticated},
		{"expired token", expired, client.StateAnonymous},
		{"garbage token", "not-a-jwt", client.StateAnonymous},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &client.MemoryTokenStore{}
			require.NoError(t, store.Save(tt.stored))

			s := client.NewSession(ts.client(t), store)
			require.NoError(t, s.Hydrate(ctx))
			assert.Equal(t, tt.wantState, s.State())

			left, err := store.Load()
			require.NoError(t, err)
			if tt.wantState == client.StateAuthenticated {
				assert.Equal(t, tt.stored, left)
				u, _ := s.User()
				assert.Equal(t, alice, u)
			} else {
				assert.Empty(t, left)
			}
		})
	}
}

func TestSession_Hydrate_deletedUser(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	store := &client.MemoryTokenStore{}

	s := client.NewSession(ts.client(t), store)
	require.NoError(t, s.Register(ctx, "alice", "alice@example.com", "secret1"))
	u, _ := s.User()
	ts.users.Delete(u.ID, ts.favs)

	fresh := client.NewSession(ts.client(t), store)
	require.NoError(t, fresh.Hydrate(ctx))
	assert.Equal(t, client.StateAnonymous, fresh.State())
}

func TestSession_favorites(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	s := client.NewSession(ts.client(t), &client.MemoryTokenStore{})

	_, err := s.Favorites(ctx)
	require.ErrorIs(t, err, client.ErrNotAuthenticated)

	require.NoError(t, s.Register(ctx, "alice", "alice@example.com", "secret1"))
	f, err := s.AddFavorite(ctx, dto.FavoriteRequest{
		Name: "hello-world", Link: "https://github.com/octocat/hello-world", StarCount: stars(7),
	})
	require.NoError(t, err)

	list, err := s.Favorites(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, f.ID, list[0].ID)

	removed, err := s.RemoveFavorite(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.ID, removed.ID)

	_, err = s.RemoveFavorite(ctx, f.ID)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.StateAuthenticated, s.State())
}

type fakeAPI struct {
	client.API
	verifyErr error
	listErr   error
}

func (f *fakeAPI) Verify(context.Context, string) (dto.UserResponse, error) {
	if f.verifyErr != nil {
		return dto.UserResponse{}, f.verifyErr
	}
	return dto.UserResponse{ID: "u1", Username: "alice"}, nil
}

func (f *fakeAPI) ListFavorites(context.Context, string) ([]favorite.Favorite, error) {
	return nil, f.listErr
}

func TestSession_rejectedTokenClearsSession(t *testing.T) {
	tests := []struct {
		name      string
		listErr   error
		wantState client.State
	}{
		{"unauthorized", &client.APIError{StatusCode: 401}, client.StateAnonymous},
		{"forbidden", &client.APIError{StatusCode: 403}, client.StateAnonymous},
		{"server error", &client.APIError{StatusCode: 500}, client.StateAuthenticated},
		{"network error", errors.New("connection refused"), client.StateAuthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &client.MemoryTokenStore{}
			require.NoError(t, store.Save("stored-token"))
			s := client.NewSession(&fakeAPI{listErr: tt.listErr}, store)
			require.NoError(t, s.Hydrate(context.Background()))
			require.Equal(t, client.StateAuthenticated, s.State())

			_, err := s.Favorites(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.wantState, s.State())
			if tt.wantState == client.StateAnonymous {
				assert.ErrorIs(t, err, client.ErrNotAuthenticated)
				left, _ := store.Load()
				assert.Empty(t, left)
			}
		})
	}
}

func TestSession_Hydrate_transportError(t *testing.T) {
	store := &client.MemoryTokenStore{}
	require.NoError(t, store.Save("stored-token"))
	down := errors.New("dial tcp: connection refused")

	s := client.NewSession(&fakeAPI{verifyErr: down}, store)
	err := s.Hydrate(context.Background())
	require.ErrorIs(t, err, down)
	assert.Equal(t, client.StateAnonymous, s.State())
	left, _ := store.Load()
	assert.Empty(t, left)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "anonymous", client.StateAnonymous.String())
	assert.Equal(t, "authenticated", client.StateAuthenticated.String())
}
