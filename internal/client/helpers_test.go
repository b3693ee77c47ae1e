package client_test

import (
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/handlers"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/client"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/repo/memory"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/router"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/service/accounts"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/service/favorites"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/auth"
)

type testServer struct {
	users  *memory.UserRepository
	favs   *memory.FavoriteRepository
	tokens *auth.TokenService
	srv    *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	tokens, err := auth.NewTokenService("client-test-signing-secret")
	require.NoError(t, err)
	users := memory.NewUserRepository()
	favs := memory.NewFavoriteRepository()
	acc, err := accounts.New(users, tokens, auth.NewPasswordService(bcrypt.MinCost), time.Hour)
	require.NoError(t, err)

	r := router.New(nil, slog.New(slog.DiscardHandler))
	r.SetRouter(handlers.New(
		handlers.NewAuthHandler(acc, 0),
		handlers.NewFavoriteHandler(favorites.New(favs)),
		handlers.NewHealthHandler(nil),
	), tokens)

	srv := httptest.NewServer(r.GetRouter())
	t.Cleanup(srv.Close)
	return &testServer{users: users, favs: favs, tokens: tokens, srv: srv}
}

func (ts *testServer) client(t *testing.T) *client.HTTPClient {
	t.Helper()

	c, err := client.New(ts.srv.URL, "")
	require.NoError(t, err)
	return c
}

func stars(n int64) *int64 {
	return &n
}
