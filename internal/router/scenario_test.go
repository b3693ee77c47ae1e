package router_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/handlers"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/repo/memory"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/router"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/service/accounts"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/service/favorites"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/auth"
)

type api struct {
	t   *testing.T
	url string
}

func newAPI(t *testing.T) *api {
	t.Helper()

	tokens, err := auth.NewTokenService("scenario-test-signing-secret")
	require.NoError(t, err)
	acc, err := accounts.New(memory.NewUserRepository(), tokens,
		auth.NewPasswordService(bcrypt.MinCost), time.Hour)
	require.NoError(t, err)

	h := handlers.New(
		handlers.NewAuthHandler(acc, 0),
		handlers.NewFavoriteHandler(favorites.New(memory.NewFavoriteRepository())),
		handlers.NewHealthHandler(nil),
	)
	r := router.New(nil, slog.New(slog.DiscardHandler))
	r.SetRouter(h, tokens)

	srv := httptest.NewServer(r.GetRouter())
	t.Cleanup(srv.Close)
	return &api{t: t, url: srv.URL}
}

func (a *api) call(method, path, token, body string) (int, []byte) {
	a.t.Helper()

	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, a.url+path, rdr)
	require.NoError(a.t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(a.t, err)
	defer func() { require.NoError(a.t, resp.Body.Close()) }()
	data, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	return resp.StatusCode, data
}

func (a *api) object(data []byte) map[string]any {
	a.t.Helper()

	var m map[string]any
	require.NoError(a.t, json.Unmarshal(data, &m))
	return m
}

func TestScenario_registerLoginFavorites(t *testing.T) {
	a := newAPI(t)

	code, data := a.call(http.MethodPost, "/api/auth/register", "",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, code)
	t1, _ := a.object(data)["token"].(string)
	require.NotEmpty(t, t1)

	code, data = a.call(http.MethodPost, "/api/auth/login", "",
		`{"identifier":"alice","password":"secret1"}`)
	require.Equal(t, http.StatusOK, code)
	t2, _ := a.object(data)["token"].(string)
	require.NotEmpty(t, t2)
	assert.NotEqual(t, t1, t2)

	code, data = a.call(http.MethodGet, "/api/auth/verify", t2, "")
	require.Equal(t, http.StatusOK, code)
	u, _ := a.object(data)["user"].(map[string]any)
	assert.Equal(t, "alice", u["username"])
	assert.Equal(t, "alice@example.com", u["email"])

	code, data = a.call(http.MethodGet, "/api/user/favorites", t1, "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(data))

	repo1 := `{"name":"repo1","description":"","starCount":3,` +
		`"link":"https://github.com/octocat/repo1","language":"Go"}`
	code, data = a.call(http.MethodPost, "/api/user/favorites", t1, repo1)
	require.Equal(t, http.StatusCreated, code)
	id, _ := a.object(data)["id"].(string)
	require.NotEmpty(t, id)

	code, data = a.call(http.MethodPost, "/api/user/favorites", t1, repo1)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, handlers.MsgAlreadyFavorited, a.object(data)["message"])

	code, _ = a.call(http.MethodDelete, "/api/user/favorites/"+id, t1, "")
	assert.Equal(t, http.StatusOK, code)

	code, data = a.call(http.MethodDelete, "/api/user/favorites/"+id, t1, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, handlers.MsgFavoriteNotFound, a.object(data)["message"])
}

func TestScenario_isolationBetweenUsers(t *testing.T) {
	a := newAPI(t)

	register := func(name string) string {
		code, data := a.call(http.MethodPost, "/api/auth/register", "",
			`{"username":"`+name+`","email":"`+name+`@example.com","password":"secret1"}`)
		require.Equal(t, http.StatusCreated, code)
		token, _ := a.object(data)["token"].(string)
		return token
	}
	ta, tb := register("alice"), register("bob")

	code, data := a.call(http.MethodPost, "/api/user/favorites", ta,
		`{"name":"r","starCount":1,"link":"https://github.com/o/r","userId":"bob"}`)
	require.Equal(t, http.StatusCreated, code)
	id, _ := a.object(data)["id"].(string)

	code, data = a.call(http.MethodGet, "/api/user/favorites", tb, "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(data))

	code, _ = a.call(http.MethodDelete, "/api/user/favorites/"+id, tb, "")
	assert.Equal(t, http.StatusNotFound, code)

	code, data = a.call(http.MethodGet, "/api/user/favorites", ta, "")
	require.Equal(t, http.StatusOK, code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0]["id"])

	code, _ = a.call(http.MethodPost, "/api/auth/register", "",
		`{"username":"alice","email":"new@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}
