package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/config"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/user"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/auth"
)

const testSecret = "router-test-signing-secret"

type stubHandler struct {
	name string
}

func (s stubHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Handler", s.name)
	w.WriteHeader(http.StatusTeapot)
}

type h struct{}

func (h) Register(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "register"}.ServeHTTP(w, r)
}
func (h) Login(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "login"}.ServeHTTP(w, r)
}
func (h) Verify(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "verify"}.ServeHTTP(w, r)
}
func (h) AddFavorite(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "add_favorite"}.ServeHTTP(w, r)
}
func (h) ListFavorites(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "list_favorites"}.ServeHTTP(w, r)
}
func (h) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "delete_favorite"}.ServeHTTP(w, r)
}
func (h) Ping(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "ping"}.ServeHTTP(w, r)
}

func newStubServer(t *testing.T, cfg *config.Config) (*httptest.Server, string) {
	t.Helper()

	tokens, err := auth.NewTokenService(testSecret)
	require.NoError(t, err)
	token, err := tokens.Issue(user.Identity{UserID: "u1", Username: "alice"}, time.Hour)
	require.NoError(t, err)

	r := New(cfg, nil)
	r.SetRouter(h{}, tokens)
	srv := httptest.NewServer(r.GetRouter())
	t.Cleanup(srv.Close)
	return srv, token
}

func do(t *testing.T, method, url, token, body string) *http.Response {
	t.Helper()

	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rdr)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestCustomRouter_Route_happyTests(t *testing.T) {
	srv, token := newStubServer(t, nil)

	tests := []struct {
		method   string
		path     string
		auth     bool
		body     string
		wantName string
	}{
		{http.MethodPost, "/api/auth/register", false, `{}`, "register"},
		{http.MethodPost, "/api/auth/login", false, `{}`, "login"},
		{http.MethodGet, "/api/auth/verify", true, "", "verify"},
		{http.MethodGet, "/api/user/favorites", true, "", "list_favorites"},
		{http.MethodPost, "/api/user/favorites", true, `{}`, "add_favorite"},
		{http.MethodDelete, "/api/user/favorites/42", true, "", "delete_favorite"},
		{http.MethodGet, "/ping", false, "", "ping"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			tok := ""
			if tt.auth {
				tok = token
			}
			resp := do(t, tt.method, srv.URL+tt.path, tok, tt.body)
			require.NoError(t, resp.Body.Close())

			assert.Equal(t, http.StatusTeapot, resp.StatusCode)
			assert.Equal(t, tt.wantName, resp.Header.Get("X-Handler"))
			assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
		})
	}
}

func TestCustomRouter_Route_protected(t *testing.T) {
	srv, _ := newStubServer(t, nil)

	tests := []struct {
		method   string
		path     string
		token    string
		wantCode int
	}{
		{http.MethodGet, "/api/auth/verify", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/user/favorites", "", http.StatusUnauthorized},
		{http.MethodDelete, "/api/user/favorites/1", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/auth/verify", "forged", http.StatusForbidden},
		{http.MethodGet, "/api/user/favorites", "forged", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" "+tt.token, func(t *testing.T) {
			resp := do(t, tt.method, srv.URL+tt.path, tt.token, "")
			require.NoError(t, resp.Body.Close())
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Empty(t, resp.Header.Get("X-Handler"))
		})
	}
}

func TestCustomRouter_Route_wrong_routes(t *testing.T) {
	srv, token := newStubServer(t, nil)

	tests := []struct {
		method   string
		path     string
		wantCode int
	}{
		{http.MethodPost, "/", http.StatusNotFound},
		{http.MethodGet, "/api/", http.StatusNotFound},
		{http.MethodGet, "/api/repos", http.StatusNotFound},
		{http.MethodPost, "/api/user/register", http.StatusNotFound},
		{http.MethodGet, "/ping/", http.StatusNotFound},

		{http.MethodGet, "/api/auth/register", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/auth/login", http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/auth/verify", http.StatusMethodNotAllowed},
		{http.MethodPut, "/api/user/favorites", http.StatusMethodNotAllowed},
		{http.MethodPost, "/ping", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp := do(t, tt.method, srv.URL+tt.path, token, "")
			require.NoError(t, resp.Body.Close())
			assert.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}

func TestCustomRouter_NotFound_body(t *testing.T) {
	srv, _ := newStubServer(t, nil)

	resp := do(t, http.MethodGet, srv.URL+"/nowhere", "", "")
	defer func() { require.NoError(t, resp.Body.Close()) }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	var sb strings.Builder
	_, err := io.Copy(&sb, resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Endpoint not found"}`, sb.String())
}

func TestCustomRouter_contentType(t *testing.T) {
	srv, _ := newStubServer(t, nil)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/auth/login",
		strings.NewReader("identifier=alice"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestCustomRouter_prefixAndCORS(t *testing.T) {
	srv, _ := newStubServer(t, &config.Config{
		APIPrefix:          "/v2",
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	})

	resp := do(t, http.MethodPost, srv.URL+"/v2/auth/login", "", `{}`)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "login", resp.Header.Get("X-Handler"))

	resp = do(t, http.MethodPost, srv.URL+"/api/auth/login", "", `{}`)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/v2/user/favorites", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get("X-Handler"))
}
