package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/dto"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/favorite"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/logger"
)

const (
	DefaultAPIPrefix = "/api"
	requestTimeout   = 10 * time.Second
	maxErrorBody     = 4 << 10
)

// APIError is a non-2xx answer from the server. Message is the
// server's "message" field, or the raw body when it is not JSON.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

// Rejected reports whether the server refused the bearer token.
func (e *APIError) Rejected() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

type HTTPClient struct {
	client    http.Client
	baseURL   *url.URL
	apiPrefix string
}

// New accepts either "host:port" or a full "http(s)://host:port" base.
func New(address, apiPrefix string) (*HTTPClient, error) {
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}
	base, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("failed to parse server address: %w", err)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("server address %q has no host", address)
	}
	if apiPrefix == "" {
		apiPrefix = DefaultAPIPrefix
	}
	return &HTTPClient{
		client:    http.Client{},
		baseURL:   base,
		apiPrefix: "/" + strings.Trim(apiPrefix, "/"),
	}, nil
}

func (c *HTTPClient) Register(ctx context.Context, req dto.RegisterRequest,
) (dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := c.do(ctx, http.MethodPost, c.apiPrefix+"/auth/register", "",
		req, http.StatusCreated, &out)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("register: %w", err)
	}
	return out, nil
}

func (c *HTTPClient) Login(ctx context.Context, req dto.LoginRequest,
) (dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := c.do(ctx, http.MethodPost, c.apiPrefix+"/auth/login", "",
		req, http.StatusOK, &out)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("login: %w", err)
	}
	return out, nil
}

func (c *HTTPClient) Verify(ctx context.Context, token string,
) (dto.UserResponse, error) {
	var out dto.VerifyResponse
	err := c.do(ctx, http.MethodGet, c.apiPrefix+"/auth/verify", token,
		nil, http.StatusOK, &out)
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("verify: %w", err)
	}
	return out.User, nil
}

func (c *HTTPClient) ListFavorites(ctx context.Context, token string,
) ([]favorite.Favorite, error) {
	out := make([]favorite.Favorite, 0)
	err := c.do(ctx, http.MethodGet, c.apiPrefix+"/user/favorites", token,
		nil, http.StatusOK, &out)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return out, nil
}

func (c *HTTPClient) AddFavorite(ctx context.Context, token string,
	req dto.FavoriteRequest,
) (favorite.Favorite, error) {
	var out favorite.Favorite
	err := c.do(ctx, http.MethodPost, c.apiPrefix+"/user/favorites", token,
		req, http.StatusCreated, &out)
	if err != nil {
		return favorite.Favorite{}, fmt.Errorf("add favorite: %w", err)
	}
	return out, nil
}

// DeleteFavorite returns the removed favorite.
func (c *HTTPClient) DeleteFavorite(ctx context.Context, token, id string,
) (favorite.Favorite, error) {
	var out dto.DeleteFavoriteResponse
	err := c.do(ctx, http.MethodDelete,
		c.apiPrefix+"/user/favorites/"+url.PathEscape(id), token,
		nil, http.StatusOK, &out)
	if err != nil {
		return favorite.Favorite{}, fmt.Errorf("delete favorite: %w", err)
	}
	return out.Note, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/ping", "", nil, http.StatusOK, nil); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context,
	method, path, token string,
	in any, wantStatus int, out any,
) error {
	body := io.Reader(http.NoBody)
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode the request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	target := c.baseURL.JoinPath(path)
	tCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	request, err := http.NewRequestWithContext(tCtx, method, target.String(), body)
	if err != nil {
		return fmt.Errorf("failed to create the request: %w", err)
	}
	if in != nil {
		request.Header.Set(model.HeaderContentType, "application/json")
	}
	if token != "" {
		request.Header.Set(model.HeaderAuthorization, model.BearerPrefix+token)
	}

	resp, err := c.client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to send the request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log := logger.FromContext(ctx)
			log.LogAttrs(
				ctx,
				slog.LevelError,
				"failed to close the response body",
				slog.Any(model.KeyLoggerError, err),
			)
		}
	}()

	if resp.StatusCode != wantStatus {
		return newAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if ct := resp.Header.Get(model.HeaderContentType); !strings.HasPrefix(ct, "application/json") {
		return fmt.Errorf("unexpected content type %q", ct)
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("response decoding error: %w", err)
	}
	return nil
}

func newAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return errors.Join(apiErr, fmt.Errorf("failed to read the body: %w", err))
	}
	var msg dto.MessageResponse
	if json.Unmarshal(raw, &msg) == nil && msg.Message != "" {
		apiErr.Message = msg.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
