package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/dto"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/favorite"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/logger"
)

var ErrNotAuthenticated = errors.New("session is not authenticated")

type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

type API interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Verify(ctx context.Context, token string) (dto.UserResponse, error)
	ListFavorites(ctx context.Context, token string) ([]favorite.Favorite, error)
	AddFavorite(ctx context.Context, token string, req dto.FavoriteRequest) (favorite.Favorite, error)
	DeleteFavorite(ctx context.Context, token, id string) (favorite.Favorite, error)
}

// Session is the client side authentication state. It starts anonymous,
// becomes authenticated after Hydrate, Login or Register succeeds, and
// falls back to anonymous on Logout or whenever the server rejects the
// token.
type Session struct {
	api   API
	store TokenStore
	user  dto.UserResponse
	token string
	mu    sync.RWMutex
}

func NewSession(api API, store TokenStore) *Session {
	return &Session{api: api, store: store}
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return StateAnonymous
	}
	return StateAuthenticated
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) User() (dto.UserResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.token != ""
}

// Hydrate restores a persisted token and checks it against the server.
// A missing or rejected token leaves the session anonymous without an
// error. Any other verify failure also clears the token and is returned.
func (s *Session) Hydrate(ctx context.Context) error {
	token, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load token: %w", err)
	}
	if token == "" {
		s.reset()
		return nil
	}

	u, err := s.api.Verify(ctx, token)
	if err != nil {
		s.drop(ctx, err)
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil
		}
		return err
	}
	s.set(token, u)
	return nil
}

func (s *Session) Login(ctx context.Context, identifier, password string) error {
	resp, err := s.api.Login(ctx, dto.LoginRequest{
		Identifier: identifier,
		Password:   password,
	})
	if err != nil {
		return err
	}
	return s.establish(ctx, resp.Token)
}

func (s *Session) Register(ctx context.Context, username, email, password string) error {
	resp, err := s.api.Register(ctx, dto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	return s.establish(ctx, resp.Token)
}

func (s *Session) Logout() error {
	s.reset()
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

func (s *Session) Favorites(ctx context.Context) ([]favorite.Favorite, error) {
	token, err := s.requireToken()
	if err != nil {
		return nil, err
	}
	list, err := s.api.ListFavorites(ctx, token)
	if err != nil {
		return nil, s.checkRejected(ctx, err)
	}
	return list, nil
}

func (s *Session) AddFavorite(ctx context.Context, req dto.FavoriteRequest,
) (favorite.Favorite, error) {
	token, err := s.requireToken()
	if err != nil {
		return favorite.Favorite{}, err
	}
	f, err := s.api.AddFavorite(ctx, token, req)
	if err != nil {
		return favorite.Favorite{}, s.checkRejected(ctx, err)
	}
	return f, nil
}

func (s *Session) RemoveFavorite(ctx context.Context, id string) (favorite.Favorite, error) {
	token, err := s.requireToken()
	if err != nil {
		return favorite.Favorite{}, err
	}
	f, err := s.api.DeleteFavorite(ctx, token, id)
	if err != nil {
		return favorite.Favorite{}, s.checkRejected(ctx, err)
	}
	return f, nil
}

// establish persists a freshly issued token and loads the full user
// record through Verify.
func (s *Session) establish(ctx context.Context, token string) error {
	u, err := s.api.Verify(ctx, token)
	if err != nil {
		s.drop(ctx, err)
		return err
	}
	if err = s.store.Save(token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	s.set(token, u)
	return nil
}

func (s *Session) requireToken() (string, error) {
	token := s.Token()
	if token == "" {
		return "", ErrNotAuthenticated
	}
	return token, nil
}

func (s *Session) checkRejected(ctx context.Context, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Rejected() {
		s.drop(ctx, err)
		return errors.Join(ErrNotAuthenticated, err)
	}
	return err
}

func (s *Session) drop(ctx context.Context, cause error) {
	log := logger.FromContext(ctx)
	log.LogAttrs(ctx, slog.LevelInfo, "session token dropped",
		slog.Any(model.KeyLoggerError, cause))

	s.reset()
	if err := s.store.Clear(); err != nil {
		log.LogAttrs(ctx, slog.LevelError, "failed to clear token",
			slog.Any(model.KeyLoggerError, err))
	}
}

func (s *Session) set(token string, u dto.UserResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = u
}

func (s *Session) reset() {
	s.set("", dto.UserResponse{})
}
