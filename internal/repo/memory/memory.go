// Package memory holds in-process repositories with the same uniqueness
// and ownership rules as the PostgreSQL ones. They back service and
// HTTP tests that run without a database.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/favorite"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/user"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/serviceerrs"
)

type UserRepository struct {
	users map[string]user.User
	mu    sync.RWMutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]user.User)}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := ctx.Err(); err != nil {
		return err //nolint: wrapcheck // context error
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.existsLocked(u.Username, u.Email) {
		return serviceerrs.ErrUserExists
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) Exists(ctx context.Context, username, email string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err //nolint: wrapcheck // context error
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.existsLocked(username, email), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err //nolint: wrapcheck // context error
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return user.User{}, serviceerrs.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string,
) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err //nolint: wrapcheck // context error
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var byEmail *user.User
	for _, u := range r.users {
		if u.Username == identifier {
			return u, nil
		}
		if u.Email == identifier {
			byEmail = &u
		}
	}
	if byEmail != nil {
		return *byEmail, nil
	}
	return user.User{}, serviceerrs.ErrNotFound
}

// Delete removes a user and, through favorites when given, cascades to
// the user's rows.
func (r *UserRepository) Delete(id string, favorites *FavoriteRepository) {
	r.mu.Lock()
	delete(r.users, id)
	r.mu.Unlock()

	if favorites != nil {
		favorites.deleteByUser(id)
	}
}

func (r *UserRepository) existsLocked(username, email string) bool {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true
		}
	}
	return false
}

type FavoriteRepository struct {
	favorites []favorite.Favorite
	mu        sync.RWMutex
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{}
}

func (r *FavoriteRepository) Create(ctx context.Context, f *favorite.Favorite) error {
	if err := ctx.Err(); err != nil {
		return err //nolint: wrapcheck // context error
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.favorites {
		if existing.UserID == f.UserID && existing.Link == f.Link {
			return serviceerrs.ErrAlreadyFavorited
		}
	}
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.CreatedAt = time.Now()
	r.favorites = append(r.favorites, *f)
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string,
) ([]favorite.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint: wrapcheck // context error
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]favorite.Favorite, 0)
	for i := len(r.favorites) - 1; i >= 0; i-- {
		if r.favorites[i].UserID == userID {
			out = append(out, r.favorites[i])
		}
	}
	return out, nil
}

func (r *FavoriteRepository) DeleteOwned(ctx context.Context, id, userID string,
) (favorite.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return favorite.Favorite{}, err //nolint: wrapcheck // context error
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.favorites, func(f favorite.Favorite) bool {
		return f.ID == id && f.UserID == userID
	})
	if idx < 0 {
		return favorite.Favorite{}, serviceerrs.ErrNotFound
	}
	deleted := r.favorites[idx]
	r.favorites = slices.Delete(r.favorites, idx, idx+1)
	return deleted, nil
}

func (r *FavoriteRepository) deleteByUser(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.favorites = slices.DeleteFunc(r.favorites, func(f favorite.Favorite) bool {
		return f.UserID == userID
	})
}
