// Package favorites manages the repositories a user has saved. Every
// operation is scoped to the owning user id taken from a verified token.
package favorites

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/favorite"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/serviceerrs"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/logger"
)

type Service struct {
	favorites favorite.Repository
}

func New(favorites favorite.Repository) *Service {
	return &Service{favorites: favorites}
}

// Add saves f for userID. Any id or owner set by the caller is replaced.
func (s *Service) Add(ctx context.Context, userID string, f favorite.Favorite,
) (favorite.Favorite, error) {
	f.ID = ""
	f.UserID = userID

	if err := s.favorites.Create(ctx, &f); err != nil {
		if errors.Is(err, serviceerrs.ErrAlreadyFavorited) {
			return favorite.Favorite{}, serviceerrs.ErrAlreadyFavorited
		}
		return favorite.Favorite{}, fmt.Errorf("failed to save favorite: %w", err)
	}

	logger.FromContext(ctx).LogAttrs(ctx, slog.LevelDebug, "favorite saved",
		slog.String("favorite_id", f.ID),
		slog.String("link", f.Link))
	return f, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]favorite.Favorite, error) {
	list, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	if list == nil {
		list = []favorite.Favorite{}
	}
	return list, nil
}

// Remove deletes the favorite when userID owns it. A favorite that does
// not exist and one owned by somebody else look the same.
func (s *Service) Remove(ctx context.Context, userID, id string) (favorite.Favorite, error) {
	f, err := s.favorites.DeleteOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			return favorite.Favorite{}, serviceerrs.ErrNotFound
		}
		return favorite.Favorite{}, fmt.Errorf("failed to delete favorite: %w", err)
	}
	return f, nil
}
