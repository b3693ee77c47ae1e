package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/favorite"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/serviceerrs"
)

const (
	favoriteColumns = `id, user_id, name, description, star_count, link, language,
		owner_login, owner_avatar_url, created_at`

	queryInsertFavorite = `INSERT INTO favorites (
			id, user_id, name, description, star_count, link, language,
			owner_login, owner_avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`
	queryFavoritesByUser = `SELECT ` + favoriteColumns + ` FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC, id`
	queryDeleteOwnedFavorite = `DELETE FROM favorites
		WHERE id = $1 AND user_id = $2
		RETURNING ` + favoriteColumns
)

type FavoriteRepository struct {
	DB
}

func NewFavoriteRepository(pool connectionPool, log *slog.Logger) *FavoriteRepository {
	return &FavoriteRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

// Create stores f for f.UserID. A second row with the same link for the
// same user yields serviceerrs.ErrAlreadyFavorited.
func (r *FavoriteRepository) Create(ctx context.Context, f *favorite.Favorite) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}

	var login, avatar *string
	if f.Owner != nil {
		login, avatar = &f.Owner.Login, &f.Owner.AvatarURL
	}

	err := r.pool.QueryRow(ctx, queryInsertFavorite,
		f.ID, f.UserID, f.Name, f.Description, f.StarCount, f.Link, f.Language,
		login, avatar,
	).Scan(&f.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return serviceerrs.ErrAlreadyFavorited
		}
		return fmt.Errorf("failed to insert favorite: %w", err)
	}
	return nil
}

// ListByUser returns the user's favorites, newest first. The result is
// never nil.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string,
) ([]favorite.Favorite, error) {
	favorites := make([]favorite.Favorite, 0)
	if _, err := uuid.Parse(userID); err != nil {
		return favorites, nil
	}

	rows, err := r.pool.Query(ctx, queryFavoritesByUser, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}
	return favorites, nil
}

// DeleteOwned removes the favorite only when userID owns it. Unknown,
// malformed and foreign ids all yield serviceerrs.ErrNotFound.
func (r *FavoriteRepository) DeleteOwned(ctx context.Context, id, userID string,
) (favorite.Favorite, error) {
	if _, err := uuid.Parse(id); err != nil {
		return favorite.Favorite{}, serviceerrs.ErrNotFound
	}

	f, err := scanFavorite(r.pool.QueryRow(ctx, queryDeleteOwnedFavorite, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return favorite.Favorite{}, serviceerrs.ErrNotFound
		}
		return favorite.Favorite{}, err
	}
	return f, nil
}

func scanFavorite(row pgx.Row) (favorite.Favorite, error) {
	var (
		f             favorite.Favorite
		login, avatar *string
	)
	err := row.Scan(
		&f.ID, &f.UserID, &f.Name, &f.Description, &f.StarCount, &f.Link,
		&f.Language, &login, &avatar, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return favorite.Favorite{}, err //nolint: wrapcheck // sentinel checked by callers
		}
		return favorite.Favorite{}, fmt.Errorf("failed to scan favorite: %w", err)
	}
	if login != nil || avatar != nil {
		f.Owner = &favorite.Owner{}
		if login != nil {
			f.Owner.Login = *login
		}
		if avatar != nil {
			f.Owner.AvatarURL = *avatar
		}
	}
	return f, nil
}
