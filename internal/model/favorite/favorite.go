package favorite

import (
	"context"
	"time"
)

type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

type Favorite struct {
	CreatedAt   time.Time `json:"createdAt"`
	Owner       *Owner    `json:"owner,omitempty"`
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Language    string    `json:"language"`
	StarCount   int64     `json:"starCount"`
}

type Repository interface {
	Create(ctx context.Context, f *Favorite) error
	ListByUser(ctx context.Context, userID string) ([]Favorite, error)
	DeleteOwned(ctx context.Context, id, userID string) (Favorite, error)
}
