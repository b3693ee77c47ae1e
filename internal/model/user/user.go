package user

import (
	"context"
	"time"
)

type User struct {
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
}

// Identity is the decoded payload of a bearer token.
type Identity struct {
	ExpiresAt time.Time
	UserID    string
	Username  string
}

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (User, error)
	FindByIdentifier(ctx context.Context, identifier string) (User, error)
	Exists(ctx context.Context, username, email string) (bool, error)
}
