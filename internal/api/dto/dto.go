package dto

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	passwordvalidator "github.com/wagslane/go-password-validator"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/favorite"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/user"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/serviceerrs"
)

const (
	MinPasswordLength = 6
	// match the users table column widths.
	MaxUsernameLength = 64
	MaxEmailLength    = 255
)

const (
	MsgMissingRegisterFields = "Please enter all fields."
	MsgShortPassword         = "Password must be at least 6 characters long."
	MsgLongUsername          = "Username must be at most 64 characters long."
	MsgLongEmail             = "Email must be at most 255 characters long."
	MsgMissingLoginFields    = "Please provide both email/username and password."
	MsgInvalidFavorite       = "Name, Link, and StarCount are required and must be valid."
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IsValid trims username and email in place. minEntropy of zero skips
// the entropy check.
func (r *RegisterRequest) IsValid(minEntropy float64) error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)

	if r.Username == "" || r.Email == "" || r.Password == "" {
		return serviceerrs.NewValidationError(MsgMissingRegisterFields)
	}
	if utf8.RuneCountInString(r.Username) > MaxUsernameLength {
		return serviceerrs.NewValidationError(MsgLongUsername)
	}
	if utf8.RuneCountInString(r.Email) > MaxEmailLength {
		return serviceerrs.NewValidationError(MsgLongEmail)
	}
	if utf8.RuneCountInString(r.Password) < MinPasswordLength {
		return serviceerrs.NewValidationError(MsgShortPassword)
	}
	if minEntropy > 0 {
		if err := passwordvalidator.Validate(r.Password, minEntropy); err != nil {
			return &serviceerrs.ValidationError{Message: err.Error(), Cause: err}
		}
	}
	return nil
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (r *LoginRequest) IsValid() error {
	r.Identifier = strings.TrimSpace(r.Identifier)
	if r.Identifier == "" || r.Password == "" {
		return serviceerrs.NewValidationError(MsgMissingLoginFields)
	}
	return nil
}

type AuthResponse struct {
	Message  string `json:"message,omitempty"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

type VerifyResponse struct {
	User UserResponse `json:"user"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

// FavoriteRequest has no owner id field: the owner always comes from
// the verified token.
type FavoriteRequest struct {
	StarCount   *int64          `json:"starCount"`
	Owner       *favorite.Owner `json:"owner,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Link        string          `json:"link"`
	Language    string          `json:"language"`
}

func (r *FavoriteRequest) IsValid() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Link = strings.TrimSpace(r.Link)

	var nameErr, linkErr, starsErr error
	if r.Name == "" {
		nameErr = errors.New("name is empty")
	}
	if r.Link == "" {
		linkErr = errors.New("link is empty")
	} else if !isHTTPURL(r.Link) {
		linkErr = errors.New("link is not an absolute http(s) URL")
	}
	switch {
	case r.StarCount == nil:
		starsErr = errors.New("starCount is missing")
	case *r.StarCount < 0:
		starsErr = errors.New("starCount is negative")
	}

	if err := errors.Join(nameErr, linkErr, starsErr); err != nil {
		return &serviceerrs.ValidationError{Message: MsgInvalidFavorite, Cause: err}
	}
	return nil
}

// ToModel must be called after a successful IsValid.
func (r *FavoriteRequest) ToModel() favorite.Favorite {
	f := favorite.Favorite{
		Name:        r.Name,
		Description: r.Description,
		Link:        r.Link,
		Language:    r.Language,
		Owner:       r.Owner,
	}
	if r.StarCount != nil {
		f.StarCount = *r.StarCount
	}
	return f
}

type DeleteFavoriteResponse struct {
	Message string            `json:"message"`
	Note    favorite.Favorite `json:"note"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
