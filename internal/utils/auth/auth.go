package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/user"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/serviceerrs"
)

const DefaultTokenTTL = time.Hour

const (
	issuer          = "github-repo-explorer"
	minSecretLength = 16
)

type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TokenService signs and verifies HS256 bearer tokens with a shared secret.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("signing secret is not configured")
	}
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf(
			"signing secret must be at least %d characters", minSecretLength)
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// Issue mints a token for id that expires after ttl.
func (s *TokenService) Issue(id user.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				Subject:   id.UserID,
				Issuer:    issuer,
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			},
			Username: id.Username,
		},
	)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("JWT signing: %w", err)
	}
	return tokenString, nil
}

// Verify returns the identity encoded in tokenString. Every failure,
// whether a bad signature, a foreign issuer or an expired token,
// is reported as serviceerrs.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (user.Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || claims.Subject == "" {
		return user.Identity{}, serviceerrs.ErrInvalidToken
	}

	return user.Identity{
		ExpiresAt: claims.ExpiresAt.Time,
		UserID:    claims.Subject,
		Username:  claims.Username,
	}, nil
}
