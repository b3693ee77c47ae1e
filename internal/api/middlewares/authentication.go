package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/response"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/user"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/logger"
)

const (
	MsgNoToken      = "Unauthorized: No token provided"
	MsgInvalidToken = "Forbidden: Invalid token"
)

type TokenVerifier interface {
	Verify(token string) (user.Identity, error)
}

// Authentication requires "Authorization: Bearer <token>". A missing
// token is answered with 401, a token that fails verification with 403.
func Authentication(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		authFunc := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenStr, ok := bearerToken(r.Header.Get(model.HeaderAuthorization))
			if !ok {
				log.LogAttrs(ctx,
					slog.LevelDebug,
					"no bearer token in request",
				)
				response.Message(w, r, http.StatusUnauthorized, MsgNoToken)
				return
			}

			identity, err := tokens.Verify(tokenStr)
			if err != nil {
				log.LogAttrs(ctx,
					slog.LevelInfo,
					"authentication failed",
					slog.Any(model.KeyLoggerError, err),
				)
				response.Message(w, r, http.StatusForbidden, MsgInvalidToken)
				return
			}

			idCtx := context.WithValue(ctx, model.KeyContextIdentity, identity)
			idCtx = logger.WithContext(idCtx,
				log.With(slog.String("user_id", identity.UserID)))
			next.ServeHTTP(w, r.WithContext(idCtx))
		}
		return http.HandlerFunc(authFunc)
	}
}

// IdentityFromContext returns the identity stored by Authentication.
func IdentityFromContext(ctx context.Context) (user.Identity, bool) {
	id, ok := ctx.Value(model.KeyContextIdentity).(user.Identity)
	return id, ok
}

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, model.BearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, model.BearerPrefix))
	return token, token != ""
}
