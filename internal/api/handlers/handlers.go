package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/response"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/logger"
)

const maxBodyBytes = 1 << 20

const MsgServerError = "Server error."

// HTTPHandler bundles every endpoint the router mounts.
type HTTPHandler struct {
	*AuthHandler
	*FavoriteHandler
	*HealthHandler
}

func New(auth *AuthHandler, favorites *FavoriteHandler, health *HealthHandler,
) *HTTPHandler {
	return &HTTPHandler{
		AuthHandler:     auth,
		FavoriteHandler: favorites,
		HealthHandler:   health,
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// internalError logs err and answers with a generic 500 so no internal
// detail reaches the client.
func internalError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	ctx := r.Context()
	logger.FromContext(ctx).LogAttrs(ctx,
		slog.LevelError,
		"request failed",
		slog.String("path", r.URL.Path),
		slog.Any(model.KeyLoggerError, err),
	)
	response.Message(w, r, http.StatusInternalServerError, msg)
}
