package handlers

import (
	"context"
	"net/http"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/response"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

// NewHealthHandler accepts a nil db for deployments without a store.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		response.Message(w, r, http.StatusOK, "pong")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), model.DefaultConnectTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		internalError(w, r, err, MsgServerError)
		return
	}
	response.Message(w, r, http.StatusOK, "pong")
}
