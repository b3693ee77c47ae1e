package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/dto"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/middlewares"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/response"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/favorite"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/serviceerrs"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/logger"
)

const (
	MsgAlreadyFavorited = "This repository is already in your favorites."
	MsgFavoriteNotFound = "Repository not found or already deleted"
	MsgFavoriteDeleted  = "Saved repo deleted"
	MsgSaveFailed       = "Failed to save repository"
	MsgListFailed       = "Failed to fetch repositories"
	MsgDeleteFailed     = "Failed to delete saved repo"
)

const favoriteIDPathParam = "id"

type FavoriteService interface {
	Add(ctx context.Context, userID string, f favorite.Favorite) (favorite.Favorite, error)
	List(ctx context.Context, userID string) ([]favorite.Favorite, error)
	Remove(ctx context.Context, userID, id string) (favorite.Favorite, error)
}

type FavoriteHandler struct {
	favorites FavoriteService
}

func NewFavoriteHandler(favorites FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req dto.FavoriteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.FromContext(r.Context()).LogAttrs(r.Context(), slog.LevelDebug,
			"bad favorite body", slog.Any(model.KeyLoggerError, err))
		response.Message(w, r, http.StatusBadRequest, dto.MsgInvalidFavorite)
		return
	}
	if err := req.IsValid(); err != nil {
		logger.FromContext(r.Context()).LogAttrs(r.Context(), slog.LevelDebug,
			"invalid favorite", slog.Any(model.KeyLoggerError, err))
		response.Message(w, r, http.StatusBadRequest, dto.MsgInvalidFavorite)
		return
	}

	saved, err := h.favorites.Add(r.Context(), userID, req.ToModel())
	if err != nil {
		if errors.Is(err, serviceerrs.ErrAlreadyFavorited) {
			response.Message(w, r, http.StatusConflict, MsgAlreadyFavorited)
			return
		}
		internalError(w, r, err, MsgSaveFailed)
		return
	}

	response.JSON(w, r, http.StatusCreated, saved)
}

func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownerID(w, r)
	if !ok {
		return
	}

	list, err := h.favorites.List(r.Context(), userID)
	if err != nil {
		internalError(w, r, err, MsgListFailed)
		return
	}
	if list == nil {
		list = []favorite.Favorite{}
	}
	response.JSON(w, r, http.StatusOK, list)
}

func (h *FavoriteHandler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownerID(w, r)
	if !ok {
		return
	}

	deleted, err := h.favorites.Remove(r.Context(), userID,
		chi.URLParam(r, favoriteIDPathParam))
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			response.Message(w, r, http.StatusNotFound, MsgFavoriteNotFound)
			return
		}
		internalError(w, r, err, MsgDeleteFailed)
		return
	}

	response.JSON(w, r, http.StatusOK, dto.DeleteFavoriteResponse{
		Message: MsgFavoriteDeleted,
		Note:    deleted,
	})
}

// ownerID answers 401 itself when the route was mounted without the
// authentication middleware.
func ownerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middlewares.IdentityFromContext(r.Context())
	if !ok || id.UserID == "" {
		response.Message(w, r, http.StatusUnauthorized, middlewares.MsgNoToken)
		return "", false
	}
	return id.UserID, true
}
