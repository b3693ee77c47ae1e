package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/dto"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/middlewares"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/response"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model/user"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/service/accounts"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/serviceerrs"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/logger"
)

const (
	MsgUserRegistered     = "User registered!"
	MsgUserExists         = "User already exists."
	MsgInvalidCredentials = "Invalid credentials."
	MsgUserNotFound       = "User not found"
)

type AccountService interface {
	Register(ctx context.Context, username, email, password string) (accounts.Result, error)
	Login(ctx context.Context, identifier, password string) (accounts.Result, error)
	Verify(ctx context.Context, id user.Identity) (user.User, error)
}

type AuthHandler struct {
	accounts   AccountService
	minEntropy float64
}

// NewAuthHandler builds the auth endpoints. minEntropy of zero turns the
// password entropy policy off.
func NewAuthHandler(accounts AccountService, minEntropy float64) *AuthHandler {
	return &AuthHandler{accounts: accounts, minEntropy: minEntropy}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.FromContext(r.Context()).LogAttrs(r.Context(), slog.LevelDebug,
			"bad register body", slog.Any(model.KeyLoggerError, err))
		response.Message(w, r, http.StatusBadRequest, dto.MsgMissingRegisterFields)
		return
	}
	if err := req.IsValid(h.minEntropy); err != nil {
		response.Message(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.accounts.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		var vErr *serviceerrs.ValidationError
		switch {
		case errors.Is(err, serviceerrs.ErrUserExists):
			response.Message(w, r, http.StatusBadRequest, MsgUserExists)
		case errors.As(err, &vErr):
			response.Message(w, r, http.StatusBadRequest, vErr.Message)
		default:
			internalError(w, r, err, MsgServerError)
		}
		return
	}

	response.JSON(w, r, http.StatusCreated, dto.AuthResponse{
		Message:  MsgUserRegistered,
		Token:    res.Token,
		Username: res.User.Username,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.FromContext(r.Context()).LogAttrs(r.Context(), slog.LevelDebug,
			"bad login body", slog.Any(model.KeyLoggerError, err))
		response.Message(w, r, http.StatusBadRequest, dto.MsgMissingLoginFields)
		return
	}
	if err := req.IsValid(); err != nil {
		response.Message(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.accounts.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrInvalidCredentials) {
			response.Message(w, r, http.StatusBadRequest, MsgInvalidCredentials)
			return
		}
		internalError(w, r, err, MsgServerError)
		return
	}

	response.JSON(w, r, http.StatusOK, dto.AuthResponse{
		Token:    res.Token,
		Username: res.User.Username,
	})
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		response.Message(w, r, http.StatusUnauthorized, middlewares.MsgNoToken)
		return
	}

	u, err := h.accounts.Verify(r.Context(), id)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			response.Message(w, r, http.StatusNotFound, MsgUserNotFound)
			return
		}
		internalError(w, r, err, MsgServerError)
		return
	}

	response.JSON(w, r, http.StatusOK, dto.VerifyResponse{User: dto.NewUserResponse(u)})
}
