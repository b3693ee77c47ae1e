package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/middlewares"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/response"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/config"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model"
)

const (
	MsgEndpointNotFound = "Endpoint not found"
	MsgMethodNotAllowed = "Method not allowed"

	defaultAPIPrefix = "/api"
	contentTypeJSON  = "application/json"
	corsMaxAge       = 300
)

type CustomRouter struct {
	router *chi.Mux
	logger *slog.Logger
	cfg    *config.Config
}

func New(cfg *config.Config, log *slog.Logger) *CustomRouter {
	if log == nil {
		log = slog.Default()
	}
	router := &CustomRouter{
		router: chi.NewRouter(),
		logger: log,
		cfg:    cfg,
	}

	return router
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
}

type FavoritesHandler interface {
	AddFavorite(w http.ResponseWriter, r *http.Request)
	ListFavorites(w http.ResponseWriter, r *http.Request)
	DeleteFavorite(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Ping(w http.ResponseWriter, r *http.Request)
}

type Handler interface {
	AuthHandler
	FavoritesHandler
	HealthHandler
}

// SetRouter mounts every endpoint. Routes behind tokens answer 401 or
// 403 before reaching h.
func (cr *CustomRouter) SetRouter(h Handler, tokens middlewares.TokenVerifier) {
	cr.router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middlewares.RequestLogger(cr.logger),
		middleware.Recoverer,
		middlewares.SecurityHeaders,
		cors.Handler(cors.Options{
			AllowedOrigins: cr.allowedOrigins(),
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions,
			},
			AllowedHeaders: []string{model.HeaderAuthorization, model.HeaderContentType},
			MaxAge:         corsMaxAge,
		}),
	)
	requireAuth := middlewares.Authentication(tokens)

	cr.router.Route(cr.apiPrefix(), func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AllowContentType(contentTypeJSON)).
				Post("/register", h.Register)
			r.With(middleware.AllowContentType(contentTypeJSON)).
				Post("/login", h.Login)
			r.With(requireAuth).Get("/verify", h.Verify)
		})

		r.Route("/user", func(r chi.Router) {
			r.Use(requireAuth)
			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", h.ListFavorites)
				r.With(middleware.AllowContentType(contentTypeJSON)).
					Post("/", h.AddFavorite)
				r.Delete("/{id}", h.DeleteFavorite)
			})
		})
	})
	cr.router.Get("/ping", h.Ping)

	cr.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Message(w, r, http.StatusNotFound, MsgEndpointNotFound)
	})
	cr.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Message(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	})
}

func (cr *CustomRouter) GetRouter() *chi.Mux {
	return cr.router
}

func (cr *CustomRouter) apiPrefix() string {
	if cr.cfg == nil || cr.cfg.APIPrefix == "" {
		return defaultAPIPrefix
	}
	return cr.cfg.APIPrefix
}

func (cr *CustomRouter) allowedOrigins() []string {
	if cr.cfg == nil || len(cr.cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cr.cfg.CORSAllowedOrigins
}
