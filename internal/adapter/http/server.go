// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"log/slog"
	"net/http"

	"blog/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/oauth2"
)

// SSOConfig carries the OIDC collaborators for the optional SSO login flow.
type SSOConfig struct {
	Provider *oidc.Provider
	OAuth2   *oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth     *app.AuthService
	posts    *app.PostService
	sessions *SessionManager
	render   Renderer
	logger   *slog.Logger
	sso      *SSOConfig
}

// New creates a Server wired to the given application services. sso may be
// nil, which disables the SSO routes.
func New(auth *app.AuthService, posts *app.PostService, sessions *SessionManager, render Renderer, logger *slog.Logger, sso *SSOConfig) *Server {
	return &Server{
		auth:     auth,
		posts:    posts,
		sessions: sessions,
		render:   render,
		logger:   logger,
		sso:      sso,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(s.loggingMiddleware)
	r.Use(s.sessionMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	r.Get("/", s.handleIndex)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/register", s.handleRegisterForm)
		r.Post("/register", s.handleRegister)
		r.Get("/login", s.handleLoginForm)
		r.Post("/login", s.handleLogin)
		r.Get("/logout", s.handleLogout)
		if s.sso != nil {
			r.Get("/sso/login", s.handleSSOLogin)
			r.Get("/sso/callback", s.handleSSOCallback)
		}
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/{id}", s.handleShow)

		r.Group(func(r chi.Router) {
			r.Use(s.requireLogin)
			r.Get("/new", s.handleCreateForm)
			r.Post("/", s.handleCreate)
			r.Get("/{id}/edit", s.handleUpdateForm)
			r.Post("/{id}", s.handleUpdate)
			r.Post("/{id}/delete", s.handleDelete)
		})
	})

	return r
}
