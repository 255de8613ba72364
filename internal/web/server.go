// Package web serves the portfolio contact page, rendered against the backend API.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/roland/portfolio/internal/logging"
	"github.com/roland/portfolio/internal/prefs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Config controls how pages are rendered.
type Config struct {
	BackendURL  string
	Owner       string
	// MaxComments is the limit for visitors who have not chosen one. Zero shows none.
	MaxComments int
	// Timeout bounds each backend request. Zero leaves the platform default.
	Timeout time.Duration
}

// Server is the portfolio page HTTP server.
type Server struct {
	cfg       Config
	prefs     *prefs.Repository
	templates *template.Template
	mux       *http.ServeMux
}

// NewServer creates a page server. prefsRepo may be nil, in which case
// visitors' comment limits are not remembered.
func NewServer(cfg Config, prefsRepo *prefs.Repository) (*Server, error) {
	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("backend URL is required")
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		prefs:     prefsRepo,
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /{$}", s.handlePage)
	s.mux.HandleFunc("GET /contact.html", s.handlePage)
	s.mux.HandleFunc("POST /delete-data", s.handleDelete)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting portfolio server", "addr", addr, "backend", s.cfg.BackendURL)
	srv := &http.Server{
		Addr:              addr,
		Handler:           logging.RequestLogger(s),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
