package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/reconanalytics/docgen/internal/config"
	"github.com/reconanalytics/docgen/internal/generate"
	"github.com/reconanalytics/docgen/internal/markdown"
	"github.com/reconanalytics/docgen/internal/store"
)

// Server is the HTTP API server for docgen.
type Server struct {
	router chi.Router
	gen    *generate.Generator
	store  *store.Store
	policy markdown.Policy
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(gen *generate.Generator, st *store.Store, pol markdown.Policy, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		gen:    gen,
		store:  st,
		policy: pol,
		log:    log,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/", s.handleHealth)
	r.Get("/health", s.handleHealth)
	r.Get("/download/{filename}", s.handleDownload)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/generate", s.handleGenerate)
		r.Post("/api/generate/markdown", s.handleGenerateMarkdown)
		r.Post("/api/preview", s.handlePreview)
		r.Delete("/api/cleanup", s.handleCleanup)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok","service":"docgen"}`))
}
