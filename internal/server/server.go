// Package server exposes the render pipeline over HTTP.
//
// Routes:
//
//	POST   /api/v1/render          render a description (JSON or TOML body)
//	GET    /api/v1/diagrams        list saved diagrams, newest first
//	GET    /api/v1/diagrams/{id}   fetch a saved diagram's bytes
//	DELETE /api/v1/diagrams/{id}   delete a saved diagram
//	GET    /api/v1/stats           request, render and cache counters
//	GET    /healthz                liveness
//
// Errors are JSON objects {"code": ..., "message": ...} where code is one of
// the codes in package errors.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/stackuml/pkg/observability"
	"github.com/matzehuels/stackuml/pkg/pipeline"
	"github.com/matzehuels/stackuml/pkg/store"
)

// DefaultMaxBodyBytes bounds request bodies.
const DefaultMaxBodyBytes = 1 << 20

// Config wires a Server's dependencies. Nil fields get in-process defaults.
type Config struct {
	Runner       *pipeline.Runner
	Store        store.Store
	Stats        *observability.Recorder
	Logger       *log.Logger
	MaxBodyBytes int64
}

// Server handles HTTP requests.
type Server struct {
	runner  *pipeline.Runner
	store   store.Store
	stats   *observability.Recorder
	logger  *log.Logger
	maxBody int64
}

// New creates a server.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	if cfg.Stats == nil {
		cfg.Stats = observability.NewRecorder()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Server{
		runner:  cfg.Runner,
		store:   cfg.Store,
		stats:   cfg.Stats,
		logger:  cfg.Logger,
		maxBody: cfg.MaxBodyBytes,
	}
}

// Handler returns an http.Handler with all routes registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Get("/diagrams", s.handleListDiagrams)
		r.Get("/diagrams/{id}", s.handleGetDiagram)
		r.Delete("/diagrams/{id}", s.handleDeleteDiagram)
		r.Get("/stats", s.handleStats)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases the runner's cache and the store.
func (s *Server) Close(ctx context.Context) error {
	return stderrors.Join(s.runner.Close(), s.store.Close(ctx))
}

// observe reports requests to the HTTP hooks and the stats recorder.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		s.stats.OnRequest(r.Context(), r.Method, r.URL.Path)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		path := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			path = rc.RoutePattern()
		}
		dur := time.Since(start)
		s.stats.OnResponse(r.Context(), r.Method, path, status, dur)
		observability.HTTP().OnResponse(r.Context(), r.Method, path, status, dur)
		s.logger.Debug("request", "method", r.Method, "path", path, "status", status, "duration", dur)
	})
}
