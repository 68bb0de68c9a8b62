// Package server exposes the tracker as a read-only local HTTP API,
// for dashboards or scripts that want the current figures as JSON.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	json "github.com/goccy/go-json"

	"plafond/internal/engine"
	"plafond/internal/model"
	"plafond/internal/session"
)

// Server serves tracker state over HTTP. It never mutates the tracker.
type Server struct {
	tracker *session.Tracker
	now     func() time.Time
}

// New creates a server around the given tracker.
func New(tr *session.Tracker) *Server {
	return &Server{tracker: tr, now: time.Now}
}

// snapshotResponse flattens state and computed fields into the single
// object shape consumers expect.
type snapshotResponse struct {
	model.State
	model.Snapshot
	Threshold   float64   `json:"threshold"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Router builds the HTTP routes with middleware.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/snapshot", s.handleSnapshot)
	})

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.State())
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, snapshotResponse{
		State:       s.tracker.State(),
		Snapshot:    s.tracker.Snapshot(),
		Threshold:   engine.Threshold,
		GeneratedAt: s.now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
