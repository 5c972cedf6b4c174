// Package httpapi serves the globe UI, the figure API, and the usual
// health, readiness, and metrics endpoints.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/seismoview/quake-globe/internal/domain"
	"github.com/seismoview/quake-globe/internal/figure"
	"github.com/seismoview/quake-globe/internal/observability"
)

// SnapshotSource provides the current snapshot and border overlay, plus
// readiness. The pipeline satisfies this.
type SnapshotSource interface {
	Snapshot() *domain.Snapshot
	Borders() figure.BorderSet
	CheckReadiness(ctx context.Context) error
}

// Server exposes the UI and API over one listener.
type Server struct {
	httpServer *http.Server
	source     SnapshotSource
	metrics    *observability.Metrics
	sphereGrid int
	logger     *slog.Logger
}

// NewServer creates the HTTP server and wires all routes.
func NewServer(addr string, source SnapshotSource, sphereGrid int, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		source:     source,
		metrics:    metrics,
		sphereGrid: sphereGrid,
		logger:     logger,
	}

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/figure", s.handleFigure)
	mux.HandleFunc("GET /api/quakes", s.handleQuakes)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handleFigure composes a figure from the cached snapshot and the two
// slider values. Missing or malformed parameters fall back to defaults;
// out-of-range values clamp. Nothing here refetches the feed.
func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	snapshot := s.source.Snapshot()
	if snapshot == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no snapshot available yet"})
		return
	}

	opts := figure.Options{
		SizeScale:  queryFloat(r, "size", figure.DefaultSizeScale),
		DepthScale: queryFloat(r, "depth", figure.DefaultDepthScale),
		SphereGrid: s.sphereGrid,
	}

	start := time.Now()
	fig := figure.Compose(snapshot, s.source.Borders(), opts)
	writeJSON(w, http.StatusOK, fig)

	s.metrics.FigureRenders.Inc()
	s.metrics.RenderDuration.Observe(time.Since(start).Seconds())
}

func (s *Server) handleQuakes(w http.ResponseWriter, _ *http.Request) {
	snapshot := s.source.Snapshot()
	if snapshot == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no snapshot available yet"})
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.source.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func queryFloat(r *http.Request, key string, def float64) float64 {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
