// Package diagnostics exposes a chi-routed HTTP mux for a long-running
// `planner serve` process: a liveness/readiness probe and the Prometheus
// scrape endpoint, using the same chi middleware stack and /health and
// /metrics route shapes as the rest of this codebase's HTTP surfaces.
package diagnostics

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessFunc reports whether the daemon is ready to accept solve
// requests (e.g. a solver backend is configured and reachable).
type ReadinessFunc func() error

// Server is the diagnostics HTTP mux for a `planner serve` daemon.
type Server struct {
	registry  *prometheus.Registry
	readiness ReadinessFunc
	startedAt time.Time
}

// New builds a diagnostics server backed by registry. If registry is nil,
// a fresh private registry is created: callers register their own
// collectors into it via Registry() before calling Handler().
func New(registry *prometheus.Registry, readiness ReadinessFunc) *Server {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	return &Server{registry: registry, readiness: readiness, startedAt: timeNow()}
}

// Registry returns the private registry backing this server's /metrics
// endpoint, for callers to register additional collectors into.
func (s *Server) Registry() *prometheus.Registry { return s.registry }

// Handler returns the chi router serving /healthz, /readyz, and /metrics.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": timeNow().Sub(s.startedAt).String(),
	})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.readiness == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
		return
	}
	if err := s.readiness(); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// timeNow returns the current wall-clock time; it backs the server's start
// time and the /healthz uptime field.
func timeNow() time.Time { return time.Now() }
