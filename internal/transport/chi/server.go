// Package chi serves the rendered chart, health and metrics over HTTP.
package chi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/stackframe/bentographer/internal/metrics"
	healthuc "github.com/stackframe/bentographer/internal/usecase/health"
)

// Error codes returned in JSON error bodies.
const (
	CodeUnauthorized  = "unauthorized"
	CodeChartNotReady = "chart_not_ready"
	CodeInternalError = "internal_error"
)

// Route paths.
const (
	PathChart   = "/chart.png"
	PathHealth  = "/healthz"
	PathMetrics = "/metrics"
)

// ChartSource exposes the last rendered chart.
type ChartSource interface {
	Last() ([]byte, bool)
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the JSON body of the health endpoint.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Server serves the chart produced by a run.
type Server struct {
	health *healthuc.Service
	chart  ChartSource
	logger *zap.Logger
}

// NewServer creates a chart server.
func NewServer(health *healthuc.Service, chart ChartSource, logger *zap.Logger) *Server {
	return &Server{health: health, chart: chart, logger: logger}
}

// Router builds the chi router with the full middleware chain.
// Bearer auth is enabled when apiKeys is non-empty.
func (s *Server) Router(apiKeys []string) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(BearerAuthMiddleware(apiKeys))
	r.Use(metrics.Middleware())

	r.Get(PathChart, s.Chart)
	r.Get(PathHealth, s.HealthCheck)
	r.Get(PathMetrics, s.Metrics)
	return r
}

// Chart handles GET /chart.png.
func (s *Server) Chart(w http.ResponseWriter, _ *http.Request) {
	data, ok := s.chart.Last()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, CodeChartNotReady, "no chart rendered yet")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("write chart", zap.Error(err))
	}
}

// HealthCheck handles GET /healthz.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
