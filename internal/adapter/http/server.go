package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/couchcryptid/fire-weather-etl/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	maxReportBytes     = 1 << 20
	defaultReportLimit = 20
	maxReportLimit     = 500
)

// IndexComputer computes indices for a single parsed weather report.
type IndexComputer interface {
	Compute(ctx context.Context, report domain.WeatherReport) domain.IndexReport
}

// StationReader reads archived station state and index reports.
type StationReader interface {
	StationState(ctx context.Context, stationID string) (domain.StationState, error)
	RecentReports(ctx context.Context, stationID string, limit int) ([]domain.IndexReport, error)
}

// Option registers optional API routes on a Server.
type Option func(*Server)

// WithComputer enables POST /v1/indices.
func WithComputer(c IndexComputer) Option {
	return func(s *Server) { s.computer = c }
}

// WithStations enables the /v1/stations routes.
func WithStations(r StationReader) Option {
	return func(s *Server) { s.stations = r }
}

// Server exposes health, readiness, metrics, and the index API.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	computer   IndexComputer
	stations   StationReader
}

// NewServer creates an HTTP server with /healthz, /readyz, and /metrics
// routes, plus whichever API routes the options enable.
func NewServer(addr string, ready sharedobs.ReadinessChecker, logger *slog.Logger, opts ...Option) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	if s.computer != nil {
		mux.HandleFunc("POST /v1/indices", s.handleCompute)
	}
	if s.stations != nil {
		mux.HandleFunc("GET /v1/stations/{id}/state", s.handleStationState)
		mux.HandleFunc("GET /v1/stations/{id}/reports", s.handleStationReports)
	}

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

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxReportBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}

	report, err := domain.DecodeWeatherReport(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sharedobs.WriteJSON(w, http.StatusOK, s.computer.Compute(r.Context(), report))
}

func (s *Server) handleStationState(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	state, err := s.stations.StationState(r.Context(), id)
	if errors.Is(err, domain.ErrStationNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.logger.Error("read station state", "station_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
		return
	}

	sharedobs.WriteJSON(w, http.StatusOK, state)
}

func (s *Server) handleStationReports(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	limit := defaultReportLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxReportLimit {
			writeError(w, http.StatusBadRequest, errors.New("limit must be an integer in [1, 500]"))
			return
		}
		limit = n
	}

	reports, err := s.stations.RecentReports(r.Context(), id, limit)
	if err != nil {
		s.logger.Error("read station reports", "station_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
		return
	}
	if reports == nil {
		reports = []domain.IndexReport{}
	}

	sharedobs.WriteJSON(w, http.StatusOK, map[string]any{
		"station_id": id,
		"reports":    reports,
	})
}

func writeError(w http.ResponseWriter, status int, err error) {
	sharedobs.WriteJSON(w, status, map[string]string{"error": err.Error()})
}
