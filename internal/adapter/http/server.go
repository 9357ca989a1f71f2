package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/couchcryptid/drought-dashboard/internal/view"
)

// Server exposes the dashboard page, its JSON API, and health, readiness,
// and metrics endpoints.
type Server struct {
	httpServer *http.Server
	renderer   *view.Renderer
	chart      view.ChartOptions
	logger     *slog.Logger
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(addr string, renderer *view.Renderer, chart view.ChartOptions, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      withRequestLogging(mux, logger),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		renderer: renderer,
		chart:    chart,
		logger:   logger,
	}

	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("GET /chart.svg", s.handleChart)
	mux.HandleFunc("GET /api/districts", s.handleDistricts)
	mux.HandleFunc("GET /api/levels", s.handleLevels)
	mux.HandleFunc("GET /api/view", s.handleView)

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
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

func (s *Server) handleDistricts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.renderer.Catalog().SubDistricts())
}

func (s *Server) handleLevels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.renderer.Catalog().Levels())
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("district")
	if name == "" {
		writeError(w, http.StatusBadRequest, "district is required")
		return
	}

	var date time.Time
	if raw := q.Get("date"); raw != "" {
		d, err := domain.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = d
	}

	ds, err := s.renderer.Render(r.Context(), name, date)
	if err != nil {
		s.writeRenderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("district")
	ds, err := s.renderer.Render(r.Context(), name, time.Time{})
	if err != nil {
		s.writeRenderError(w, err)
		return
	}
	if ds.State == view.StateLoadError {
		writeError(w, http.StatusNotFound, ds.Message)
		return
	}

	svg, err := s.renderChart(ds)
	if err != nil {
		if errors.Is(err, view.ErrChartTooSmall) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "chart rendering failed")
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(svg) //nolint:errcheck // client went away
}

func (s *Server) renderChart(ds view.DisplayState) ([]byte, error) {
	opts := s.chart
	opts.Title = view.ChartTitle(ds.SubDistrict)

	var buf bytes.Buffer
	if err := view.RenderChartSVG(&buf, s.renderer.Catalog(), ds.Chart, opts); err != nil {
		if !errors.Is(err, view.ErrChartTooSmall) {
			s.logger.Error("chart rendering failed", "sub_district", ds.SubDistrict, "error", err)
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Server) writeRenderError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrUnknownSubDistrict) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	s.logger.Error("render failed", "error", err)
	writeError(w, http.StatusInternalServerError, "render failed")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
