package http

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/couchcryptid/drought-dashboard/internal/view"
)

type pageData struct {
	view.DisplayState
	Warnings []string
	ChartSVG template.HTML
	NoChart  string
}

// handleDashboard renders the HTML page. Bad selections fall back to the
// defaults with a warning so the page always renders.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var warnings []string

	name := q.Get("district")
	if _, ok := s.renderer.Catalog().SubDistrict(name); !ok {
		if name != "" {
			warnings = append(warnings, "Kecamatan \""+name+"\" tidak dikenal, menampilkan kecamatan default.")
		}
		name = s.renderer.Catalog().SubDistricts()[0].Name
	}

	var date time.Time
	if raw := q.Get("date"); raw != "" {
		d, err := domain.ParseDate(raw)
		if err != nil {
			warnings = append(warnings, "Format tanggal tidak valid, menampilkan tanggal terbaru.")
		} else {
			date = d
		}
	}

	ds, err := s.renderer.Render(r.Context(), name, date)
	if err != nil {
		s.writeRenderError(w, err)
		return
	}

	data := pageData{DisplayState: ds, Warnings: warnings}
	if len(ds.Chart) > 0 {
		svg, err := s.renderChart(ds)
		switch {
		case err == nil:
			data.ChartSVG = template.HTML(svg) //nolint:gosec // generated by go-chart, not user input
		case errors.Is(err, view.ErrChartTooSmall):
			data.NoChart = "Data belum cukup untuk menampilkan grafik."
		default:
			data.NoChart = "Grafik gagal ditampilkan."
		}
	}

	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "dashboard", data); err != nil {
		s.logger.Error("template execution failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}
