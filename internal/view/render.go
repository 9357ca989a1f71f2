// Package view turns a sub-district selection into everything the dashboard
// displays: status card, chart data, and the classification legend.
package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/couchcryptid/drought-dashboard/internal/observability"
	"github.com/couchcryptid/drought-dashboard/internal/series"
)

// State classifies the outcome of a render.
type State string

const (
	StateOK        State = "ok"
	StateLoadError State = "load_error"
	StateNoData    State = "no_data"
	StateEmpty     State = "empty"
)

// Status is the status card for the selected day. Label is the text found in
// the data file; Level is its resolved classification (UnknownLevel when the
// label is not configured).
type Status struct {
	Label string       `json:"label"`
	Level domain.Level `json:"level"`
}

// ChartPoint is one day of the historical chart. Ordinal is nil for labels
// that cannot be placed on the axis; Label is shown on hover.
type ChartPoint struct {
	Date    time.Time `json:"date"`
	Ordinal *int      `json:"ordinal"`
	Label   string    `json:"label"`
	Color   string    `json:"color"`
}

// Tick places a category name on the chart's vertical axis.
type Tick struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// DisplayState is everything the hosting layer needs to draw the page.
type DisplayState struct {
	SubDistrict  string         `json:"sub_district"`
	SubDistricts []string       `json:"sub_districts"`
	State        State          `json:"state"`
	Message      string         `json:"message,omitempty"`
	SelectedDate time.Time      `json:"selected_date,omitzero"`
	MinDate      time.Time      `json:"min_date,omitzero"`
	MaxDate      time.Time      `json:"max_date,omitzero"`
	Status       *Status        `json:"status,omitempty"`
	Chart        []ChartPoint   `json:"chart"`
	Ticks        []Tick         `json:"ticks"`
	Legend       []domain.Level `json:"legend"`
	GeneratedAt  time.Time      `json:"generated_at"`
}

// Renderer runs the selection pipeline: load, filter by date, describe.
type Renderer struct {
	catalog *domain.Catalog
	loader  series.Loader
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewRenderer creates a Renderer. Pass a nil clock to use real time.
func NewRenderer(c *domain.Catalog, loader series.Loader, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Renderer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Renderer{
		catalog: c,
		loader:  loader,
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}
}

// Catalog returns the static configuration the renderer resolves against.
func (r *Renderer) Catalog() *domain.Catalog { return r.catalog }

// Render builds the display for a sub-district on a date. A zero date selects
// the last day of the series. The only error is domain.ErrUnknownSubDistrict;
// load and lookup failures are reported through DisplayState.State.
func (r *Renderer) Render(ctx context.Context, name string, date time.Time) (DisplayState, error) {
	sd, ok := r.catalog.SubDistrict(name)
	if !ok {
		return DisplayState{}, fmt.Errorf("%q: %w", name, domain.ErrUnknownSubDistrict)
	}

	ds := DisplayState{
		SubDistrict:  sd.Name,
		SubDistricts: r.subDistrictNames(),
		Ticks:        r.ticks(),
		Legend:       r.catalog.Levels(),
		Chart:        []ChartPoint{},
		GeneratedAt:  r.clock.Now(),
	}
	defer func() { r.metrics.Renders.WithLabelValues(string(ds.State)).Inc() }()

	s, err := r.loader.Load(ctx, sd.File)
	if err != nil {
		ds.State = StateLoadError
		ds.Message = loadErrorMessage(sd, err)
		r.logger.Warn("render without series", "sub_district", sd.Name, "error", err)
		return ds, nil
	}

	if s.Empty() {
		ds.State = StateEmpty
		ds.Message = "Belum ada data prediksi untuk kecamatan ini."
		return ds, nil
	}

	ds.MinDate, ds.MaxDate, _ = s.Bounds()
	ds.Chart = r.chartPoints(s)

	if date.IsZero() {
		date = ds.MaxDate
	}
	ds.SelectedDate = domain.NormalizeDate(date)

	p, err := s.AtDate(ds.SelectedDate)
	if err != nil {
		ds.State = StateNoData
		ds.Message = "Tidak ada data prediksi untuk tanggal yang dipilih."
		return ds, nil
	}

	ds.State = StateOK
	ds.Status = &Status{Label: p.Label, Level: r.catalog.Describe(p.Label)}
	return ds, nil
}

func loadErrorMessage(sd domain.SubDistrict, err error) string {
	if errors.Is(err, domain.ErrMissingResource) {
		return fmt.Sprintf("File data tidak ditemukan: %s. Pastikan nama file CSV sudah benar dan folder dataset ada.", filepath.Base(sd.File))
	}
	var loadErr *domain.LoadError
	if errors.As(err, &loadErr) {
		return fmt.Sprintf("Terjadi kesalahan saat memuat data: %v", loadErr.Err)
	}
	return fmt.Sprintf("Terjadi kesalahan saat memuat data: %v", err)
}

func (r *Renderer) chartPoints(s domain.Series) []ChartPoint {
	points := s.Points()
	out := make([]ChartPoint, len(points))
	for i, p := range points {
		out[i] = ChartPoint{
			Date:    p.Date,
			Ordinal: p.Ordinal,
			Label:   p.Label,
			Color:   r.catalog.Describe(p.Label).Color,
		}
	}
	return out
}

func (r *Renderer) ticks() []Tick {
	levels := r.catalog.Levels()
	ticks := make([]Tick, len(levels))
	for i, l := range levels {
		ticks[i] = Tick{Value: l.Rank, Label: l.Name}
	}
	return ticks
}

func (r *Renderer) subDistrictNames() []string {
	sds := r.catalog.SubDistricts()
	names := make([]string, len(sds))
	for i, sd := range sds {
		names[i] = sd.Name
	}
	return names
}
