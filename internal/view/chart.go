package view

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
)

// ErrChartTooSmall is returned when fewer than two days can be placed on the axis.
var ErrChartTooSmall = errors.New("chart needs at least two classified days")

// ChartOptions controls the rendered chart size and title.
type ChartOptions struct {
	Width  int
	Height int
	Title  string
}

var lineColor = drawing.ColorFromHex("4E80B4")

// RenderChartSVG draws ordinal level against date as an SVG line chart with
// category names on the vertical axis. Days without an ordinal break the line.
func RenderChartSVG(w io.Writer, c *domain.Catalog, points []ChartPoint, opts ChartOptions) error {
	segments, plotted := segment(points)
	if plotted < 2 {
		return ErrChartTooSmall
	}

	levels := c.Levels()
	ticks := make([]chart.Tick, len(levels))
	for i, l := range levels {
		ticks[i] = chart.Tick{Value: float64(l.Rank), Label: l.Name}
	}

	series := make([]chart.Series, 0, len(segments))
	for _, seg := range segments {
		series = append(series, chart.TimeSeries{
			Name:    opts.Title,
			XValues: seg.xs,
			YValues: seg.ys,
			Style: chart.Style{
				StrokeColor: lineColor,
				StrokeWidth: 2,
				DotColor:    lineColor,
				DotWidth:    3,
			},
		})
	}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Periode Waktu",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:  "Level Kekeringan",
			Range: &chart.ContinuousRange{Min: 0.5, Max: float64(domain.LevelCount) + 0.5},
			Ticks: ticks,
		},
		Series: series,
	}
	return graph.Render(chart.SVG, w)
}

type run struct {
	xs []time.Time
	ys []float64
}

// segment splits points into runs of consecutive plottable days.
func segment(points []ChartPoint) ([]run, int) {
	var (
		runs    []run
		cur     run
		plotted int
	)
	for _, p := range points {
		if p.Ordinal == nil {
			if len(cur.xs) > 0 {
				runs = append(runs, cur)
				cur = run{}
			}
			continue
		}
		cur.xs = append(cur.xs, p.Date)
		cur.ys = append(cur.ys, float64(*p.Ordinal))
		plotted++
	}
	if len(cur.xs) > 0 {
		runs = append(runs, cur)
	}
	return runs, plotted
}

// ChartTitle is the heading used for a sub-district's trend chart.
func ChartTitle(subDistrict string) string {
	return "Tren Kekeringan di " + strings.TrimSpace(subDistrict)
}
