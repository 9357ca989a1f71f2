package view_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/drought-dashboard/internal/catalog"
	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/couchcryptid/drought-dashboard/internal/view"
)

func chartPoints(t *testing.T, labels ...string) (*domain.Catalog, []view.ChartPoint) {
	t.Helper()
	c, err := catalog.Load(catalog.Options{AnchorDate: anchor})
	require.NoError(t, err)

	s := domain.BuildSeries(c, labels)
	var points []view.ChartPoint
	for _, p := range s.Points() {
		points = append(points, view.ChartPoint{Date: p.Date, Ordinal: p.Ordinal, Label: p.Label})
	}
	return c, points
}

func TestRenderChartSVG(t *testing.T) {
	c, points := chartPoints(t, "Normal", "Kering Sedang", "Kering Parah", "Sangat Basah")

	var buf bytes.Buffer
	err := view.RenderChartSVG(&buf, c, points, view.ChartOptions{
		Width:  800,
		Height: 300,
		Title:  view.ChartTitle("Indralaya"),
	})
	require.NoError(t, err)

	svg := buf.String()
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "Tren Kekeringan di Indralaya")
	for _, l := range c.Levels() {
		assert.Contains(t, svg, l.Name, "axis tick for %s", l.Name)
	}
}

func TestRenderChartSVG_GapsInLine(t *testing.T) {
	c, points := chartPoints(t, "Normal", "Foo", "Kering Parah", "Kering Parah")

	var buf bytes.Buffer
	require.NoError(t, view.RenderChartSVG(&buf, c, points, view.ChartOptions{Width: 600, Height: 300}))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRenderChartSVG_TooSmall(t *testing.T) {
	tests := map[string][]string{
		"empty":        nil,
		"single day":   {"Normal"},
		"only unknown": {"Foo", "Bar", "Normal"},
	}
	for name, labels := range tests {
		t.Run(name, func(t *testing.T) {
			c, points := chartPoints(t, labels...)
			var buf bytes.Buffer
			err := view.RenderChartSVG(&buf, c, points, view.ChartOptions{})
			assert.ErrorIs(t, err, view.ErrChartTooSmall)
		})
	}
}
