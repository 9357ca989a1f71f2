package series_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/drought-dashboard/internal/catalog"
	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/couchcryptid/drought-dashboard/internal/observability"
	"github.com/couchcryptid/drought-dashboard/internal/series"
)

var anchor = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	c, err := catalog.Load(catalog.Options{AnchorDate: anchor})
	require.NoError(t, err)
	return c
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func newLoader(t *testing.T, dir string) (*series.FileLoader, *observability.Metrics) {
	t.Helper()
	m := observability.NewMetricsForTesting()
	return series.NewFileLoader(dir, testCatalog(t), slog.Default(), m), m
}

func ordinal(v int) *int { return &v }

func TestFileLoader_Scenario(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "indralaya.csv", "Normal\nKering Sedang\nKering Parah\n")
	loader, m := newLoader(t, dir)

	s, err := loader.Load(context.Background(), "indralaya.csv")
	require.NoError(t, err)

	want := []domain.SeriesPoint{
		{Date: anchor, Label: "Normal", Ordinal: ordinal(4)},
		{Date: anchor.AddDate(0, 0, 1), Label: "Kering Sedang", Ordinal: ordinal(5)},
		{Date: anchor.AddDate(0, 0, 2), Label: "Kering Parah", Ordinal: ordinal(6)},
	}
	if diff := cmp.Diff(want, s.Points()); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}

	p, err := s.AtDate(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Kering Sedang", p.Label)
	assert.Equal(t, 5, *p.Ordinal)

	assert.InDelta(t, 1, testutil.ToFloat64(m.SeriesLoads.WithLabelValues("ok")), 0)
}

func TestFileLoader_RowCountAndContiguity(t *testing.T) {
	dir := t.TempDir()
	levels := testCatalog(t).Levels()
	var b strings.Builder
	const rows = 365
	for i := range rows {
		b.WriteString(levels[(i/10)%len(levels)].Name)
		b.WriteByte('\n')
	}
	writeFile(t, dir, "year.csv", b.String())
	loader, _ := newLoader(t, dir)

	s, err := loader.Load(context.Background(), "year.csv")
	require.NoError(t, err)
	require.Equal(t, rows, s.Len())

	first, last, ok := s.Bounds()
	require.True(t, ok)
	assert.Equal(t, anchor, first)
	assert.Equal(t, anchor.AddDate(0, 0, rows-1), last)

	points := s.Points()
	for i := 1; i < len(points); i++ {
		assert.Equal(t, points[i-1].Date.AddDate(0, 0, 1), points[i].Date)
	}
}

func TestFileLoader_UnknownLabel(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "foo.csv", "Normal\nFoo\nKering Parah\n")
	loader, m := newLoader(t, dir)

	s, err := loader.Load(context.Background(), "foo.csv")
	require.NoError(t, err)

	points := s.Points()
	require.Len(t, points, 3)
	assert.Equal(t, "Foo", points[1].Label)
	assert.Nil(t, points[1].Ordinal)
	assert.Equal(t, ordinal(4), points[0].Ordinal)
	assert.Equal(t, ordinal(6), points[2].Ordinal)
	assert.InDelta(t, 1, testutil.ToFloat64(m.UnknownLabels), 0)
}

func TestFileLoader_LabelsAreCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "case.csv", "normal\nNORMAL\n")
	loader, _ := newLoader(t, dir)

	s, err := loader.Load(context.Background(), "case.csv")
	require.NoError(t, err)
	for _, p := range s.Points() {
		assert.Nil(t, p.Ordinal, p.Label)
	}
}

func TestFileLoader_PaddedLabelsAreUnknown(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "padded.csv", " Normal\nKering Parah \nNormal\n")
	loader, m := newLoader(t, dir)

	s, err := loader.Load(context.Background(), "padded.csv")
	require.NoError(t, err)

	points := s.Points()
	require.Len(t, points, 3)
	assert.Equal(t, " Normal", points[0].Label)
	assert.Nil(t, points[0].Ordinal)
	assert.Equal(t, "Kering Parah ", points[1].Label)
	assert.Nil(t, points[1].Ordinal)
	assert.Equal(t, ordinal(4), points[2].Ordinal)
	assert.InDelta(t, 2, testutil.ToFloat64(m.UnknownLabels), 0)
}

func TestFileLoader_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.csv", "")
	loader, _ := newLoader(t, dir)

	s, err := loader.Load(context.Background(), "empty.csv")
	require.NoError(t, err)
	assert.True(t, s.Empty())
}

func TestFileLoader_MissingFile(t *testing.T) {
	loader, m := newLoader(t, t.TempDir())

	_, err := loader.Load(context.Background(), "nope.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingResource)
	assert.NotErrorIs(t, err, domain.ErrLoadFailure)
	assert.InDelta(t, 1, testutil.ToFloat64(m.SeriesLoads.WithLabelValues("missing")), 0)
}

func TestFileLoader_ReadFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.csv"), 0o700))
	loader, m := newLoader(t, dir)

	_, err := loader.Load(context.Background(), "dir.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoadFailure)

	var loadErr *domain.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, filepath.Join(dir, "dir.csv"), loadErr.Path)
	assert.Error(t, loadErr.Err)
	assert.InDelta(t, 1, testutil.ToFloat64(m.SeriesLoads.WithLabelValues("failed")), 0)
}

func TestFileLoader_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "Normal\n")
	loader, _ := newLoader(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx, "a.csv")
	assert.ErrorIs(t, err, domain.ErrLoadFailure)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileLoader_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "Sangat Basah\nFoo\nNormal\nKering Sangat Parah\n")
	loader, _ := newLoader(t, dir)

	s1, err := loader.Load(context.Background(), "a.csv")
	require.NoError(t, err)
	s2, err := loader.Load(context.Background(), "a.csv")
	require.NoError(t, err)

	if diff := cmp.Diff(s1.Points(), s2.Points()); diff != "" {
		t.Errorf("repeated loads differ (-first +second):\n%s", diff)
	}
}

func TestReadLabels(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr string
	}{
		{name: "plain", input: "Normal\nKering Sedang\n", want: []string{"Normal", "Kering Sedang"}},
		{name: "no trailing newline", input: "Normal\nKering Sedang", want: []string{"Normal", "Kering Sedang"}},
		{name: "crlf", input: "Normal\r\nKering Parah\r\n", want: []string{"Normal", "Kering Parah"}},
		{name: "blank lines skipped", input: "Normal\n\nNormal\n", want: []string{"Normal", "Normal"}},
		{name: "byte order mark", input: "\ufeffNormal\nNormal\n", want: []string{"Normal", "Normal"}},
		{name: "surrounding spaces kept", input: " Normal\nKering Parah \n", want: []string{" Normal", "Kering Parah "}},
		{name: "quoted", input: "\"Kering Sangat Parah\"\n", want: []string{"Kering Sangat Parah"}},
		{name: "trailing delimiter", input: "Normal,\n", want: []string{"Normal"}},
		{name: "empty", input: "", want: nil},
		{name: "two columns", input: "Normal\n2025-01-01,Normal\n", wantErr: "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := series.ReadLabels(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
