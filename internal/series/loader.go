// Package series reads per-sub-district forecast files into domain series
// and memoizes the results.
package series

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/couchcryptid/drought-dashboard/internal/observability"
)

// Loader produces the series stored in a resource file.
type Loader interface {
	Load(ctx context.Context, file string) (domain.Series, error)
}

// FileLoader reads series files from a data directory.
type FileLoader struct {
	dir     string
	catalog *domain.Catalog
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewFileLoader creates a loader rooted at dir.
func NewFileLoader(dir string, catalog *domain.Catalog, logger *slog.Logger, metrics *observability.Metrics) *FileLoader {
	return &FileLoader{
		dir:     dir,
		catalog: catalog,
		logger:  logger,
		metrics: metrics,
	}
}

// Load reads file (relative to the data directory) and builds its series.
// A missing file returns an error matching domain.ErrMissingResource; any
// other failure returns a *domain.LoadError.
func (l *FileLoader) Load(ctx context.Context, file string) (domain.Series, error) {
	path := filepath.Join(l.dir, file)
	if err := ctx.Err(); err != nil {
		return domain.Series{}, &domain.LoadError{Path: path, Err: err}
	}

	start := time.Now()
	labels, err := readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.metrics.SeriesLoads.WithLabelValues("missing").Inc()
			l.logger.Warn("series file not found", "path", path)
			return domain.Series{}, fmt.Errorf("%s: %w", path, domain.ErrMissingResource)
		}
		l.metrics.SeriesLoads.WithLabelValues("failed").Inc()
		l.logger.Error("series load failed", "path", path, "error", err)
		return domain.Series{}, &domain.LoadError{Path: path, Err: err}
	}

	s := domain.BuildSeries(l.catalog, labels)
	l.metrics.SeriesLoads.WithLabelValues("ok").Inc()
	l.metrics.SeriesLoadDuration.Observe(time.Since(start).Seconds())

	if unknown := countUnknown(s); unknown > 0 {
		l.metrics.UnknownLabels.Add(float64(unknown))
		l.logger.Warn("series contains unknown labels", "path", path, "rows", unknown)
	}
	l.logger.Debug("series loaded", "path", path, "rows", s.Len())
	return s, nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLabels(f)
}

// ReadLabels parses a header-less single-column file, returning one label
// per non-blank line in file order. Labels are kept verbatim apart from a
// leading byte order mark, so padded spellings stay unknown.
func ReadLabels(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var labels []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse series: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if extra := nonEmptyAfterFirst(record); extra > 0 {
			return nil, fmt.Errorf("line %d: expected a single column, got %d", line, extra+1)
		}

		label := record[0]
		if len(labels) == 0 {
			label = strings.TrimPrefix(label, "\ufeff")
		}
		labels = append(labels, label)
	}
	return labels, nil
}

// nonEmptyAfterFirst counts non-blank fields beyond the first, so trailing
// delimiters are tolerated.
func nonEmptyAfterFirst(record []string) int {
	n := 0
	for _, f := range record[1:] {
		if strings.TrimSpace(f) != "" {
			n++
		}
	}
	return n
}

func countUnknown(s domain.Series) int {
	n := 0
	for _, p := range s.Points() {
		if p.Ordinal == nil {
			n++
		}
	}
	return n
}
