package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the dashboard.
type Metrics struct {
	SeriesLoads        *prometheus.CounterVec // labels: outcome={ok,missing,failed}
	SeriesCache        *prometheus.CounterVec // labels: result={hit,miss}
	SeriesLoadDuration prometheus.Histogram
	UnknownLabels      prometheus.Counter

	Renders *prometheus.CounterVec // labels: state={ok,load_error,no_data,empty}
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := NewMetricsForTesting()
	prometheus.MustRegister(
		m.SeriesLoads,
		m.SeriesCache,
		m.SeriesLoadDuration,
		m.UnknownLabels,
		m.Renders,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		SeriesLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drought_dashboard",
			Name:      "series_loads_total",
			Help:      "Series file reads by outcome.",
		}, []string{"outcome"}),
		SeriesCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drought_dashboard",
			Name:      "series_cache_total",
			Help:      "Series cache lookups by result.",
		}, []string{"result"}),
		SeriesLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "drought_dashboard",
			Name:      "series_load_duration_seconds",
			Help:      "Duration of reading and parsing a series file.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		UnknownLabels: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "drought_dashboard",
			Name:      "unknown_labels_total",
			Help:      "Rows whose label is not a configured classification level.",
		}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drought_dashboard",
			Name:      "renders_total",
			Help:      "Dashboard renders by resulting display state.",
		}, []string{"state"}),
	}
}
