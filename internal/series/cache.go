package series

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/couchcryptid/drought-dashboard/internal/observability"
)

// CachedLoader memoizes a Loader per resource path for the life of the
// process. Concurrent first requests for the same path share one read, and
// readers only ever observe fully built series. Failures are not cached, and a
// caller that gives up does not fail the others waiting on the same read.
type CachedLoader struct {
	inner   Loader
	metrics *observability.Metrics

	mu      sync.RWMutex
	entries map[string]domain.Series
	group   singleflight.Group
}

// NewCachedLoader creates a cache decorator around a loader.
func NewCachedLoader(inner Loader, metrics *observability.Metrics) *CachedLoader {
	return &CachedLoader{
		inner:   inner,
		metrics: metrics,
		entries: make(map[string]domain.Series),
	}
}

func (c *CachedLoader) Load(ctx context.Context, file string) (domain.Series, error) {
	if s, ok := c.get(file); ok {
		c.metrics.SeriesCache.WithLabelValues("hit").Inc()
		return s, nil
	}
	c.metrics.SeriesCache.WithLabelValues("miss").Inc()

	// The shared read must not inherit one caller's cancellation. Each caller
	// still stops waiting when its own context ends.
	flightCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(file, func() (any, error) {
		// A previous flight may have completed between get and DoChan.
		if s, ok := c.get(file); ok {
			return s, nil
		}
		s, err := c.inner.Load(flightCtx, file)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[file] = s
		c.mu.Unlock()
		return s, nil
	})

	select {
	case <-ctx.Done():
		return domain.Series{}, &domain.LoadError{Path: file, Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return domain.Series{}, res.Err
		}
		return res.Val.(domain.Series), nil
	}
}

// Len returns the number of cached series.
func (c *CachedLoader) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *CachedLoader) get(file string) (domain.Series, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.entries[file]
	return s, ok
}
