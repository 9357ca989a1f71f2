package domain

import "time"

// SeriesPoint is the forecast for a single day. Ordinal is nil when Label is
// not a known classification level.
type SeriesPoint struct {
	Date    time.Time `json:"date"`
	Label   string    `json:"label"`
	Ordinal *int      `json:"ordinal"`
}

// Series is a contiguous daily sequence of points in date order.
// It is never mutated after construction.
type Series struct {
	points []SeriesPoint
}

// BuildSeries assigns anchor + i days to the i-th label and resolves each
// label's ordinal against the catalog.
func BuildSeries(c *Catalog, labels []string) Series {
	points := make([]SeriesPoint, len(labels))
	day := c.AnchorDate()
	for i, label := range labels {
		p := SeriesPoint{Date: day.AddDate(0, 0, i), Label: label}
		if rank, ok := c.Ordinal(label); ok {
			p.Ordinal = &rank
		}
		points[i] = p
	}
	return Series{points: points}
}

// Len returns the number of days in the series.
func (s Series) Len() int { return len(s.points) }

// Empty reports whether the series has no points.
func (s Series) Empty() bool { return len(s.points) == 0 }

// Points returns a copy of the series points.
func (s Series) Points() []SeriesPoint {
	out := make([]SeriesPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Bounds returns the first and last dates of the series. ok is false for an
// empty series.
func (s Series) Bounds() (first, last time.Time, ok bool) {
	if len(s.points) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s.points[0].Date, s.points[len(s.points)-1].Date, true
}

// AtDate returns the point for the calendar day of date. Dates before the
// first or after the last day return ErrNotFound.
func (s Series) AtDate(date time.Time) (SeriesPoint, error) {
	first, last, ok := s.Bounds()
	if !ok {
		return SeriesPoint{}, ErrNotFound
	}
	day := NormalizeDate(date)
	if day.Before(first) || day.After(last) {
		return SeriesPoint{}, ErrNotFound
	}
	return s.points[daysBetween(first, day)], nil
}
