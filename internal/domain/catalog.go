package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SubDistrict is a kecamatan and the file holding its forecast series.
type SubDistrict struct {
	Name string `json:"name"`
	File string `json:"file"`
}

// Catalog is the static configuration shared by the loader and the renderer.
// It is immutable once built by NewCatalog.
type Catalog struct {
	anchor       time.Time
	levels       []Level
	byName       map[string]Level
	subDistricts []SubDistrict
	byDistrict   map[string]SubDistrict
}

// NewCatalog validates and freezes the classification table and the
// sub-district list.
func NewCatalog(anchor time.Time, levels []Level, subDistricts []SubDistrict) (*Catalog, error) {
	if anchor.IsZero() {
		return nil, errors.New("anchor date is required")
	}
	if len(levels) != LevelCount {
		return nil, fmt.Errorf("expected %d classification levels, got %d", LevelCount, len(levels))
	}

	c := &Catalog{
		anchor:       NormalizeDate(anchor),
		levels:       make([]Level, len(levels)),
		byName:       make(map[string]Level, len(levels)),
		subDistricts: make([]SubDistrict, len(subDistricts)),
		byDistrict:   make(map[string]SubDistrict, len(subDistricts)),
	}
	copy(c.levels, levels)
	copy(c.subDistricts, subDistricts)

	ranks := make(map[int]bool, len(levels))
	for _, l := range c.levels {
		switch {
		case strings.TrimSpace(l.Name) == "":
			return nil, errors.New("classification level with empty name")
		case l.Rank < 1 || l.Rank > LevelCount:
			return nil, fmt.Errorf("level %q: rank %d out of range 1..%d", l.Name, l.Rank, LevelCount)
		case l.Color == "":
			return nil, fmt.Errorf("level %q: color is required", l.Name)
		}
		if _, dup := c.byName[l.Name]; dup {
			return nil, fmt.Errorf("duplicate level name %q", l.Name)
		}
		if ranks[l.Rank] {
			return nil, fmt.Errorf("duplicate level rank %d", l.Rank)
		}
		ranks[l.Rank] = true
		c.byName[l.Name] = l
	}

	if len(c.subDistricts) == 0 {
		return nil, errors.New("at least one sub-district is required")
	}
	files := make(map[string]bool, len(c.subDistricts))
	for _, sd := range c.subDistricts {
		if sd.Name == "" || sd.File == "" {
			return nil, fmt.Errorf("sub-district %q: name and file are required", sd.Name)
		}
		if _, dup := c.byDistrict[sd.Name]; dup {
			return nil, fmt.Errorf("duplicate sub-district %q", sd.Name)
		}
		if files[sd.File] {
			return nil, fmt.Errorf("duplicate sub-district file %q", sd.File)
		}
		files[sd.File] = true
		c.byDistrict[sd.Name] = sd
	}

	return c, nil
}

// AnchorDate is the date assigned to the first row of every series.
func (c *Catalog) AnchorDate() time.Time { return c.anchor }

// Levels returns the classification levels in declaration order.
func (c *Catalog) Levels() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// Describe resolves a label to its level, or UnknownLevel if the label is
// not one of the configured names.
func (c *Catalog) Describe(name string) Level {
	if l, ok := c.byName[name]; ok {
		return l
	}
	return UnknownLevel
}

// Ordinal returns the chart position of a label.
func (c *Catalog) Ordinal(name string) (int, bool) {
	l, ok := c.byName[name]
	return l.Rank, ok
}

// SubDistricts returns the configured sub-districts in declaration order.
func (c *Catalog) SubDistricts() []SubDistrict {
	out := make([]SubDistrict, len(c.subDistricts))
	copy(out, c.subDistricts)
	return out
}

// SubDistrict looks up a sub-district by display name.
func (c *Catalog) SubDistrict(name string) (SubDistrict, bool) {
	sd, ok := c.byDistrict[name]
	return sd, ok
}
