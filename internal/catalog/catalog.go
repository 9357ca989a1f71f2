// Package catalog loads the dashboard's static configuration: the anchor
// date, the classification levels, and the sub-district file mapping.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
)

//go:embed catalog.yaml
var embedded []byte

type file struct {
	AnchorDate   string               `yaml:"anchor_date"`
	Levels       []domain.Level       `yaml:"levels"`
	SubDistricts []domain.SubDistrict `yaml:"sub_districts"`
}

// Options selects the catalog source. Zero values use the embedded catalog.
type Options struct {
	// Path to a YAML file replacing the embedded catalog.
	Path string
	// AnchorDate overrides the catalog's anchor date when non-zero.
	AnchorDate time.Time
}

// Load builds a validated catalog.
func Load(opts Options) (*domain.Catalog, error) {
	data := embedded
	source := "embedded catalog"
	if opts.Path != "" {
		b, err := os.ReadFile(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = b
		source = opts.Path
	}

	c, err := Parse(data, opts.AnchorDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return c, nil
}

// Parse decodes catalog YAML. A non-zero anchor replaces the document's
// anchor_date.
func Parse(data []byte, anchor time.Time) (*domain.Catalog, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if anchor.IsZero() {
		if f.AnchorDate == "" {
			return nil, fmt.Errorf("anchor_date is required")
		}
		d, err := domain.ParseDate(f.AnchorDate)
		if err != nil {
			return nil, fmt.Errorf("invalid anchor_date %q: %w", f.AnchorDate, err)
		}
		anchor = d
	}

	return domain.NewCatalog(anchor, f.Levels, f.SubDistricts)
}
