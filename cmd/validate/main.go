// Command validate checks a forecast dataset directory against the catalog:
// every configured sub-district has a readable file, every label is a known
// classification level, and all series cover the same date range.
//
// Usage:
//
//	go run ./cmd/validate -data-dir dataset [-catalog catalog.yaml] [-anchor-date 2024-12-31]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/couchcryptid/drought-dashboard/internal/catalog"
	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/couchcryptid/drought-dashboard/internal/series"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataDir := flag.String("data-dir", "dataset", "directory containing one forecast file per sub-district")
	catalogPath := flag.String("catalog", "", "catalog YAML replacing the embedded one")
	anchorDate := flag.String("anchor-date", "", "anchor date override (YYYY-MM-DD)")
	flag.Parse()

	opts := catalog.Options{Path: *catalogPath}
	if *anchorDate != "" {
		d, err := domain.ParseDate(*anchorDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: invalid -anchor-date %q: expected YYYY-MM-DD\n", *anchorDate)
			os.Exit(1)
		}
		opts.AnchorDate = d
	}

	c, err := catalog.Load(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(c, *dataDir))
}

// loaded is one sub-district's parsed file.
type loaded struct {
	sd     domain.SubDistrict
	series domain.Series
	err    error
}

func run(c *domain.Catalog, dataDir string) int {
	fmt.Println("=== Drought Dataset Validation ===")
	fmt.Printf("Data directory: %s\nAnchor date:    %s\n\n", dataDir, c.AnchorDate().Format(domain.DateLayout))

	var all []loaded
	for _, sd := range c.SubDistricts() {
		all = append(all, load(c, dataDir, sd))
	}

	phases := []*phase{
		validateResources(all),
		validateLabels(all),
		validateCoverage(all),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func load(c *domain.Catalog, dataDir string, sd domain.SubDistrict) loaded {
	f, err := os.Open(filepath.Join(dataDir, sd.File))
	if err != nil {
		return loaded{sd: sd, err: err}
	}
	defer f.Close()

	labels, err := series.ReadLabels(f)
	if err != nil {
		return loaded{sd: sd, err: err}
	}
	return loaded{sd: sd, series: domain.BuildSeries(c, labels)}
}

func validateResources(all []loaded) *phase {
	p := &phase{name: "Resource presence"}
	for _, l := range all {
		switch {
		case l.err != nil:
			p.errorf("%s (%s): %v", l.sd.Name, l.sd.File, l.err)
		case l.series.Empty():
			p.errorf("%s (%s): no rows", l.sd.Name, l.sd.File)
		}
	}
	return p
}

func validateLabels(all []loaded) *phase {
	p := &phase{name: "Classification labels"}
	for _, l := range all {
		if l.err != nil {
			continue
		}
		unknown := map[string]int{}
		for _, pt := range l.series.Points() {
			if pt.Ordinal == nil {
				unknown[pt.Label]++
			}
		}
		labels := make([]string, 0, len(unknown))
		for label := range unknown {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			p.errorf("%s: unknown label %q on %d rows", l.sd.Name, label, unknown[label])
		}
	}
	return p
}

func validateCoverage(all []loaded) *phase {
	p := &phase{name: "Date coverage consistency"}
	var refName string
	var refLast time.Time
	for _, l := range all {
		_, last, ok := l.series.Bounds()
		if l.err != nil || !ok {
			continue
		}
		if refName == "" {
			refName, refLast = l.sd.Name, last
			fmt.Printf("Coverage: through %s (%d days)\n\n", last.Format(domain.DateLayout), l.series.Len())
			continue
		}
		if !last.Equal(refLast) {
			p.errorf("%s ends %s, %s ends %s", l.sd.Name, last.Format(domain.DateLayout), refName, refLast.Format(domain.DateLayout))
		}
	}
	return p
}
