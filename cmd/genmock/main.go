// Command genmock writes a mock forecast dataset: one header-less,
// single-column file per configured sub-district, with a deterministic
// day-to-day random walk over the classification levels. Output is stable
// for a given seed so fixtures can be regenerated byte-for-byte.
//
// Usage:
//
//	go run ./cmd/genmock -out dataset -days 365 [-seed 1] [-catalog catalog.yaml]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"hash/fnv"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/couchcryptid/drought-dashboard/internal/catalog"
	"github.com/couchcryptid/drought-dashboard/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output directory for the mock dataset")
	days := flag.Int("days", 365, "number of days (rows) per sub-district")
	seed := flag.Uint64("seed", 1, "random seed")
	catalogPath := flag.String("catalog", "", "catalog YAML replacing the embedded one")
	flag.Parse()

	if *out == "" || *days < 0 {
		flag.Usage()
		return fmt.Errorf("missing or invalid flags: -out, -days")
	}

	c, err := catalog.Load(catalog.Options{Path: *catalogPath})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	levels := c.Levels()
	totals := make(map[string]int, len(levels))
	for _, sd := range c.SubDistricts() {
		labels := walk(levels, *days, rand.New(rand.NewPCG(*seed, nameHash(sd.Name))))
		path := filepath.Join(*out, sd.File)
		if err := writeLabels(path, labels); err != nil {
			return fmt.Errorf("writing %s: %w", sd.File, err)
		}
		for _, l := range labels {
			totals[l]++
		}
		log.Printf("%s: %d rows -> %s", sd.Name, len(labels), path)
	}

	printStats(c, levels, totals)
	return nil
}

// walk starts at Normal and moves at most one level per day, biased to stay put.
func walk(levels []domain.Level, days int, rng *rand.Rand) []string {
	labels := make([]string, days)
	idx := len(levels) / 2
	for i := range labels {
		switch r := rng.IntN(10); {
		case r == 0 && idx > 0:
			idx--
		case r == 1 && idx < len(levels)-1:
			idx++
		}
		labels[i] = levels[idx].Name
	}
	return labels
}

func nameHash(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name)) //nolint:errcheck // hash writes never fail
	return h.Sum64()
}

func writeLabels(path string, labels []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, l := range labels {
		if _, err := w.WriteString(l + "\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printStats(c *domain.Catalog, levels []domain.Level, totals map[string]int) {
	fmt.Printf("\n=== Mock dataset (anchor %s) ===\n", c.AnchorDate().Format(domain.DateLayout))
	for _, l := range levels {
		fmt.Printf("  %-22s %6d\n", l.Name, totals[l.Name])
	}
}
