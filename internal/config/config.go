package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// DataDir holds one forecast file per sub-district.
	DataDir string

	// CatalogPath replaces the embedded catalog when set.
	CatalogPath string
	// AnchorDate overrides the catalog's anchor date when non-zero.
	AnchorDate time.Time

	ChartWidth  int
	ChartHeight int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	var anchor time.Time
	if s := os.Getenv("ANCHOR_DATE"); s != "" {
		anchor, err = domain.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("invalid ANCHOR_DATE %q: expected YYYY-MM-DD", s)
		}
	}

	chartWidth, err := parsePositiveInt("CHART_WIDTH", 1024)
	if err != nil {
		return nil, err
	}
	chartHeight, err := parsePositiveInt("CHART_HEIGHT", 420)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		DataDir:         sharedcfg.EnvOrDefault("DATA_DIR", "dataset"),
		CatalogPath:     os.Getenv("CATALOG_PATH"),
		AnchorDate:      anchor,
		ChartWidth:      chartWidth,
		ChartHeight:     chartHeight,
	}

	if cfg.DataDir == "" {
		return nil, errors.New("DATA_DIR is required")
	}

	return cfg, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, s)
	}
	return n, nil
}
