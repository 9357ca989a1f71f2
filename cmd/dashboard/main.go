package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/drought-dashboard/internal/adapter/http"
	"github.com/couchcryptid/drought-dashboard/internal/catalog"
	"github.com/couchcryptid/drought-dashboard/internal/config"
	"github.com/couchcryptid/drought-dashboard/internal/observability"
	"github.com/couchcryptid/drought-dashboard/internal/series"
	"github.com/couchcryptid/drought-dashboard/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	cat, err := catalog.Load(catalog.Options{Path: cfg.CatalogPath, AnchorDate: cfg.AnchorDate})
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded",
		"anchor_date", cat.AnchorDate().Format("2006-01-02"),
		"sub_districts", len(cat.SubDistricts()),
		"data_dir", cfg.DataDir,
	)

	loader := series.NewCachedLoader(series.NewFileLoader(cfg.DataDir, cat, logger, metrics), metrics)
	renderer := view.NewRenderer(cat, loader, nil, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, renderer,
		view.ChartOptions{Width: cfg.ChartWidth, Height: cfg.ChartHeight},
		series.DirChecker{Dir: cfg.DataDir}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
