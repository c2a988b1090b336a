package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockchart/internal/app/di"
	"stockchart/internal/app/router"
	"stockchart/internal/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	level, _ := config.ParseLevel(cfg.Log.Level)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// An empty key is still sent; upstream rejects it.
	if cfg.Marketstack.AccessKey == "" {
		slog.Warn("MARKETSTACK_ACCESS_KEY is not set; upstream will reject requests")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// View
	chartView := di.NewChartView(cfg, di.NewMarket(cfg))
	chartView.Mount(ctx)
	defer chartView.Unmount()

	// Handler
	chartH := di.NewChartHandler(cfg, chartView)

	// Router
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.NewRouter(chartH),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.Server.Addr, "symbol", cfg.Chart.Symbol)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
