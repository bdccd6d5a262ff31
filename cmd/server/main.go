package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"wishwatch/internal/api"
	"wishwatch/internal/config"
	"wishwatch/internal/httpx"
	"wishwatch/internal/refresh"
	"wishwatch/internal/scraper"
	"wishwatch/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.Load()

	dbStore, err := store.NewStore(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to store", "error", err)
		os.Exit(1)
	}
	defer dbStore.Close()

	// Run schema migrations to ensure tables exist
	workDir, _ := os.Getwd()
	schemaPath := filepath.Join(workDir, "internal", "store", "schema.sql")
	if err := dbStore.RunMigrations(schemaPath); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Interactive requests use the fast fetcher; the background sweep goes
	// through the robots-respecting polite client.
	interactive := scraper.New(httpx.NewFetcher(cfg.UserAgent))
	background := scraper.New(httpx.NewPoliteClient(cfg.UserAgent))

	policy := refresh.PricePolicy{
		Min:        cfg.MinPrice,
		Max:        cfg.MaxPrice,
		MinGeneric: cfg.MinGenericPrice,
	}
	checker := refresh.NewChecker(dbStore, background, policy, cfg.RefreshSchedule)
	if err := checker.Start(ctx); err != nil {
		slog.Error("failed to start price checker", "error", err)
		os.Exit(1)
	}
	defer checker.Stop()

	srv := api.NewServer(dbStore, interactive, checker)

	slog.Info("starting server", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv.Router()); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
