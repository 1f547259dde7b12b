package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"profilebook/internal/config"
	"profilebook/internal/core"
	"profilebook/internal/countries"
	"profilebook/internal/logging"
	"profilebook/internal/storage"
	"profilebook/internal/web"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"store_path", cfg.Store.Path,
		"home_page_size", cfg.View.HomePageSize,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Open the persisted slot holding the record collection.
	slot, err := storage.Open(cfg.Store.Path, cfg.Store.SlotKey)
	if err != nil {
		slog.Error("failed to open record storage", "error", err)
		os.Exit(1)
	}
	defer slot.Close()

	// Hydrate the store; missing or corrupt snapshots start empty.
	store := core.NewStore(slot)
	store.LoadInitial()
	slog.Info("record store loaded", "records", store.Len())

	// Country list is a one-shot background fetch; the UI never waits on it.
	provider := countries.New(cfg.Countries.URL, &http.Client{Timeout: cfg.Countries.Timeout})
	fetchCtx, cancelFetch := context.WithCancel(context.Background())
	if cfg.Countries.Enabled {
		go provider.Fetch(fetchCtx)
	}

	service := core.NewService(store, provider)
	server := web.NewServer(service, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		cancelFetch()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
