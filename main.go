package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"

	"geohash-service/api"
	"geohash-service/cache"
	"geohash-service/config"
	"geohash-service/logging"
	"geohash-service/metrics"
)

func main() {
	// Initialize configuration
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.Setup(os.Stdout, cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Redis usage counters
	var usage api.UsageRecorder
	if cfg.Redis.Enabled {
		store, err := cache.NewUsageStore(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis unavailable", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		usage = store
		logger.Info("connected to redis", "addr", cfg.Redis.Addr)
	}

	// Register routes
	m := metrics.New()
	h := api.NewHandler(cfg.Geohash, usage, m, logger)
	router := api.RegisterRoutes(h, m.Handler())

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handlers.CombinedLoggingHandler(os.Stdout, router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
