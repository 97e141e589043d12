package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arcade-league/arena/app"
	"github.com/arcade-league/arena/config"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	go func() {
		if err := application.EventRouter.Run(ctx); err != nil {
			application.Logger.Error("event router stopped", "error", err)
		}
	}()

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: application.Router,
	}

	go func() {
		application.Logger.Info("arena API listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server failed: %v", err)
		}
	}()

	var metricsServer *http.Server
	if cfg.Arena.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", application.Metrics)
		metricsServer = &http.Server{Addr: cfg.Arena.MetricsAddress, Handler: mux}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				application.Logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case <-interrupt:
		application.Logger.Info("shutdown signal received")
	case <-ctx.Done():
		application.Logger.Info("application context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		application.Logger.Error("API server shutdown failed", "error", err)
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			application.Logger.Error("metrics server shutdown failed", "error", err)
		}
	}

	if err := application.Close(); err != nil {
		application.Logger.Error("error closing application", "error", err)
	}

	application.Logger.Info("application shut down gracefully")
}
