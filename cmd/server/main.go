package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ia-server/internal/config"
	"ia-server/internal/di"
	"ia-server/internal/infrastructure/env"
	"ia-server/internal/infrastructure/logger"

	"github.com/fatih/color"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envService := env.NewEnvService()

	log, err := logger.NewLoggerAdapter(envService.GetWithDefault("LOG_LEVEL", "info"))
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Falha ao iniciar o logger: %v\n", err)
		os.Exit(1)
	}

	for _, note := range envService.Notes() {
		log.Info("Environment", "appEnv", envService.AppEnv(), "note", note)
	}

	cfg, err := config.Load(envService)
	if err != nil {
		log.Error("Invalid configuration", "error", err)
		log.Close()
		os.Exit(1)
	}

	container, err := di.NewContainer(cfg, log)
	if err != nil {
		log.Error("Initialization failed", "error", err)
		log.Close()
		os.Exit(1)
	}
	defer container.Close()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           container.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      writeTimeout(cfg.UpstreamTimeout),
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	log.Info("Server started",
		"addr", srv.Addr,
		"upstream", cfg.UpstreamMode,
		"model", cfg.Model,
		"activityCapacity", cfg.ActivityCapacity,
	)
	color.New(color.FgGreen, color.Bold).Printf("✅ Servidor rodando na porta %d\n", cfg.Port)

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server stopped", "error", err)
			container.Close()
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Graceful shutdown failed", "error", err)
		}
	}
}

// writeTimeout leaves room for the upstream call plus rendering. No
// upstream timeout means no write timeout either.
func writeTimeout(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		return 0
	}
	return upstream + 15*time.Second
}
