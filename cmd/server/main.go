package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/light-bringer/catalog-lifecycle/internal/services"
)

// Config holds application configuration, loaded from the environment.
type Config struct {
	HTTPPort  string `envconfig:"HTTP_PORT" default:"8080"`
	SpannerDB string `envconfig:"SPANNER_DATABASE" default:"projects/test-project/instances/dev-instance/databases/catalog-lifecycle-db"`

	// Optional collaborators; empty values disable them.
	RevalidateEndpoint string `envconfig:"REVALIDATE_ENDPOINT"`
	RevalidateSecret   string `envconfig:"REVALIDATE_SECRET"`
	ImageBucket        string `envconfig:"IMAGE_BUCKET"`

	Environment string `envconfig:"ENVIRONMENT" default:"development"`
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting catalog lifecycle service",
		zap.String("spanner_database", cfg.SpannerDB),
		zap.String("http_port", cfg.HTTPPort))

	serviceOpts, err := services.NewServiceOptions(ctx, services.Config{
		SpannerDB:          cfg.SpannerDB,
		RevalidateEndpoint: cfg.RevalidateEndpoint,
		RevalidateSecret:   cfg.RevalidateSecret,
		ImageBucket:        cfg.ImageBucket,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	mux := http.NewServeMux()
	serviceOpts.Handler.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	return nil
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
