package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/herdscan/breed-identifier/config"
	"github.com/herdscan/breed-identifier/internal/catalog"
	"github.com/herdscan/breed-identifier/internal/handler"
	"github.com/herdscan/breed-identifier/internal/httpserver"
	"github.com/herdscan/breed-identifier/internal/inference"
	"github.com/herdscan/breed-identifier/internal/metrics"
	"github.com/herdscan/breed-identifier/internal/selector"
	"github.com/herdscan/breed-identifier/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, true, cfg.Server.Environment)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cat, err := catalog.New()
	if err != nil {
		log.Error("Failed to load breed catalog", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("Breed catalog loaded", slog.Int("breeds", cat.Len()))

	engine, err := initializeEngine(log, cfg)
	if err != nil {
		log.Error("Failed to create inference engine", slog.Any("err", err))
		os.Exit(1)
	}

	collector := metrics.NewCollector(cfg.Metrics.EventBuffer, cat.Len(), nil, log)
	collector.Start(ctx)

	apiHandler := handler.New(log, cat, engine, collector, cfg.Upload.MaxBytes)

	mux := setupRouter(apiHandler, cfg.Static.Dir)

	srv, err := httpserver.New(cfg.Server.Address, mux)
	if err != nil {
		log.Error("Failed to create server", slog.Any("err", err))
		os.Exit(1)
	}

	log.Info("Breed identifier API listening", slog.String("address", cfg.Server.Address))

	srvErrCh := make(chan error, 1)

	go func() {
		srvErrCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("Error during shutdown", slog.Any("err", err))
		}
	case err := <-srvErrCh:
		if err != nil {
			log.Error("Error starting server", slog.Any("err", err))
			os.Exit(1)
		}
	}
}

func initializeEngine(log *slog.Logger, cfg *config.Config) (*inference.Engine, error) {
	minDelay, err := time.ParseDuration(cfg.Inference.MinDelay)
	if err != nil {
		return nil, err
	}

	maxDelay, err := time.ParseDuration(cfg.Inference.MaxDelay)
	if err != nil {
		return nil, err
	}

	sel := createSelector(log, cfg.Inference.Selection)

	return inference.NewEngine(sel, nil, inference.Config{
		MinDelay:      minDelay,
		MaxDelay:      maxDelay,
		MinConfidence: cfg.Inference.MinConfidence,
		MaxConfidence: cfg.Inference.MaxConfidence,
	}, log)
}

func createSelector(log *slog.Logger, selectionType string) selector.Selector {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	switch selectionType {
	case config.SelectionWeighted:
		return selector.NewWeightedSelector(rng)
	case config.SelectionUniform:
		return selector.NewUniformSelector(rng)
	default:
		log.Warn("Unknown selection type, defaulting to weighted", slog.String("requested", selectionType))
		return selector.NewWeightedSelector(rng)
	}
}
