package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/chocozoo/storefront/api/routes"
	"github.com/chocozoo/storefront/internal/catalog"
	"github.com/chocozoo/storefront/internal/checkout"
	"github.com/chocozoo/storefront/internal/filters"
	"github.com/chocozoo/storefront/internal/session"
	"github.com/chocozoo/storefront/internal/survey"
	"github.com/chocozoo/storefront/pkg/config"
	"github.com/chocozoo/storefront/pkg/logger"
	"github.com/chocozoo/storefront/pkg/metrics"
	"github.com/chocozoo/storefront/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog", err)
		os.Exit(1)
	}
	logg.Info(logg.WithFields(context.Background(), map[string]any{
		"products": cat.Len(),
		"path":     cfg.Catalog.Path,
	}), "catalog loaded")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storeMetrics := metrics.NewStorefront(registry)

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions := session.NewRegistry(session.Params{
		Logger:   logg,
		Recorder: storeMetrics,
		IdleTTL:  cfg.Session.IdleTTL,
	})
	go func() {
		if err := sessions.Run(ctx, cfg.Session.SweepInterval); err != nil && !errors.Is(err, context.Canceled) {
			logg.Error(ctx, "session sweeper stopped", err)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	serverCtx := logg.WithFields(ctx, map[string]any{
		"env":   cfg.App.Env,
		"addr":  addr,
		"redis": cfg.Redis.Enabled,
	})

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Params{
			Config:   cfg,
			Logger:   logg,
			Catalog:  cat,
			Engine:   filters.NewEngine(cat),
			Sessions: sessions,
			Checkout: checkout.NewService(logg, storeMetrics),
			Survey:   survey.NewService(logg),
			Metrics:  storeMetrics,
			Gatherer: registry,
			Redis:    redisClient,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info(serverCtx, "starting storefront api")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(serverCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(serverCtx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(serverCtx, "graceful shutdown failed", err)
		}
	}
	logg.Info(serverCtx, "storefront api stopped")
}

func loadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		return catalog.Default()
	}
	return catalog.Load(cfg.Path)
}
