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

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luooka/casebot/internal/catalog"
	"github.com/luooka/casebot/internal/config"
	"github.com/luooka/casebot/internal/database"
	"github.com/luooka/casebot/internal/handler"
	"github.com/luooka/casebot/internal/inventory"
	"github.com/luooka/casebot/internal/logger"
	"github.com/luooka/casebot/internal/opening"
	"github.com/luooka/casebot/internal/pricing"
	"github.com/luooka/casebot/internal/quota"
	"github.com/luooka/casebot/internal/resolver"
	"github.com/luooka/casebot/internal/scheduler"
	"github.com/luooka/casebot/internal/server"
	"github.com/luooka/casebot/internal/worker"
)

const (
	dbMaxConns       = 10
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute
	shutdownDeadline = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	var pool *pgxpool.Pool
	if !cfg.MemoryBackend {
		pool, err = database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := database.Migrate(pool); err != nil {
			slog.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("Using in-memory storage; state will not survive restarts")
	}

	// Catalog
	catalogClient := catalog.NewClient(cfg.CatalogHost, cfg.CatalogToken)
	var catalogRepo catalog.Repository
	if pool != nil {
		catalogRepo = catalog.NewPostgresRepository(pool)
	} else {
		catalogRepo = catalog.NewMemoryRepository()
	}
	store := catalog.NewStore()
	catalogService := catalog.NewService(catalogClient, catalogRepo, store)

	if err := catalogService.Load(context.Background()); err != nil {
		slog.Warn("Catalog not loaded at startup; sync required before opening", "error", err)
	}

	// Pricing
	pricingClient := pricing.NewClient(cfg.CatalogHost, cfg.CatalogToken)
	pricingService, err := pricing.NewService(pricingClient)
	if err != nil {
		slog.Error("Failed to create pricing service", "error", err)
		os.Exit(1)
	}

	// Quota ledger and inventory
	var quotaService quota.Service
	var inventoryService inventory.Service
	if pool != nil {
		quotaService = quota.NewPostgresService(pool, cfg.MaxOpenPerDay, cfg.ResetClock)
		inventoryService = inventory.NewPostgresService(pool)
	} else {
		quotaService = quota.NewMemoryService(cfg.MaxOpenPerDay, cfg.ResetClock)
		inventoryService = inventory.NewMemoryService()
	}

	openingService := opening.NewService(
		catalogService,
		resolver.NewService(),
		quotaService,
		inventoryService,
		cfg.MaxOpenPerRequest,
	)

	// Background catalog refresh
	if cfg.CatalogSyncInterval > 0 {
		syncPool := worker.NewPool(1, 1)
		syncPool.Start()
		defer syncPool.Stop()

		sched := scheduler.New(syncPool)
		sched.Schedule(cfg.CatalogSyncInterval, catalog.NewSyncJob(catalogService))
		defer sched.Stop()

		slog.Info("Scheduled catalog sync enabled", "interval", cfg.CatalogSyncInterval)
	}

	handler.InitValidator()

	var dbPool database.Pool
	if pool != nil {
		dbPool = pool
	}
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, server.Services{
		Opening:   openingService,
		Catalog:   catalogService,
		Pricing:   pricingService,
		Inventory: inventoryService,
		Quota:     quotaService,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownDeadline)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
