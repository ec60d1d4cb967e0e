package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"shortlink/internal/cache"
	"shortlink/internal/config"
	"shortlink/internal/handler"
	"shortlink/internal/keygen"
	"shortlink/internal/metrics"
	custommiddleware "shortlink/internal/middleware"
	"shortlink/internal/repository"
	"shortlink/internal/repository/memory"
	"shortlink/internal/service"
	"shortlink/internal/validation"
)

// storage is satisfied by both the Postgres and the in-memory store.
type storage interface {
	service.URLRepository
	service.KeyPoolRepository
	service.UserRepository
}

type redirectCache interface {
	service.Cache
	metrics.CacheStats
	Close()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.App.LogLevel, err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	store, pgPool, closeStore, err := openStorage(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	urlCache, err := openCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer urlCache.Close()

	// A nil writer leaves the recorder disabled.
	var metricsWriter metrics.Writer
	if pgPool != nil {
		metricsWriter = pgPool
	}
	recorder := metrics.NewRecorder(metricsWriter, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	collector := metrics.NewCollector(recorder, pgPool, urlCache, store, logger)
	go collector.Run(ctx, cfg.Metrics.InfraInterval)

	keys, err := keygen.New(cfg.Pool.SegmentLength)
	if err != nil {
		return fmt.Errorf("failed to create key generator: %w", err)
	}
	apiKeys, err := keygen.NewAPIKeys()
	if err != nil {
		return fmt.Errorf("failed to create api key generator: %w", err)
	}

	poolService := service.NewPoolService(store, keys, cfg.Pool.ReplenishBatch, logger)
	if _, err := poolService.Replenish(ctx, cfg.Pool.TargetSize); err != nil {
		return fmt.Errorf("failed to seed key pool: %w", err)
	}

	userService := service.NewUserService(store, apiKeys, logger)
	urlService := service.NewURLService(
		store, userService, urlCache, recorder, logger, cfg.Pool.MaxAllocationAttempts,
	)

	h := handler.New(
		urlService, userService, poolService,
		validation.New(&cfg.Validation), logger, recorder, cfg.App.BaseURL,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(custommiddleware.Metrics(recorder))

	if cfg.Admin.Secret == "" {
		logger.Warn("ADMIN_SECRET is empty, operator endpoints are unauthenticated")
	}
	h.Register(e, custommiddleware.SecretAuth(custommiddleware.AdminSecretHeader, cfg.Admin.Secret))

	if cfg.Pprof.Enabled {
		pprofGroup := e.Group("/debug/pprof",
			custommiddleware.SecretAuth(custommiddleware.PprofSecretHeader, cfg.Pprof.Secret))
		custommiddleware.RegisterPprof(pprofGroup)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.String("storage", cfg.Database.Storage),
		slog.String("cache", cfg.Cache.Backend),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	listener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	httpServer := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		return fmt.Errorf("http server error: %w", err)
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

func openStorage(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (storage, *pgxpool.Pool, func(), error) {
	switch cfg.Storage {
	case config.StorageMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), nil, func() {}, nil
	case config.StoragePostgres:
		store, err := repository.New(ctx, cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create repository: %w", err)
		}
		return store, store.Pool(), store.Close, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

func openCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (redirectCache, error) {
	switch cfg.Cache.Backend {
	case config.CacheRistretto:
		c, err := cache.New(cfg.Cache.MaxSizePow2, cfg.Cache.TTL)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache: %w", err)
		}
		return c, nil
	case config.CacheRedis:
		c, err := cache.NewRedis(ctx, &cfg.Redis, cfg.Cache.TTL, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return c, nil
	case config.CacheNone:
		return cache.Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
