// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/fifo-ledger/internal/adapters/db"
	"github.com/ammerola/fifo-ledger/internal/bootstrap"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
	"github.com/ammerola/fifo-ledger/internal/handlers"
	"github.com/ammerola/fifo-ledger/internal/handlers/middleware"
	"github.com/ammerola/fifo-ledger/internal/pkg/config"
	"github.com/ammerola/fifo-ledger/internal/pkg/logger"
	"github.com/ammerola/fifo-ledger/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("info", "json")

	slogger.Info("starting fifo ledger api",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = Version
	}

	slogger = logger.NewLogger(&logger.LogConfig{
		Level:          cfg.App.LogLevel,
		Format:         cfg.App.LogFormat,
		ServiceName:    cfg.App.Name + "-api",
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
	})
	slog.SetDefault(slogger)

	ctx := context.Background()

	sm, err := config.NewSecretsManager(ctx, cfg, slogger)
	if err == nil {
		err = config.ResolveSecrets(ctx, cfg, sm)
	}
	if err != nil {
		slogger.Error("failed to resolve secrets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := bootstrap.Migrate(ctx, cfg, slogger); err != nil {
		slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server", slog.String("address", cfg.GetServerAddress()))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	cache          ports.CacheRepository
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
	routes         *handlers.Routes
}

func (d *dependencies) cleanup() {
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.database != nil {
		d.database.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	database, err := bootstrap.OpenDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	redisClient, err := bootstrap.NewRedisClient(ctx, cfg, logger)
	if err != nil {
		deps.cleanup()
		return nil, err
	}
	deps.redisClient = redisClient
	deps.cache = bootstrap.NewCache(redisClient, cfg, logger)

	objectStorage, err := bootstrap.NewObjectStorage(ctx, cfg, logger)
	if err != nil {
		deps.cleanup()
		return nil, fmt.Errorf("failed to initialize export storage: %w", err)
	}

	redisOpt := bootstrap.AsynqRedisOpt(cfg)
	deps.asynqClient = asynq.NewClient(redisOpt)
	deps.asynqInspector = asynq.NewInspector(redisOpt)
	publisher := workers.NewTaskClient(deps.asynqClient, cfg.Asynq.EventMaxRetry, logger)

	core, err := bootstrap.NewCore(database, cfg, bootstrap.Options{
		Cache:     deps.cache,
		Storage:   objectStorage,
		Publisher: publisher,
	}, logger)
	if err != nil {
		deps.cleanup()
		return nil, err
	}

	deps.routes = &handlers.Routes{
		Health:    handlers.NewHealthHandler(database, deps.cache, deps.asynqInspector, cfg, logger),
		Inventory: handlers.NewInventoryHandler(core.Inventory, core.Ledger, core.Registry, logger),
		Events:    handlers.NewEventHandler(core.Gateway, logger),
		Export:    handlers.NewExportHandler(core.Exporter, publisher, logger),
		Admin:     handlers.NewAdminHandler(core.Reset, logger),
	}

	logger.Info("all dependencies initialized successfully",
		slog.Bool("cache", deps.cache != nil),
		slog.Bool("export_storage", objectStorage != nil))
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	deps.routes.Register(mux)

	// Applied innermost first
	var handler http.Handler = mux

	if cfg.Server.RequestTimeout > 0 {
		handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)
	}
	handler = middleware.Compression(handler)
	handler = middleware.Logger(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	if cfg.Server.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Server.RateLimitRequests, cfg.Server.RateLimitDuration)(handler)
	}

	if len(cfg.Server.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Server.AllowedOrigins)(handler)
	}

	if cfg.Server.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	handler = middleware.RequestID(handler)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}
