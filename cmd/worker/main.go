// cmd/worker/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/ammerola/fifo-ledger/internal/bootstrap"
	"github.com/ammerola/fifo-ledger/internal/pkg/config"
	"github.com/ammerola/fifo-ledger/internal/pkg/logger"
	"github.com/ammerola/fifo-ledger/internal/workers"
)

func main() {
	slogger := logger.SetupLogger("info", "json")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger = logger.NewLogger(&logger.LogConfig{
		Level:          cfg.App.LogLevel,
		Format:         cfg.App.LogFormat,
		ServiceName:    cfg.App.Name + "-worker",
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
	})
	slog.SetDefault(slogger)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	ctx := context.Background()

	sm, err := config.NewSecretsManager(ctx, cfg, slogger)
	if err == nil {
		err = config.ResolveSecrets(ctx, cfg, sm)
	}
	if err != nil {
		slogger.Error("failed to resolve secrets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	database, err := bootstrap.OpenDatabase(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	redisClient, err := bootstrap.NewRedisClient(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()

	objectStorage, err := bootstrap.NewObjectStorage(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize export storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// No publisher: the worker applies events, it never re-enqueues them.
	core, err := bootstrap.NewCore(database, cfg, bootstrap.Options{
		Cache:   bootstrap.NewCache(redisClient, cfg, slogger),
		Storage: objectStorage,
		Locker:  bootstrap.NewLocker(redisClient, cfg, slogger),
	}, slogger)
	if err != nil {
		slogger.Error("failed to assemble ledger", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisOpt := bootstrap.AsynqRedisOpt(cfg)
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency:     cfg.Asynq.Concurrency,
		Queues:          cfg.Asynq.Queues,
		StrictPriority:  cfg.Asynq.StrictPriority,
		ErrorHandler:    workers.NewErrorHandler(slogger),
		RetryDelayFunc:  workers.RetryDelay,
		ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
		HealthCheckFunc: func(err error) {
			if err != nil {
				slogger.Error("worker health check failed", slog.String("error", err.Error()))
			}
		},
		Logger: logger.NewAsynqLogger(slogger),
	})

	mux := workers.NewServeMux(
		workers.NewEventProcessor(core.Gateway, slogger),
		workers.NewExportProcessor(core.Exporter, slogger),
		workers.NewAuditProcessor(core.Auditor, slogger),
	)

	var scheduler *asynq.Scheduler
	if cfg.Asynq.AuditCron != "" {
		scheduler = asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
			Logger: logger.NewAsynqLogger(slogger),
		})
		entryID, err := scheduler.Register(cfg.Asynq.AuditCron, workers.NewAuditTask())
		if err != nil {
			slogger.Error("failed to schedule ledger audit", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slogger.Info("ledger audit scheduled",
			slog.String("cron", cfg.Asynq.AuditCron),
			slog.String("entry_id", entryID))
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	if err := srv.Start(mux); err != nil {
		slogger.Error("failed to start worker server", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if scheduler != nil {
		if err := scheduler.Start(); err != nil {
			slogger.Error("failed to start scheduler", slog.String("error", err.Error()))
			srv.Shutdown()
			os.Exit(1)
		}
	}

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues),
		slog.Bool("redis_lock", cfg.Ledger.RedisLockEnabled))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	if scheduler != nil {
		scheduler.Shutdown()
	}
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}
