// internal/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/fifo-ledger/internal/adapters/db"
	redis_a "github.com/ammerola/fifo-ledger/internal/adapters/redis_adapter"
	"github.com/ammerola/fifo-ledger/internal/adapters/storage"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
	"github.com/ammerola/fifo-ledger/internal/core/services"
	"github.com/ammerola/fifo-ledger/internal/pkg/config"
)

// OpenDatabase connects the pool described by cfg.Database.
func OpenDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*db.Database, error) {
	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	return db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
}

// Migrate applies pending schema migrations when cfg enables them.
func Migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if !cfg.Database.RunMigrations {
		logger.Info("database migrations disabled")
		return nil
	}

	logger.Info("running database migrations")
	return db.RunMigrationsWithRetry(ctx, migrationConfig(cfg), logger, 3)
}

// RollbackMigration reverts the most recent migration and returns the
// schema version left in place.
func RollbackMigration(ctx context.Context, cfg *config.Config, logger *slog.Logger) (uint, error) {
	migrator, err := db.NewMigrator(migrationConfig(cfg), logger)
	if err != nil {
		return 0, err
	}
	defer migrator.Close()

	if err := migrator.Down(ctx); err != nil {
		return 0, err
	}

	version, _, err := migrator.Version(ctx)
	return version, err
}

func migrationConfig(cfg *config.Config) *db.MigrationConfig {
	return &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}
}

// NewRedisClient builds and pings the cache and lock client.
func NewRedisClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*redis.Client, error) {
	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	client := redis.NewClient(&redis.Options{
		Addr:            cfg.GetRedisAddress(),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// AsynqRedisOpt returns the broker connection settings.
func AsynqRedisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
}

// NewObjectStorage returns the export store selected by cfg.Storage.Driver,
// or nil when exports to storage are disabled.
func NewObjectStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.ObjectStorage, error) {
	switch cfg.Storage.Driver {
	case "s3":
		return storage.NewS3Storage(ctx, &storage.S3Config{
			Region:          cfg.Storage.Region,
			Bucket:          cfg.Storage.Bucket,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Endpoint:        cfg.Storage.Endpoint,
			UsePathStyle:    cfg.Storage.UsePathStyle,
			CreateBucket:    cfg.Storage.CreateBucket,
		}, logger)
	case "local":
		return storage.NewLocalStorage(cfg.Storage.LocalPath, logger), nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown export storage driver %q", cfg.Storage.Driver)
	}
}

// Options carries the optional collaborators of the core services.
type Options struct {
	Cache     ports.CacheRepository
	Storage   ports.ObjectStorage
	Publisher ports.TaskPublisher
	Locker    ports.ProductLocker
}

// Core is the assembled ledger: engine, read models and the gateway.
type Core struct {
	Scope     *db.TxScope
	Registry  *services.ProductRegistry
	Engine    *services.LedgerEngine
	Inventory *services.InventoryAggregator
	Ledger    *services.LedgerView
	Gateway   *services.EventGateway
	Exporter  *services.ExportService
	Reset     *services.ResetService
	Auditor   *services.LedgerAuditor
}

// NewCore wires the core services on top of database.
func NewCore(database *db.Database, cfg *config.Config, opts Options, logger *slog.Logger) (*Core, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}

	scope := db.NewTxScope(database, db.TxConfig{
		LockTimeout:      cfg.Ledger.LockTimeout,
		StatementTimeout: cfg.Ledger.StatementTimeout,
	}, logger)

	registry := services.NewProductRegistry(db.NewProductRepository(database, logger), logger)
	engine := services.NewLedgerEngine(scope, services.EngineConfig{
		MaxRetries:  cfg.Ledger.MaxRetries,
		BaseBackoff: cfg.Ledger.BaseBackoff,
		MaxBackoff:  cfg.Ledger.MaxBackoff,
	}, logger)

	inventory := services.NewInventoryAggregator(engine, opts.Cache, cfg.Redis.StatusTTL, logger)
	ledger := services.NewLedgerView(scope, logger)

	gatewayOpts := []services.GatewayOption{services.WithInvalidator(inventory)}
	if opts.Publisher != nil {
		gatewayOpts = append(gatewayOpts, services.WithPublisher(opts.Publisher))
	}
	if opts.Locker != nil {
		gatewayOpts = append(gatewayOpts, services.WithLocker(opts.Locker))
	}

	return &Core{
		Scope:     scope,
		Registry:  registry,
		Engine:    engine,
		Inventory: inventory,
		Ledger:    ledger,
		Gateway:   services.NewEventGateway(registry, engine, logger, gatewayOpts...),
		Exporter:  services.NewExportService(ledger, inventory, opts.Storage, cfg.Storage.KeyPrefix, logger),
		Reset:     services.NewResetService(scope, inventory, logger),
		Auditor:   services.NewLedgerAuditor(scope, logger),
	}, nil
}

// NewCache returns the status cache when enabled in cfg, nil otherwise.
func NewCache(client redis.UniversalClient, cfg *config.Config, logger *slog.Logger) ports.CacheRepository {
	if client == nil || !cfg.Redis.CacheEnabled {
		return nil
	}
	return redis_a.NewCache(client, cfg.Redis.CacheNamespace, logger)
}

// NewLocker returns the per-product redis lock when enabled in cfg, nil otherwise.
func NewLocker(client redis.UniversalClient, cfg *config.Config, logger *slog.Logger) ports.ProductLocker {
	if client == nil || !cfg.Ledger.RedisLockEnabled {
		return nil
	}
	return redis_a.NewProductLock(client, redis_a.LockConfig{
		TTL:          cfg.Ledger.RedisLockTTL,
		RetryBackoff: cfg.Ledger.RedisLockRetryBackoff,
		MaxRetries:   cfg.Ledger.RedisLockMaxRetries,
	}, logger)
}
