// test/helpers/helpers.go
package helpers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/fifo-ledger/internal/adapters/db"
	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a logger that is silent unless tests run with -v.
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetupTestDB starts a PostgreSQL container and applies the embedded
// migrations.
func SetupTestDB(tb testing.TB) *TestDB {
	tb.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(tb, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_ledger",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(tb, err, "Could not start PostgreSQL container")

	tb.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			tb.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_ledger",
		SSLMode:            "disable",
		MaxConnections:     20,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    30 * time.Minute,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     10 * time.Second,
		EnableQueryLogging: testing.Verbose(),
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(tb, err, "Could not connect to PostgreSQL")
	tb.Cleanup(database.Close)

	err = db.RunMigrationsWithRetry(context.Background(), &db.MigrationConfig{
		DatabaseURL: dbConfig.URL(),
	}, TestLogger(), 3)
	require.NoError(tb, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis starts an in-process Redis server.
func SetupTestRedis(tb testing.TB) *TestRedis {
	tb.Helper()

	mr := miniredis.RunT(tb)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	tb.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a configuration suitable for tests. It passes
// Validate.
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "fifo-ledger-test",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
		},
		Server: config.ServerConfig{
			Host:              "localhost",
			Port:              "8080",
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			RequestTimeout:    10 * time.Second,
			RateLimitRequests: 1000,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
		},
		Database: config.DatabaseConfig{
			Host:           "localhost",
			Port:           "5432",
			User:           "test",
			Password:       "test",
			Name:           "test_ledger",
			SSLMode:        "disable",
			MaxConnections: 10,
			MinConnections: 1,
			RunMigrations:  true,
		},
		Redis: config.RedisConfig{
			Host:           "localhost",
			Port:           "6379",
			PoolSize:       10,
			CacheEnabled:   true,
			CacheNamespace: "fifo-test",
			StatusTTL:      time.Minute,
		},
		Asynq: config.AsynqConfig{
			RedisAddr:     "localhost:6379",
			Concurrency:   2,
			Queues:        map[string]int{"events": 6, "exports": 3, "maintenance": 1},
			EventMaxRetry: 3,
		},
		Ledger: config.LedgerConfig{
			MaxRetries:            5,
			BaseBackoff:           5 * time.Millisecond,
			MaxBackoff:            100 * time.Millisecond,
			LockTimeout:           2 * time.Second,
			StatementTimeout:      10 * time.Second,
			RedisLockTTL:          5 * time.Second,
			RedisLockRetryBackoff: 10 * time.Millisecond,
			RedisLockMaxRetries:   50,
		},
		Storage: config.StorageConfig{
			Driver:    "none",
			KeyPrefix: "exports",
		},
		Secrets: config.SecretsConfig{
			Provider: "env",
		},
	}
}

// Purchase builds a raw purchase event. An empty timestamp is left for the
// ingestion side to default.
func Purchase(productID string, quantity int64, price string, ts time.Time) domain.RawEvent {
	p := decimal.RequireFromString(price)
	return domain.RawEvent{
		ProductID: productID,
		EventType: string(domain.EventTypePurchase),
		Quantity:  json.Number(fmt.Sprint(quantity)),
		UnitPrice: &p,
		Timestamp: formatTimestamp(ts),
	}
}

// Sale builds a raw sale event.
func Sale(productID string, quantity int64, ts time.Time) domain.RawEvent {
	return domain.RawEvent{
		ProductID: productID,
		EventType: string(domain.EventTypeSale),
		Quantity:  json.Number(fmt.Sprint(quantity)),
		Timestamp: formatTimestamp(ts),
	}
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339Nano)
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables empties the ledger tables, children first.
func TruncateAllTables(tb testing.TB, pool *pgxpool.Pool) {
	tb.Helper()

	ctx := context.Background()
	tables := []string{
		"sale_consumption_details",
		"sales",
		"batches",
		"products",
	}

	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		require.NoError(tb, err, "Failed to truncate table: %s", table)
	}
}

// CreateTempFile creates a temporary file for testing
func CreateTempFile(t *testing.T, content []byte, extension string) string {
	t.Helper()

	file, err := os.CreateTemp(t.TempDir(), fmt.Sprintf("test-*%s", extension))
	require.NoError(t, err, "Failed to create temp file")

	_, err = file.Write(content)
	require.NoError(t, err, "Failed to write to temp file")
	require.NoError(t, file.Close())

	return file.Name()
}
