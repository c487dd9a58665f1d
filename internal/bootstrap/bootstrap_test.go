package bootstrap_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/fifo-ledger/internal/adapters/storage"
	"github.com/ammerola/fifo-ledger/internal/bootstrap"
	"github.com/ammerola/fifo-ledger/internal/pkg/config"
	"github.com/ammerola/fifo-ledger/test/helpers"
)

func TestNewObjectStorage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		storage config.StorageConfig
		wantNil bool
		wantErr bool
	}{
		{name: "local", storage: config.StorageConfig{Driver: "local", LocalPath: t.TempDir()}},
		{name: "disabled", storage: config.StorageConfig{Driver: "none"}, wantNil: true},
		{name: "unset", wantNil: true},
		{name: "unknown", storage: config.StorageConfig{Driver: "ftp"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := bootstrap.NewObjectStorage(ctx, &config.Config{Storage: tt.storage}, helpers.TestLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, store)
				return
			}
			assert.IsType(t, &storage.LocalStorage{}, store)
		})
	}
}

func TestOptionalRedisComponents(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &config.Config{}
	assert.Nil(t, bootstrap.NewCache(client, cfg, helpers.TestLogger()))
	assert.Nil(t, bootstrap.NewLocker(client, cfg, helpers.TestLogger()))

	cfg.Redis.CacheEnabled = true
	cfg.Redis.CacheNamespace = "fifo"
	cfg.Ledger.RedisLockEnabled = true
	assert.NotNil(t, bootstrap.NewCache(client, cfg, helpers.TestLogger()))
	assert.NotNil(t, bootstrap.NewLocker(client, cfg, helpers.TestLogger()))

	assert.Nil(t, bootstrap.NewCache(nil, cfg, helpers.TestLogger()))
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{}
	cfg.Redis.Host, cfg.Redis.Port = mr.Host(), mr.Port()

	client, err := bootstrap.NewRedisClient(context.Background(), cfg, helpers.TestLogger())
	require.NoError(t, err)
	defer client.Close()

	mr.Close()
	_, err = bootstrap.NewRedisClient(context.Background(), cfg, helpers.TestLogger())
	assert.Error(t, err)
}
