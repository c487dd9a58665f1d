//go:build integration
// +build integration

package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/fifo-ledger/internal/adapters/db"
	"github.com/ammerola/fifo-ledger/test/helpers"
)

func TestMigrator_DownAndUp(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	testDB := helpers.SetupTestDB(t)
	ctx := context.Background()

	migrator, err := db.NewMigrator(&db.MigrationConfig{DatabaseURL: testDB.Config.URL()}, helpers.TestLogger())
	require.NoError(t, err)
	defer migrator.Close()

	version, dirty, err := migrator.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	require.NoError(t, migrator.Down(ctx))

	version, _, err = migrator.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)

	var tables int
	require.NoError(t, testDB.PgxPool.QueryRow(ctx,
		`SELECT count(*) FROM information_schema.tables WHERE table_name = 'batches'`).Scan(&tables))
	assert.Zero(t, tables)

	require.NoError(t, migrator.Up(ctx))
	require.NoError(t, migrator.Up(ctx))

	version, _, err = migrator.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}
