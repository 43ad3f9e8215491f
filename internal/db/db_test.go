package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tomatick.db")

	database, err := Open(path, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	version, err := database.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, version)

	require.NoError(t, database.RunMigrations(ctx))
	require.NoError(t, database.RunMigrations(ctx), "second run is a no-op")

	version, err = database.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), version)

	_, err = database.ExecContext(ctx, "INSERT INTO kv_store (key, value) VALUES ('k', 'v')")
	assert.NoError(t, err)
}

func TestOpen_EncryptedNeedsKey(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "secret.db")

	database, err := Open(path, "correct horse")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(ctx))
	require.NoError(t, database.Close())

	reopened, err := Open(path, "correct horse")
	require.NoError(t, err)
	version, err := reopened.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), version)
	require.NoError(t, reopened.Close())

	_, err = Open(path, "wrong key")
	assert.Error(t, err)
}
