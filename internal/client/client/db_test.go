package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDatabase_MigratesMetadataTable(t *testing.T) {
	ctx := context.Background()
	repos, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	require.NoError(t, repos.Metadata.Set(ctx, "access_token", []byte("tok")))
	v, err := repos.Metadata.Get(ctx, "access_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok"), v)
}

func TestInitDatabase_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.db")
	repos, err := InitDatabase(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestInitDatabase_BlockedDirectory(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "state"), []byte("x"), 0o600))

	_, err := InitDatabase(context.Background(), filepath.Join(tmp, "state", "session.db"))
	require.Error(t, err)
}
