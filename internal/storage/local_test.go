package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BanAutomation/battery-api/internal/config"
)

func TestLocalStorePut(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(config.LocalStorageConfig{BasePath: dir, BaseURL: "/results"})
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "sweep.csv", []byte("a,b\n1,2\n"), "text/csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/results/"))
	assert.True(t, strings.HasSuffix(url, "-sweep.csv"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(content))
}

func TestLocalStorePutUniqueKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(config.LocalStorageConfig{BasePath: dir, BaseURL: "/results"})
	require.NoError(t, err)

	url1, err := store.Put(context.Background(), "report.pdf", []byte("one"), "application/pdf")
	require.NoError(t, err)
	url2, err := store.Put(context.Background(), "report.pdf", []byte("two"), "application/pdf")
	require.NoError(t, err)

	assert.NotEqual(t, url1, url2, "repeated runs must not overwrite each other")
}

func TestNewStoreSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(config.StorageConfig{
		Type:  "local",
		Local: config.LocalStorageConfig{BasePath: dir, BaseURL: "/results"},
	})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)

	_, err = NewStore(config.StorageConfig{Type: "ftp"})
	assert.Error(t, err)
}
