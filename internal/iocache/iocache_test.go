package iocache

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/nhollman/breeze/schema"
	"github.com/stretchr/testify/assert"
)

// resetGlobals restores the global manager state around a test.
func resetGlobals(t *testing.T) {
	t.Helper()
	initOnce = sync.Once{}
	closeOnce = sync.Once{}
	Manager = &StoreManager{}
	t.Cleanup(func() {
		CloseStores()
		initOnce = sync.Once{}
		closeOnce = sync.Once{}
		Manager = &StoreManager{}
	})
}

// TestInitStores verifies both stores come up on SQLite temp files.
func TestInitStores(t *testing.T) {
	resetGlobals(t)
	dir := t.TempDir()

	err := InitStores(
		schema.SQLiteBackend, filepath.Join(dir, "cache.db"),
		schema.SQLiteBackend, filepath.Join(dir, "history.db"),
	)
	assert.NoError(t, err)
	assert.NotNil(t, Manager.GetResultStore())
	assert.NotNil(t, Manager.GetHistoryStore())
}

// TestInitStoresSkipsEmptyBackends verifies an empty backend leaves that
// store unset.
func TestInitStoresSkipsEmptyBackends(t *testing.T) {
	resetGlobals(t)
	dir := t.TempDir()

	err := InitStores(schema.SQLiteBackend, filepath.Join(dir, "cache.db"), "", "")
	assert.NoError(t, err)
	assert.NotNil(t, Manager.GetResultStore())
	assert.Nil(t, Manager.GetHistoryStore())
}

// TestInitStoresIdempotent verifies repeated init and close are safe.
func TestInitStoresIdempotent(t *testing.T) {
	resetGlobals(t)
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "cache.db")
	historyPath := filepath.Join(dir, "history.db")

	assert.NoError(t, InitStores(schema.SQLiteBackend, cachePath, schema.SQLiteBackend, historyPath))
	assert.NoError(t, InitStores(schema.SQLiteBackend, cachePath, schema.SQLiteBackend, historyPath))

	first := Manager.GetResultStore()
	assert.NoError(t, InitStores(schema.NoneBackend, "", schema.NoneBackend, ""))
	assert.Equal(t, first, Manager.GetResultStore())

	CloseStores()
	CloseStores()
}

// TestClearCacheSQLite verifies clearing deletes the database file and
// tolerates a missing one.
func TestClearCacheSQLite(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "cache.db")

	store, err := NewCacheStore("test_cache", schema.SQLiteBackend, dbPath)
	assert.NoError(t, err)
	assert.NoError(t, store.Close())

	assert.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))
	assert.NoFileExists(t, dbPath)

	// A second clear on the missing file is fine.
	assert.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))

	// Empty path is rejected.
	assert.Error(t, ClearCache(schema.SQLiteBackend, "", ""))

	// Disabled backend is a no-op.
	assert.NoError(t, ClearCache(schema.NoneBackend, "", ""))
}

// TestClearHistorySQLite verifies the history variant of clearing.
func TestClearHistorySQLite(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")

	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	assert.NoError(t, err)
	assert.NoError(t, store.Close())

	assert.NoError(t, ClearHistory(schema.SQLiteBackend, dbPath, ""))
	assert.NoFileExists(t, dbPath)

	assert.Error(t, ClearHistory(schema.DatabaseBackend("oracle"), dbPath, ""))
}
