package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/nhollman/breeze/schema"
	"github.com/stretchr/testify/assert"
)

// newSQLiteCacheStore creates a throwaway store backed by a temp file.
func newSQLiteCacheStore(t *testing.T) *CacheStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore("test_cache", schema.SQLiteBackend, dbPath)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*CacheStoreImpl)
}

// TestCacheStoreRoundTrip verifies set, get and overwrite semantics.
func TestCacheStoreRoundTrip(t *testing.T) {
	store := newSQLiteCacheStore(t)

	_, _, _, err := store.Get("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	now := time.Now().Unix()
	assert.NoError(t, store.Set("k1", []byte(`{"score":80}`), 1, now))

	value, version, ts, err := store.Get("k1")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"score":80}`), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, now, ts)

	// Upsert replaces the previous entry.
	assert.NoError(t, store.Set("k1", []byte(`{"score":55}`), 2, now+10))
	value, version, ts, err = store.Get("k1")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"score":55}`), value)
	assert.Equal(t, 2, version)
	assert.Equal(t, now+10, ts)
}

// TestCacheStoreClear verifies clear removes every entry.
func TestCacheStoreClear(t *testing.T) {
	store := newSQLiteCacheStore(t)
	now := time.Now().Unix()

	assert.NoError(t, store.Set("a", []byte("1"), 1, now))
	assert.NoError(t, store.Set("b", []byte("2"), 1, now))
	assert.NoError(t, store.Clear())

	_, _, _, err := store.Get("a")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.Equal(t, 0, status.EntryCount)
}

// TestCacheStoreStatus verifies counts and the timestamp range.
func TestCacheStoreStatus(t *testing.T) {
	store := newSQLiteCacheStore(t)

	oldest := time.Now().Add(-time.Hour).Unix()
	newest := time.Now().Unix()
	assert.NoError(t, store.Set("old", []byte("1"), 1, oldest))
	assert.NoError(t, store.Set("new", []byte("2"), 1, newest))

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.Equal(t, 2, status.EntryCount)
	assert.Equal(t, oldest, status.OldestTS.Unix())
	assert.Equal(t, newest, status.NewestTS.Unix())
	assert.Greater(t, status.SizeBytes, int64(0))
}

// TestCacheStoreNone verifies the disabled backend behaves as a no-op.
func TestCacheStoreNone(t *testing.T) {
	store, err := NewCacheStore("test_cache", schema.NoneBackend, "")
	assert.NoError(t, err)

	assert.NoError(t, store.Set("k", []byte("v"), 1, time.Now().Unix()))
	_, _, _, err = store.Get("k")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.Equal(t, schema.NoneBackend, status.Backend)
	assert.Equal(t, 0, status.EntryCount)
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Close())
}

// TestNewCacheStoreRejectsBadTable verifies identifier validation up front.
func TestNewCacheStoreRejectsBadTable(t *testing.T) {
	_, err := NewCacheStore("bad name", schema.SQLiteBackend, filepath.Join(t.TempDir(), "x.db"))
	assert.Error(t, err)
}

// TestNewCacheStoreUnsupportedBackend verifies unknown backends error out.
func TestNewCacheStoreUnsupportedBackend(t *testing.T) {
	_, err := NewCacheStore("test_cache", schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported cache backend")
}
