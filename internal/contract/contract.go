// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/nhollman/breeze/schema"
)

// CacheManager defines the interface for managing the persistence stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetResultStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for cached analysis results.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	Clear() error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for tracking analysis runs.
type HistoryStore interface {
	// RecordRun persists one completed analysis run and returns its ID.
	RecordRun(run schema.AnalysisRun) (int64, error)

	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]schema.AnalysisRun, error)

	// Clear removes all recorded runs.
	Clear() error

	// GetStatus returns status information about the history store.
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection.
	Close() error
}
