package schema

import "time"

// CacheStatus describes the state of the result cache backend.
type CacheStatus struct {
	Backend    DatabaseBackend `json:"backend"`
	Location   string          `json:"location"`
	EntryCount int             `json:"entry_count"`
	SizeBytes  int64           `json:"size_bytes"`
	OldestTS   time.Time       `json:"oldest_ts"`
	NewestTS   time.Time       `json:"newest_ts"`
}

// HistoryStatus describes the state of the analysis-history backend.
type HistoryStatus struct {
	Backend  DatabaseBackend `json:"backend"`
	Location string          `json:"location"`
	RunCount int             `json:"run_count"`
	FirstRun time.Time       `json:"first_run"`
	LastRun  time.Time       `json:"last_run"`
}
