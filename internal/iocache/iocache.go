// Package iocache persists analysis results and run history.
package iocache

import (
	"sync"

	"github.com/nhollman/breeze/internal/contract"
)

// StoreManager manages the result cache and history store instances.
type StoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	result       contract.CacheStore
	history      contract.HistoryStore
}

var _ contract.CacheManager = &StoreManager{} // Compile-time check

// GetResultStore returns the result CacheStore.
func (mgr *StoreManager) GetResultStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.result
}

// GetHistoryStore returns the HistoryStore for run tracking.
func (mgr *StoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
