package core

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nhollman/breeze/internal/contract"
	"github.com/nhollman/breeze/schema"
)

// currentCacheVersion defines the version of the cached result schema.
const currentCacheVersion = 1

// cacheMaxAge bounds how long a cached analysis stays valid. Weather input
// and the night flag both shift within the hour.
const cacheMaxAge = time.Hour

// cachedAnalyze runs the analysis through the result cache when a store is
// configured, falling back to direct computation otherwise.
func cachedAnalyze(engine *Engine, cfg *contract.Config, mgr contract.CacheManager, bundle *schema.WeatherBundle) *schema.AnalysisResult {
	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetResultStore()
	}
	if store == nil {
		result := engine.Analyze(*bundle)
		return &result
	}

	key := generateCacheKey(engine, cfg, bundle)

	// Check for cache hit
	if result := checkCacheHit(store, key); result != nil {
		return result
	}

	// Cache miss: compute and store
	return computeAndStore(engine, bundle, store, key)
}

// checkCacheHit attempts to retrieve and validate a cached result.
func checkCacheHit(store contract.CacheStore, key string) *schema.AnalysisResult {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= cacheMaxAge {
			var result schema.AnalysisResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// computeAndStore computes the result and stores it in the cache.
func computeAndStore(engine *Engine, bundle *schema.WeatherBundle, store contract.CacheStore, key string) *schema.AnalysisResult {
	result := engine.Analyze(*bundle)

	// Store in cache; a write failure only costs a recompute next time
	if data, err := json.Marshal(result); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}

	return &result
}

// generateCacheKey creates a unique key from the bundle content and every
// option that changes the output. The wall-clock hour is included because
// night detection shifts results across hour boundaries.
func generateCacheKey(engine *Engine, cfg *contract.Config, bundle *schema.WeatherBundle) string {
	bundleJSON, err := json.Marshal(bundle)
	if err != nil {
		bundleJSON = []byte(cfg.InputPath)
	}

	hour := engine.clock.Now().Truncate(time.Hour)

	key := fmt.Sprintf("%s:%d:%t:%.2f:%t:%s:%d",
		bundleJSON,
		cfg.SkinType,
		cfg.MigraineSensitive,
		cfg.MinDuration,
		cfg.Simple,
		cfg.Locale,
		hour.Unix(),
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
