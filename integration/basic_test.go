//go:build basic

package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBreezeWithSQLite exercises the default SQLite-backed workflow end to end.
func TestBreezeWithSQLite(t *testing.T) {
	bundle := writeSampleBundle(t)

	// Run breeze cache clear
	err := runBreezeCommand(t, "cache", "clear")
	require.NoError(t, err)

	// Run breeze history clear
	err = runBreezeCommand(t, "history", "clear")
	require.NoError(t, err)

	// Run breeze analyze (populates cache and history)
	err = runBreezeCommand(t, "analyze", bundle)
	require.NoError(t, err)

	// Run breeze score with the factor breakdown
	err = runBreezeCommand(t, "score", bundle, "--explain")
	require.NoError(t, err)

	// Run breeze window and risk
	err = runBreezeCommand(t, "window", bundle)
	require.NoError(t, err)
	err = runBreezeCommand(t, "risk", bundle)
	require.NoError(t, err)

	// Run breeze metrics
	err = runBreezeCommand(t, "metrics")
	require.NoError(t, err)

	// Run breeze cache status
	err = runBreezeCommand(t, "cache", "status")
	require.NoError(t, err)

	// Run breeze history status
	err = runBreezeCommand(t, "history", "status")
	require.NoError(t, err)
}

// TestBreezeHistoryExport verifies a recorded run exports to Parquet.
func TestBreezeHistoryExport(t *testing.T) {
	bundle := writeSampleBundle(t)

	err := runBreezeCommand(t, "analyze", bundle)
	require.NoError(t, err)

	exportPath := filepath.Join(t.TempDir(), "runs.parquet")
	err = runBreezeCommand(t, "history", "export", "--output-file", exportPath, "--limit", "5")
	require.NoError(t, err)

	info, err := os.Stat(exportPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
