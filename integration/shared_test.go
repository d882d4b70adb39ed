//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedBreezePath holds the path to a shared breeze binary built once for all tests.
	sharedBreezePath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// sampleBundle is a minimal but valid weather bundle for CLI runs.
const sampleBundle = `{
	"current": {
		"time": "2026-07-14T11:00:00Z",
		"temperature": 21.5,
		"humidity": 48,
		"wind_speed": 6,
		"uv_index": 4,
		"pressure": 1013
	},
	"hourly": [
		{"time": "2026-07-14T12:00:00Z", "temperature": 22},
		{"time": "2026-07-14T13:00:00Z", "temperature": 23},
		{"time": "2026-07-14T14:00:00Z", "temperature": 24},
		{"time": "2026-07-14T15:00:00Z", "temperature": 23, "precip_chance": 20}
	],
	"daily": {
		"date": "2026-07-14T00:00:00Z",
		"uv_index_max": 6
	},
	"air_quality": 35
}`

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getBreezeBinary returns the path to the breeze binary, building it once if needed.
func getBreezeBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "breeze-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		breezePath := filepath.Join(tempDir, "breeze")
		buildCmd := exec.Command("go", "build", "-o", breezePath, "./cmd/breeze")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build breeze: %v", err))
		}

		sharedBreezePath = breezePath
	})

	return sharedBreezePath
}

// writeSampleBundle writes the shared weather bundle to a temp file and
// returns its absolute path.
func writeSampleBundle(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.json")
	if err := os.WriteFile(path, []byte(sampleBundle), 0o644); err != nil {
		t.Fatalf("failed to write bundle: %v", err)
	}
	return path
}

func runBreezeCommand(t *testing.T, args ...string) error {
	breezePath := getBreezeBinary()
	cmd := exec.Command(breezePath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
