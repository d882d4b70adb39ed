package outwriter

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nhollman/breeze/internal/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteJSON verifies indented encoding of arbitrary values.
func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"score": 72})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"score\": 72\n}\n", buf.String())
}

// TestWriteCSVWithHeader verifies the header row precedes data rows and the
// writer is flushed.
func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "2"})
	})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"a", "b"}, records[0])
	assert.Equal(t, []string{"1", "2"}, records[1])
}

// TestCreateFloatFormatter verifies precision handling of the shared
// formatter closure.
func TestCreateFloatFormatter(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		want      string
	}{
		{"zero precision rounds", 0, 72.6, "73"},
		{"one decimal", 1, 72.65, "72.6"},
		{"two decimals", 2, 0.25, "0.25"},
		{"whole number keeps zeros", 1, 80, "80.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat := createFloatFormatter(tt.precision)
			assert.Equal(t, tt.want, fmtFloat(tt.value))
		})
	}
}

// TestTruncateText verifies rune-safe truncation with the ellipsis marker.
func TestTruncateText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short string unchanged", "dry hour", 20, "dry hour"},
		{"exactly max unchanged", "abcde", 5, "abcde"},
		{"long string gets ellipsis", "wear a light rain jacket", 10, "wear a ..."},
		{"tiny max skips ellipsis", "abcdef", 3, "abc"},
		{"multibyte runes counted once", "über über über", 8, "über ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateText(tt.in, tt.max))
		})
	}
}

// TestGetMaxDetailWidth verifies the clamped detail-column width for explicit
// width overrides. Terminal detection is skipped because cfg.Width wins.
func TestGetMaxDetailWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"narrow terminal clamps to minimum", 50, 20},
		{"just above minimum", 66, 21},
		{"typical terminal", 100, 55},
		{"wide terminal caps at maximum", 200, 90},
		{"exactly at cap", 135, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.want, getMaxDetailWidth(cfg))
		})
	}
}

// TestWriteWithFile verifies that an explicit output file is created and
// receives the writer's payload.
func TestWriteWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	err := writeWithFile(path, func(w io.Writer) error {
		_, werr := w.Write([]byte("payload\n"))
		return werr
	}, "Wrote text")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload\n", string(content))
}

// TestWriteWithFileBadPath verifies that an uncreatable output path surfaces
// the error instead of silently falling back to stdout.
func TestWriteWithFileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	err := writeWithFile(path, func(w io.Writer) error { return nil }, "Wrote text")
	assert.Error(t, err)
}
