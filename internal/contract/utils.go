package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/nhollman/breeze/schema"
)

// Color variables for console output, keyed by the abstract color tokens the
// engine emits.
var tokenColors = map[schema.ColorToken]*color.Color{
	schema.ColorGreen:  color.New(color.FgGreen, color.Bold),
	schema.ColorTeal:   color.New(color.FgCyan),
	schema.ColorYellow: color.New(color.FgYellow),
	schema.ColorOrange: color.New(color.FgMagenta, color.Bold),
	schema.ColorRed:    color.New(color.FgRed, color.Bold),
	schema.ColorGray:   color.New(color.FgWhite),
}

// Colorize renders text in the console color matching a token. Unknown
// tokens pass through unchanged.
func Colorize(token schema.ColorToken, text string) string {
	c, ok := tokenColors[token]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}

// appDirName is the per-user directory for breeze state.
const appDirName = ".breeze"

// GetCacheDBFilePath returns the path to the SQLite DB file for the result
// cache, creating the parent directory if needed.
func GetCacheDBFilePath() string {
	return stateFilePath("cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for the
// analysis history.
func GetHistoryDBFilePath() string {
	return stateFilePath("history.db")
}

func stateFilePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, appDirName)
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, name)
}
