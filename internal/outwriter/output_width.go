package outwriter

import (
	"os"

	"github.com/nhollman/breeze/internal/contract"
	"golang.org/x/term"
)

// getMaxDetailWidth calculates the maximum width for the free-text detail
// column based on terminal width and the fixed columns around it.
func getMaxDetailWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the priority, category, and title columns with
	// borders and padding
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 20 {
		// Minimum reasonable detail width
		return 20
	}
	if available > 90 {
		// Cap the detail width to keep lines scannable
		return 90
	}
	return available
}

// truncateText shortens a string to max runes, appending an ellipsis marker.
func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
