package cmd

import (
	"github.com/nhollman/breeze/core"
	"github.com/nhollman/breeze/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd runs the full analysis pipeline.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [bundle.json]",
	Short: "Run the full comfort analysis on a weather bundle.",
	Long: `Run the complete analysis pipeline on a weather bundle and print the report.

The report contains:
- The weighted comfort score with its per-factor breakdown
- The best contiguous outdoor time window in the next 24 hours
- Headache risk derived from the barometric pressure trend
- UV exposure timers for your skin type
- Prioritized recommendations and safety alerts

The bundle is a JSON file with current conditions, an hourly forecast, and an
optional daily summary. Pass '-' (or no argument) to read from stdin.

Examples:
  # Analyze a bundle with defaults
  breeze analyze today.json

  # Pipe a bundle from a provider fetch
  curl -s "$PROVIDER_URL" | breeze analyze

  # German advisories, fair skin, migraine-sensitive
  breeze analyze today.json --locale de --skin-type 2 --migraine

  # Full report with the hourly timeline as JSON
  breeze analyze today.json --detail --output json --output-file report.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}
