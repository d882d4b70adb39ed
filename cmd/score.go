package cmd

import (
	"github.com/nhollman/breeze/core"
	"github.com/nhollman/breeze/internal/contract"
	"github.com/spf13/cobra"
)

// scoreCmd computes only the composite comfort score.
var scoreCmd = &cobra.Command{
	Use:   "score [bundle.json]",
	Short: "Compute the weighted comfort score with its factor breakdown.",
	Long: `Score the current conditions in a weather bundle.

Eight physical factors are scored on a 0-100 scale, weighted, and summed into
one comfort number. Critical precipitation or wind hard-caps the result.

Examples:
  # Score the current conditions
  breeze score today.json

  # Machine-readable breakdown
  breeze score today.json --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot compute score", err)
		}
	},
}

// windowCmd finds the best outdoor time window.
var windowCmd = &cobra.Command{
	Use:   "window [bundle.json]",
	Short: "Find the best outdoor time window in the next 24 hours.",
	Long: `Search the hourly forecast for the most comfortable contiguous window.

Every hour is scored independently, then a fixed-size sliding window picks the
run of hours with the highest average score. Hours below the comfort floor
disqualify a window entirely.

Examples:
  # Best window with the default minimum duration
  breeze window today.json

  # Require at least three hours
  breeze window today.json --min-duration 3`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWindow(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot find window", err)
		}
	},
}

// riskCmd derives the bio-meteorological signals.
var riskCmd = &cobra.Command{
	Use:   "risk [bundle.json]",
	Short: "Derive headache risk and UV exposure timers.",
	Long: `Derive bio-meteorological signals from a weather bundle.

Headache risk follows the barometric pressure change over the last three
hours. UV timers estimate unprotected burn time, the vitamin D dose time, and
a safe exposure time for your skin type.

Examples:
  # Default skin type
  breeze risk today.json

  # Fair skin, migraine-sensitive thresholds
  breeze risk today.json --skin-type 1 --migraine`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRisk(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot derive risk signals", err)
		}
	},
}

// checksCmd produces the ranked recommendations.
var checksCmd = &cobra.Command{
	Use:   "checks [bundle.json]",
	Short: "Produce prioritized recommendations and safety alerts.",
	Long: `Produce the ranked list of actionable recommendations for a bundle.

Items cover rain, sun protection, sleep quality, clothing, wind, and air
quality, ordered by priority. Dangerous conditions add safety alerts that
outrank everything else.

Examples:
  # Full recommendation ladder
  breeze checks today.json

  # Compressed rain/UV ladders only
  breeze checks today.json --simple`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChecks(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot produce checks", err)
		}
	},
}
