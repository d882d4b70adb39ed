package cmd

import (
	"github.com/nhollman/breeze/core"
	"github.com/nhollman/breeze/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd displays the scoring model reference.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show the scoring model: weights, cap rule, and label bands.",
	Long: `Display the formal definition of the comfort scoring model.

Shows the per-factor weights, the hard-cap rule for critical precipitation
and wind, and the score bands behind each qualitative label. This is a static
display that needs no weather input.

Examples:
  # Human-readable model reference
  breeze metrics

  # Export the tables for documentation
  breeze metrics --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot print metrics", err)
		}
	},
}
