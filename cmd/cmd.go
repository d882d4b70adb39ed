// Package cmd defines the command-line interface for breeze.
package cmd

import (
	"github.com/nhollman/breeze/internal/contract"
	"github.com/nhollman/breeze/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(riskCmd)
	rootCmd.AddCommand(checksCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(historyCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("locale", contract.DefaultLocale, "Display language for advisories: en or de")
	rootCmd.PersistentFlags().Int("skin-type", contract.DefaultSkinType, "Skin type 1-6 for UV exposure timers")
	rootCmd.PersistentFlags().Bool("migraine", false, "Lower the pressure alert threshold for migraine-sensitive users")
	rootCmd.PersistentFlags().String("min-duration", "", "Minimum best-window duration in hours (1.5) or as a duration (90m)")
	rootCmd.PersistentFlags().Bool("detail", false, "Print the full hourly timeline in reports")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("history-backend", "", "Run history backend: sqlite or mysql or postgresql or none (defaults to cache backend)")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for run history")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scoreCmd to Viper
	scoreCmd.Flags().Bool("explain", false, "Print the per-factor score breakdown")
	if err := viper.BindPFlags(scoreCmd.Flags()); err != nil {
		contract.LogFatal("Error binding score flags", err)
	}

	// Bind all flags of checksCmd to Viper
	checksCmd.Flags().Bool("simple", false, "Use the compressed rain/UV ladders without safety overrides")
	if err := viper.BindPFlags(checksCmd.Flags()); err != nil {
		contract.LogFatal("Error binding checks flags", err)
	}

	// Bind all flags of historyCmd to Viper
	historyCmd.PersistentFlags().IntP("limit", "l", contract.DefaultHistoryLimit, "Number of runs to display or export")
	if err := viper.BindPFlags(historyCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding history flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
