// Package outwriter renders analysis results as tables, CSV, or JSON.
package outwriter

import (
	"time"

	"github.com/nhollman/breeze/internal/contract"
	"github.com/nhollman/breeze/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAnalysis prints the full analysis report using the configured output format.
func (ow *OutWriter) WriteAnalysis(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	return PrintAnalysis(result, cfg, duration)
}

// WriteScore prints the composite score breakdown using the configured output format.
func (ow *OutWriter) WriteScore(result *schema.AnalysisResult, cfg *contract.Config) error {
	return PrintScore(result, cfg)
}

// WriteWindow prints the best time window using the configured output format.
func (ow *OutWriter) WriteWindow(result *schema.AnalysisResult, cfg *contract.Config) error {
	return PrintWindow(result, cfg)
}

// WriteRisk prints the bio-signal section using the configured output format.
func (ow *OutWriter) WriteRisk(result *schema.AnalysisResult, cfg *contract.Config) error {
	return PrintRisk(result, cfg)
}

// WriteChecks prints recommendations and alerts using the configured output format.
func (ow *OutWriter) WriteChecks(result *schema.AnalysisResult, cfg *contract.Config) error {
	return PrintChecks(result, cfg)
}

// WriteMetrics prints the scoring model reference using the configured output format.
func (ow *OutWriter) WriteMetrics(cfg *contract.Config) error {
	return PrintMetrics(cfg)
}

// WriteHistory prints recorded runs using the configured output format.
func (ow *OutWriter) WriteHistory(runs []schema.AnalysisRun, cfg *contract.Config) error {
	return PrintHistory(runs, cfg)
}
