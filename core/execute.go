package core

import (
	"context"
	"time"

	"github.com/nhollman/breeze/internal/contract"
	"github.com/nhollman/breeze/internal/ingest"
	"github.com/nhollman/breeze/internal/outwriter"
	"github.com/nhollman/breeze/schema"
)

// ExecutorFunc defines the function signature for the command drivers.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// engineFromConfig builds an analysis engine from resolved configuration.
func engineFromConfig(cfg *contract.Config) *Engine {
	return NewEngine(Options{
		SkinType:          cfg.SkinType,
		MigraineSensitive: cfg.MigraineSensitive,
		MinWindowHours:    cfg.MinDuration,
		Simple:            cfg.Simple,
		Locale:            cfg.Locale,
	}, nil)
}

// GetAnalysisResult loads the bundle and produces a full analysis result,
// going through the result cache when one is configured. It is the shared
// entry point for the command drivers and the MCP tools.
func GetAnalysisResult(cfg *contract.Config, mgr contract.CacheManager) (*schema.AnalysisResult, error) {
	bundle, err := ingest.ReadBundle(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	engine := engineFromConfig(cfg)
	result := cachedAnalyze(engine, cfg, mgr, bundle)
	return result, nil
}

// ExecuteAnalyze runs the full analysis and prints the complete report.
// It serves as the main entry point for the 'analyze' command and records
// each completed run in the history store.
func ExecuteAnalyze(_ context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	result, err := GetAnalysisResult(cfg, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	recordRun(cfg, mgr, result, duration)
	return outwriter.PrintAnalysis(result, cfg, duration)
}

// ExecuteScore runs the analysis and prints only the composite score with
// its factor breakdown.
func ExecuteScore(_ context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, err := GetAnalysisResult(cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintScore(result, cfg)
}

// ExecuteWindow runs the analysis and prints the best outdoor time window.
func ExecuteWindow(_ context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, err := GetAnalysisResult(cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintWindow(result, cfg)
}

// ExecuteRisk runs the analysis and prints the bio-signal section: headache
// risk and UV exposure timers.
func ExecuteRisk(_ context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, err := GetAnalysisResult(cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintRisk(result, cfg)
}

// ExecuteChecks runs the analysis and prints the ranked recommendations and
// safety alerts.
func ExecuteChecks(_ context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, err := GetAnalysisResult(cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintChecks(result, cfg)
}

// ExecuteMetrics prints the scoring model reference: factor weights, label
// bands, and recommendation priority ladders.
func ExecuteMetrics(_ context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	return outwriter.PrintMetrics(cfg)
}

// ExecuteHistory lists the most recent recorded runs.
func ExecuteHistory(_ context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	history := mgr.GetHistoryStore()
	if history == nil {
		return outwriter.PrintHistory(nil, cfg)
	}
	runs, err := history.ListRuns(cfg.HistoryLimit)
	if err != nil {
		return err
	}
	return outwriter.PrintHistory(runs, cfg)
}

// recordRun persists one run summary. Recording failures never fail the
// analysis itself.
func recordRun(cfg *contract.Config, mgr contract.CacheManager, result *schema.AnalysisResult, duration time.Duration) {
	if mgr == nil {
		return
	}
	history := mgr.GetHistoryStore()
	if history == nil {
		return
	}
	run := schema.AnalysisRun{
		RunAt:      result.GeneratedAt,
		InputPath:  cfg.InputPath,
		Locale:     cfg.Locale,
		Score:      result.Comfort.Score,
		Label:      string(result.Comfort.Label),
		Capped:     result.Comfort.Capped,
		HasWindow:  result.BestWindow != nil,
		Headache:   string(result.Headache.Level),
		CheckCount: len(result.QuickChecks),
		AlertCount: len(result.Alerts),
		DurationMS: duration.Milliseconds(),
	}
	if _, err := history.RecordRun(run); err != nil {
		contract.LogWarn("failed to record analysis run", err)
	}
}
