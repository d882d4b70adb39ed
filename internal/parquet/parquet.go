// Package parquet exports recorded analysis runs to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/nhollman/breeze/schema"
	"github.com/parquet-go/parquet-go"
)

// RunRecord is the Parquet row shape for one recorded analysis run.
// This struct maps to the breeze_analysis_runs database table.
type RunRecord struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// RunAt is when the analysis ran (stored as TIMESTAMP with nanosecond precision)
	RunAt time.Time `parquet:"run_at,snappy"`

	// InputPath is the weather bundle the run was computed from
	InputPath string `parquet:"input_path,snappy"`

	// Locale is the display language the run used
	Locale string `parquet:"locale,snappy"`

	// Score is the composite comfort score
	Score int32 `parquet:"score,snappy"`

	// Label is the qualitative band for the score
	Label string `parquet:"label,snappy"`

	// Capped reports whether the hard cap was applied
	Capped bool `parquet:"capped,snappy"`

	// HasWindow reports whether a best time window was found
	HasWindow bool `parquet:"has_window,snappy"`

	// Headache is the pressure-derived risk level
	Headache string `parquet:"headache,snappy"`

	// CheckCount is the number of recommendation items produced
	CheckCount int32 `parquet:"check_count,snappy"`

	// AlertCount is the number of safety alerts produced
	AlertCount int32 `parquet:"alert_count,snappy"`

	// DurationMs is the analysis duration in milliseconds
	DurationMs int64 `parquet:"duration_ms,snappy"`
}

// ConvertRunRecords maps stored runs to their Parquet row shape.
func ConvertRunRecords(runs []schema.AnalysisRun) []RunRecord {
	records := make([]RunRecord, 0, len(runs))
	for _, run := range runs {
		records = append(records, RunRecord{
			RunID:      run.ID,
			RunAt:      run.RunAt,
			InputPath:  run.InputPath,
			Locale:     run.Locale,
			Score:      int32(run.Score),
			Label:      run.Label,
			Capped:     run.Capped,
			HasWindow:  run.HasWindow,
			Headache:   run.Headache,
			CheckCount: int32(run.CheckCount),
			AlertCount: int32(run.AlertCount),
			DurationMs: run.DurationMS,
		})
	}
	return records
}

// WriteRunsParquet writes a slice of RunRecord structs to a Parquet file.
func WriteRunsParquet(data []RunRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the RunRecord struct tags
	writer := parquet.NewGenericWriter[RunRecord](file)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	return nil
}
