package iocache

import (
	"errors"
	"fmt"

	"github.com/nhollman/breeze/internal/parquet"
)

// ExecuteHistoryExport exports all recorded runs to a Parquet file.
func ExecuteHistoryExport(outputFile string, limit int) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetHistoryStore()
	if store == nil {
		return errors.New("no history store configured")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.RunCount == 0 {
		return errors.New("no recorded runs found to export")
	}

	if limit <= 0 || limit > status.RunCount {
		limit = status.RunCount
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total recorded runs: %d\n", status.RunCount)

	runs, err := store.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to retrieve recorded runs: %w", err)
	}

	records := parquet.ConvertRunRecords(runs)
	if err := parquet.WriteRunsParquet(records, outputFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(records), outputFile)

	return nil
}
