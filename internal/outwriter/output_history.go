package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nhollman/breeze/internal/contract"
	"github.com/nhollman/breeze/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// runTimeFormat renders run timestamps in history tables.
const runTimeFormat = "2006-01-02 15:04:05"

// PrintHistory outputs recorded runs, dispatching based on the output format
// configured.
func PrintHistory(runs []schema.AnalysisRun, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, runs)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryCSV(w, runs)
		}, "Wrote CSV")

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(runs, cfg, w)
		}, "Wrote table")
	}
}

func writeHistoryCSV(w io.Writer, runs []schema.AnalysisRun) error {
	header := []string{"id", "run_at", "input", "locale", "score", "label", "capped", "has_window", "headache", "checks", "alerts", "duration_ms"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, run := range runs {
			row := []string{
				strconv.FormatInt(run.ID, 10),
				run.RunAt.Format(runTimeFormat),
				run.InputPath,
				run.Locale,
				strconv.Itoa(run.Score),
				run.Label,
				strconv.FormatBool(run.Capped),
				strconv.FormatBool(run.HasWindow),
				run.Headache,
				strconv.Itoa(run.CheckCount),
				strconv.Itoa(run.AlertCount),
				strconv.FormatInt(run.DurationMS, 10),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeHistoryTable(runs []schema.AnalysisRun, cfg *contract.Config, writer io.Writer) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(writer, "No recorded runs")
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"ID", "Run At", "Input", "Score", "Label", "Headache", "Checks", "Alerts"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, run := range runs {
		label := run.Label
		if cfg.UseColors {
			label = contract.Colorize(schema.ColorForLabel(schema.ComfortLabel(run.Label)), label)
		}
		data = append(data, []string{
			strconv.FormatInt(run.ID, 10),
			run.RunAt.Format(runTimeFormat),
			truncateText(run.InputPath, 40),
			strconv.Itoa(run.Score),
			label,
			run.Headache,
			strconv.Itoa(run.CheckCount),
			strconv.Itoa(run.AlertCount),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Showing %d runs\n", len(runs))
	return err
}
