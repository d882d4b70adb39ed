package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nhollman/breeze/internal/contract"
	"github.com/nhollman/breeze/internal/i18n"
	"github.com/nhollman/breeze/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintAnalysis outputs the full analysis report, dispatching based on the
// output format configured.
func PrintAnalysis(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")

	case schema.CSVOut:
		// The flat CSV shape of a full report is its factor breakdown plus
		// the timeline series.
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			fmtFloat := createFloatFormatter(cfg.Precision)
			if err := writeScoreCSV(w, result.Comfort, fmtFloat); err != nil {
				return err
			}
			return writeTimelineCSV(w, result.Timeline)
		}, "Wrote CSV")

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisReport(result, cfg, duration, w)
		}, "Wrote report")
	}
}

func writeTimelineCSV(w io.Writer, timeline []schema.TimelinePoint) error {
	header := []string{"hour", "time", "score", "label"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, p := range timeline {
			row := []string{
				strconv.Itoa(p.Index),
				p.Time.Format(hourFormat),
				strconv.Itoa(p.Score),
				string(p.Label),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeAnalysisReport renders the complete human-readable report: header,
// score breakdown, best window, bio-signals, checks, and optionally the
// hourly timeline.
func writeAnalysisReport(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	fmtFloat := createFloatFormatter(cfg.Precision)
	tr := i18n.New(cfg.Locale)

	// --- 1. Header ---
	daypart := "day"
	if result.IsNight {
		daypart = "night"
	}
	if _, err := fmt.Fprintf(writer, "Breeze report · %s · %s\n\n",
		result.GeneratedAt.Format("2006-01-02 15:04"), daypart); err != nil {
		return err
	}

	// --- 2. Composite score with factor breakdown ---
	if err := writeScoreTable(result.Comfort, cfg, fmtFloat, writer); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(writer); err != nil {
		return err
	}

	// --- 3. Best time window ---
	if err := writeWindowSummary(result.BestWindow, tr, writer); err != nil {
		return err
	}

	// --- 4. Bio-signals ---
	report := riskReport{Headache: result.Headache, UVExposure: result.UVExposure}
	if err := writeRiskText(report, cfg, writer); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(writer); err != nil {
		return err
	}

	// --- 5. Recommendations and alerts ---
	checks := checksReport{QuickChecks: result.QuickChecks, Alerts: result.Alerts}
	if err := writeChecksTable(checks, cfg, writer); err != nil {
		return err
	}

	// --- 6. Hourly timeline, detail mode only ---
	if cfg.Detail && len(result.Timeline) > 0 {
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
		if err := writeTimelineTable(result.Timeline, cfg, writer); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(writer, "\nAnalysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend)
	return err
}

// writeWindowSummary prints the one-line window result inside the report.
func writeWindowSummary(window *schema.TimeWindow, tr *i18n.Translator, writer io.Writer) error {
	if window == nil || len(window.Hours) == 0 {
		_, err := fmt.Fprintf(writer, "%s\n\n", tr.T("window.none"))
		return err
	}
	first := window.Hours[0].Time.Format(hourFormat)
	last := window.Hours[len(window.Hours)-1].Time.Format(hourFormat)
	_, err := fmt.Fprintf(writer, "%s\n\n", tr.T("window.best", first, last, window.AverageScore))
	return err
}

// writeTimelineTable renders the scored hourly series.
func writeTimelineTable(timeline []schema.TimelinePoint, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Hour", "Time", "Score", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	tr := i18n.New(cfg.Locale)
	var data [][]string
	for _, p := range timeline {
		label := tr.T("label." + string(p.Label))
		if cfg.UseColors {
			label = contract.Colorize(schema.ColorForLabel(p.Label), label)
		}
		data = append(data, []string{
			strconv.Itoa(p.Index),
			p.Time.Format(hourFormat),
			strconv.Itoa(p.Score),
			label,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
