package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nhollman/breeze/internal/contract"
	"github.com/nhollman/breeze/internal/i18n"
	"github.com/nhollman/breeze/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintScore outputs the composite score breakdown, dispatching based on the
// output format configured.
func PrintScore(result *schema.AnalysisResult, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result.Comfort)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreCSV(w, result.Comfort, fmtFloat)
		}, "Wrote CSV")

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreTable(result.Comfort, cfg, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeScoreCSV writes the per-factor breakdown plus the composite row.
func writeScoreCSV(w io.Writer, comfort schema.CompositeScore, fmtFloat func(float64) string) error {
	header := []string{"factor", "raw_value", "score", "weight", "weighted", "critical"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, key := range schema.AllFactors {
			f, ok := comfort.Factors[key]
			if !ok {
				continue
			}
			row := []string{
				string(f.Factor),
				fmtFloat(f.RawValue),
				fmtFloat(f.Score),
				fmtFloat(f.Weight),
				fmtFloat(f.Score * f.Weight),
				strconv.FormatBool(f.Critical),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		composite := []string{
			"composite", "", strconv.Itoa(comfort.Score), "", "", strconv.FormatBool(comfort.Capped),
		}
		return csvWriter.Write(composite)
	})
}

// writeScoreTable generates and writes the human-readable factor table.
func writeScoreTable(comfort schema.CompositeScore, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Factor", "Raw", "Score", "Weight", "Critical"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, key := range schema.AllFactors {
		f, ok := comfort.Factors[key]
		if !ok {
			continue
		}
		critical := ""
		if f.Critical {
			critical = "yes"
		}
		data = append(data, []string{
			string(f.Factor),
			fmtFloat(f.RawValue),
			fmtFloat(f.Score),
			fmtFloat(f.Weight),
			critical,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	tr := i18n.New(cfg.Locale)
	labelText := tr.T("label." + string(comfort.Label))
	if cfg.UseColors {
		labelText = contract.Colorize(comfort.Color, labelText)
	}
	if _, err := fmt.Fprintf(writer, "Comfort score: %d (%s)\n", comfort.Score, labelText); err != nil {
		return err
	}
	if comfort.Capped {
		if _, err := fmt.Fprintf(writer, "Hard cap applied: critical %s\n", comfort.CappedBy); err != nil {
			return err
		}
	}
	return nil
}
