package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/nhollman/breeze/internal/contract"
	"github.com/nhollman/breeze/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// checksReport is the JSON shape for the recommendations section.
type checksReport struct {
	QuickChecks []schema.RecommendationItem `json:"quick_checks"`
	Alerts      []schema.RecommendationItem `json:"alerts"`
}

// PrintChecks outputs the ranked recommendations and safety alerts,
// dispatching based on the output format configured.
func PrintChecks(result *schema.AnalysisResult, cfg *contract.Config) error {
	report := checksReport{QuickChecks: result.QuickChecks, Alerts: result.Alerts}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChecksCSV(w, report)
		}, "Wrote CSV")

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChecksTable(report, cfg, w)
		}, "Wrote table")
	}
}

func writeChecksCSV(w io.Writer, report checksReport) error {
	header := []string{"kind", "id", "category", "priority", "title", "detail"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		writeItems := func(kind string, items []schema.RecommendationItem) error {
			for _, item := range items {
				row := []string{
					kind,
					item.ID,
					string(item.Category),
					strconv.Itoa(item.Priority),
					item.Title,
					item.Detail,
				}
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
			return nil
		}
		if err := writeItems("check", report.QuickChecks); err != nil {
			return err
		}
		return writeItems("alert", report.Alerts)
	})
}

func writeChecksTable(report checksReport, cfg *contract.Config, writer io.Writer) error {
	if err := writeItemTable("Check", report.QuickChecks, cfg, writer); err != nil {
		return err
	}
	if len(report.Alerts) == 0 {
		return nil
	}
	return writeItemTable("Alert", report.Alerts, cfg, writer)
}

// writeItemTable renders one ranked item list as a table.
func writeItemTable(kind string, items []schema.RecommendationItem, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{kind, "Priority", "Title", "Detail"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxDetail := getMaxDetailWidth(cfg)
	var data [][]string
	for _, item := range items {
		title := item.Title
		if cfg.UseColors {
			title = contract.Colorize(item.Color, title)
		}
		data = append(data, []string{
			string(item.Category),
			strconv.Itoa(item.Priority),
			title,
			truncateText(item.Detail, maxDetail),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
