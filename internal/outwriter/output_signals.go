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

// hourFormat renders window member times for tables and summaries.
const hourFormat = "15:04"

// PrintWindow outputs the best time window, dispatching based on the output
// format configured.
func PrintWindow(result *schema.AnalysisResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result.BestWindow)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWindowCSV(w, result.BestWindow)
		}, "Wrote CSV")

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWindowTable(result.BestWindow, cfg, w)
		}, "Wrote table")
	}
}

func writeWindowCSV(w io.Writer, window *schema.TimeWindow) error {
	header := []string{"slot", "time", "score"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		if window == nil {
			return nil
		}
		for _, h := range window.Hours {
			row := []string{
				strconv.Itoa(h.Index),
				h.Time.Format(hourFormat),
				strconv.Itoa(h.Score),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeWindowTable(window *schema.TimeWindow, cfg *contract.Config, writer io.Writer) error {
	tr := i18n.New(cfg.Locale)

	if window == nil || len(window.Hours) == 0 {
		_, err := fmt.Fprintln(writer, tr.T("window.none"))
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Slot", "Time", "Score"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, h := range window.Hours {
		data = append(data, []string{
			strconv.Itoa(h.Index),
			h.Time.Format(hourFormat),
			strconv.Itoa(h.Score),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	first := window.Hours[0].Time.Format(hourFormat)
	last := window.Hours[len(window.Hours)-1].Time.Format(hourFormat)
	_, err := fmt.Fprintln(writer, tr.T("window.best", first, last, window.AverageScore))
	return err
}

// riskReport is the JSON shape for the bio-signal section.
type riskReport struct {
	Headache   schema.RiskSignal `json:"headache"`
	UVExposure schema.UVExposure `json:"uv_exposure"`
}

// PrintRisk outputs headache risk and UV exposure timers, dispatching based
// on the output format configured.
func PrintRisk(result *schema.AnalysisResult, cfg *contract.Config) error {
	report := riskReport{Headache: result.Headache, UVExposure: result.UVExposure}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRiskCSV(w, report)
		}, "Wrote CSV")

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRiskText(report, cfg, w)
		}, "Wrote report")
	}
}

func writeRiskCSV(w io.Writer, report riskReport) error {
	header := []string{"signal", "value", "detail"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		rows := [][]string{
			{"headache_risk", string(report.Headache.Level), fmt.Sprintf("%+.1f hPa", report.Headache.Magnitude)},
			{"sunburn_minutes", strconv.Itoa(report.UVExposure.SunburnMinutes), ""},
			{"safe_minutes", strconv.Itoa(report.UVExposure.SafeMinutes), ""},
		}
		vitD := ""
		if report.UVExposure.VitaminDMinutes != nil {
			vitD = strconv.Itoa(*report.UVExposure.VitaminDMinutes)
		}
		rows = append(rows, []string{"vitamin_d_minutes", vitD, ""})
		for _, row := range rows {
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeRiskText(report riskReport, cfg *contract.Config, writer io.Writer) error {
	tr := i18n.New(cfg.Locale)

	level := string(report.Headache.Level)
	if cfg.UseColors {
		level = contract.Colorize(report.Headache.Color, level)
	}
	if _, err := fmt.Fprintf(writer, "Headache risk: %s\n", level); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "  %s\n", report.Headache.Advisory); err != nil {
		return err
	}

	uv := report.UVExposure
	if uv.SunburnMinutes > 0 {
		if _, err := fmt.Fprintf(writer, "UV index %.1f (skin type %d)\n", uv.UVIndex, uv.SkinType); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(writer, "  %s\n", tr.T("uv.sunburn", uv.SunburnMinutes)); err != nil {
			return err
		}
		if uv.VitaminDMinutes != nil {
			if _, err := fmt.Fprintf(writer, "  %s\n", tr.T("uv.vitamind", *uv.VitaminDMinutes)); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(writer, "  %s\n", tr.T("uv.vitamind.na")); err != nil {
				return err
			}
		}
	}
	return nil
}
