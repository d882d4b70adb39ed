package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nhollman/breeze/internal/contract"
	"github.com/nhollman/breeze/schema"
)

// metricsModel is the render model for the scoring reference.
type metricsModel struct {
	Weights    []weightEntry `json:"weights"`
	LabelBands []labelBand   `json:"label_bands"`
}

type weightEntry struct {
	Factor schema.FactorKey `json:"factor"`
	Weight float64          `json:"weight"`
}

type labelBand struct {
	Label    schema.ComfortLabel `json:"label"`
	MinScore int                 `json:"min_score"`
}

// buildMetricsModel collects the fixed scoring tables in display order.
func buildMetricsModel() *metricsModel {
	model := &metricsModel{}
	for _, key := range schema.AllFactors {
		model.Weights = append(model.Weights, weightEntry{Factor: key, Weight: schema.FactorWeights[key]})
	}
	model.LabelBands = []labelBand{
		{schema.LabelExcellent, 80},
		{schema.LabelGood, 60},
		{schema.LabelModerate, 40},
		{schema.LabelPoor, 20},
		{schema.LabelCritical, 0},
	}
	return model
}

// PrintMetrics displays the formal definitions of the scoring model.
// This is a static display that does not require weather input.
func PrintMetrics(cfg *contract.Config) error {
	model := buildMetricsModel()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsCSV(w, model)
		}, "Wrote CSV")

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsText(w, model)
		}, "Wrote text")
	}
}

func writeMetricsCSV(w io.Writer, model *metricsModel) error {
	header := []string{"kind", "name", "value"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, entry := range model.Weights {
			row := []string{"weight", string(entry.Factor), fmt.Sprintf("%.2f", entry.Weight)}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		for _, band := range model.LabelBands {
			row := []string{"label_band", string(band.Label), strconv.Itoa(band.MinScore)}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeMetricsText(w io.Writer, model *metricsModel) error {
	if _, err := fmt.Fprintf(w, "🌤️  Comfort Scoring Model\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "=========================\n\n"); err != nil {
		return err
	}

	var parts []string
	for _, entry := range model.Weights {
		parts = append(parts, fmt.Sprintf("%.2f*%s", entry.Weight, entry.Factor))
	}
	if _, err := fmt.Fprintf(w, "score = %s\n\n", strings.Join(parts, " + ")); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Hard cap: score <= 30 when precipitation > 40%% or wind > 40 km/h\n\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Label bands:\n"); err != nil {
		return err
	}
	for _, band := range model.LabelBands {
		if _, err := fmt.Fprintf(w, "  %-10s >= %d\n", band.Label, band.MinScore); err != nil {
			return err
		}
	}
	return nil
}
