package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/nhollman/breeze/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *schema.AnalysisResult {
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	vitD := 25
	return &schema.AnalysisResult{
		GeneratedAt: base,
		IsNight:     false,
		Comfort:     goodComposite(),
		BestWindow: &schema.TimeWindow{
			StartIndex:   14,
			EndIndex:     16,
			AverageScore: 78,
			Hours: []schema.WindowHour{
				{Index: 14, Time: base.Add(2 * time.Hour), Score: 76},
				{Index: 15, Time: base.Add(3 * time.Hour), Score: 79},
				{Index: 16, Time: base.Add(4 * time.Hour), Score: 79},
			},
		},
		Headache: schema.RiskSignal{Level: schema.RiskLow, Advisory: "Pressure is stable."},
		UVExposure: schema.UVExposure{
			UVIndex:         5,
			SkinType:        3,
			SunburnMinutes:  40,
			VitaminDMinutes: &vitD,
			SafeMinutes:     25,
		},
		QuickChecks: []schema.RecommendationItem{
			{ID: "sun-moderate", Category: schema.CategorySun, Priority: 50, Title: "Some sun protection", Detail: "Hat and sunscreen for longer stays."},
		},
		Timeline: []schema.TimelinePoint{
			{Index: 12, Time: base, Score: 72, Label: schema.LabelGood},
			{Index: 13, Time: base.Add(time.Hour), Score: 75, Label: schema.LabelGood},
		},
	}
}

// TestWriteTimelineCSV verifies the hourly series row layout.
func TestWriteTimelineCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeTimelineCSV(&buf, sampleResult().Timeline)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"hour", "time", "score", "label"}, records[0])
	assert.Equal(t, []string{"12", "12:00", "72", "good"}, records[1])
	assert.Equal(t, []string{"13", "13:00", "75", "good"}, records[2])
}

// TestWriteAnalysisReport verifies the full report contains every section in
// order without the timeline by default.
func TestWriteAnalysisReport(t *testing.T) {
	var buf bytes.Buffer
	cfg := plainConfig()
	err := writeAnalysisReport(sampleResult(), cfg, 42*time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Breeze report · 2026-06-01 12:00 · day")
	assert.Contains(t, out, "Comfort score: 72 (Good)")
	assert.Contains(t, out, "Best time outside: 14:00 – 16:00 (avg 78)")
	assert.Contains(t, out, "Headache risk: low")
	assert.Contains(t, out, "Some sun protection")
	assert.Contains(t, out, "Analysis completed in 42ms")
	assert.NotContains(t, out, "13:00")
}

// TestWriteAnalysisReportDetail verifies the hourly timeline renders in
// detail mode.
func TestWriteAnalysisReportDetail(t *testing.T) {
	var buf bytes.Buffer
	cfg := plainConfig()
	cfg.Detail = true
	err := writeAnalysisReport(sampleResult(), cfg, time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "12:00")
	assert.Contains(t, out, "13:00")
}

// TestWriteAnalysisReportNight verifies the night marker and missing window
// message.
func TestWriteAnalysisReportNight(t *testing.T) {
	result := sampleResult()
	result.IsNight = true
	result.BestWindow = nil

	var buf bytes.Buffer
	err := writeAnalysisReport(result, plainConfig(), time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "· night")
	assert.Contains(t, out, "No comfortable window in the next 24 hours")
}
