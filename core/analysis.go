package core

import (
	"github.com/nhollman/breeze/schema"
)

// Analysis series bounds.
const (
	timelineHours    = 24 // hourly samples scored for the chart timeline
	pressureReadings = 6  // forecast pressure readings for the headache trend
)

// Analyze runs the full orchestration pipeline for one bundle: normalize,
// composite score, best time window, bio-signals, recommendations, and the
// hourly timeline. The pipeline is pure aside from reading the engine clock
// for night detection.
func (e *Engine) Analyze(b schema.WeatherBundle) schema.AnalysisResult {
	// --- 1. Normalize current conditions with daily fallbacks ---
	cond := Normalize(b)

	// --- 2. Night detection from the engine clock ---
	now := e.clock.Now()
	isNight := IsNight(now.Hour())

	// --- 3. Composite score for current conditions ---
	comfort := Composite(cond)

	// --- 4+7. Hourly timeline, then the best window over it ---
	timeline := e.Timeline(b.Hourly)
	window := FindBestWindow(timeline, e.opts.MinWindowHours)

	// --- 5. Bio-signals ---
	headache := e.HeadacheRisk(pressureTrend(cond, b.Hourly))
	uv := e.UVExposureTimers(cond.UVIndex)

	// --- 6. Recommendations ---
	ctx := CheckContext{
		IsNight:          isNight,
		DayMaxUV:         dayMaxUV(b),
		HasCriticalAlert: schema.HasCritical(b.Alerts),
	}
	checks := e.QuickChecks(cond, ctx)
	if e.opts.Simple {
		checks = e.SimpleChecks(cond, ctx)
	}
	alerts := e.SafetyAlerts(cond, headache)

	return schema.AnalysisResult{
		GeneratedAt: now,
		Conditions:  cond,
		IsNight:     isNight,
		Comfort:     comfort,
		BestWindow:  window,
		Headache:    headache,
		UVExposure:  uv,
		QuickChecks: checks,
		Alerts:      alerts,
		Timeline:    timeline,
	}
}

// Timeline scores up to the next 24 hourly samples independently.
func (e *Engine) Timeline(hourly []schema.WeatherSample) []schema.TimelinePoint {
	n := len(hourly)
	if n > timelineHours {
		n = timelineHours
	}
	points := make([]schema.TimelinePoint, 0, n)
	for i := 0; i < n; i++ {
		cond := NormalizeSample(hourly[i])
		score := Composite(cond)
		points = append(points, schema.TimelinePoint{
			Index: i,
			Time:  hourly[i].Time,
			Score: score.Score,
			Label: score.Label,
		})
	}
	return points
}

// pressureTrend collects the current pressure plus the first forecast
// readings into the series the headache engine consumes.
func pressureTrend(cond schema.Conditions, hourly []schema.WeatherSample) []schema.PressureReading {
	readings := []schema.PressureReading{{Time: cond.Time, Pressure: cond.Pressure}}
	for i := 0; i < len(hourly) && len(readings) < pressureReadings; i++ {
		if hourly[i].Pressure == nil {
			continue
		}
		readings = append(readings, schema.PressureReading{
			Time:     hourly[i].Time,
			Pressure: *hourly[i].Pressure,
		})
	}
	return readings
}

// dayMaxUV resolves the day's maximum UV index, falling back to the current
// reading when the daily summary has none.
func dayMaxUV(b schema.WeatherBundle) float64 {
	if b.Daily.UVIndexMax != nil {
		return *b.Daily.UVIndexMax
	}
	if b.Current.UVIndex != nil {
		return *b.Current.UVIndex
	}
	return 0
}
