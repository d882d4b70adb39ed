package core

import (
	"math"
	"sort"
	"time"

	"github.com/nhollman/breeze/schema"
)

// Pressure-change breakpoints (hPa over the trailing 3h window).
const (
	pressureWindow     = 3 * time.Hour
	pressureModerate   = 3.0
	pressureElevated   = 5.0
	pressureHigh       = 8.0
	pressureCritical   = 5.0 // abs(change) at which isCritical fires
	pressureSensitized = 4.0 // lowered threshold for migraine-sensitive users
)

// pressureChange computes the net pressure change over the most recent
// 3-hour sub-window of the readings (or the full series if shorter),
// after sorting by time.
func pressureChange(readings []schema.PressureReading) float64 {
	if len(readings) < 2 {
		return 0
	}
	sorted := make([]schema.PressureReading, len(readings))
	copy(sorted, readings)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	last := sorted[len(sorted)-1]
	cutoff := last.Time.Add(-pressureWindow)
	first := sorted[0]
	for _, r := range sorted {
		if !r.Time.Before(cutoff) {
			first = r
			break
		}
	}
	return last.Pressure - first.Pressure
}

// HeadacheRisk derives the four-tier pressure-driven headache risk signal.
// The level follows the magnitude of change, never the instantaneous value.
func (e *Engine) HeadacheRisk(readings []schema.PressureReading) schema.RiskSignal {
	change := pressureChange(readings)
	mag := math.Abs(change)

	var level schema.RiskLevel
	var key string
	switch {
	case mag < pressureModerate:
		level, key = schema.RiskLow, "headache.low"
	case mag < pressureElevated:
		level, key = schema.RiskModerate, "headache.moderate"
	case mag < pressureHigh:
		level, key = schema.RiskElevated, "headache.elevated"
	default:
		level, key = schema.RiskHigh, "headache.high"
	}

	threshold := pressureCritical
	if e.opts.MigraineSensitive {
		threshold = pressureSensitized
	}

	return schema.RiskSignal{
		Level:     level,
		Magnitude: change,
		Advisory:  e.tr.T(key, change),
		Color:     schema.ColorForRisk(level),
		Critical:  mag >= threshold,
	}
}

// HeadacheRiskCoarse is the three-tier variant surfaced to consumers that
// only distinguish low/moderate/high. It uses the same 3/5 hPa breakpoints.
func (e *Engine) HeadacheRiskCoarse(readings []schema.PressureReading) schema.RiskSignal {
	signal := e.HeadacheRisk(readings)
	if signal.Level == schema.RiskElevated {
		signal.Level = schema.RiskHigh
		signal.Color = schema.ColorForRisk(schema.RiskHigh)
	}
	return signal
}

// MED is the minimal erythemal dose constant per Fitzpatrick-like skin type
// (index 0 = type 1). Higher types tolerate more UV energy before burning.
var medBySkinType = [6]float64{200, 250, 300, 450, 600, 800}

// vitaminDMultiplier scales the vitamin-D exposure time per skin type.
var vitaminDMultiplier = [6]float64{0.7, 1.0, 1.3, 1.8, 2.5, 3.5}

// vitaminDMinUV is the UV index below which synthesis is too slow to matter.
const vitaminDMinUV = 3.0

// UVExposureTimers computes sunburn-onset and vitamin-D exposure minutes for
// the configured skin type. VitaminDMinutes stays nil when UV is below the
// synthesis threshold; with no measurable UV, no timers apply at all.
func (e *Engine) UVExposureTimers(uvIndex float64) schema.UVExposure {
	result := schema.UVExposure{
		UVIndex:  uvIndex,
		SkinType: e.opts.SkinType,
	}
	if uvIndex <= 0 {
		return result
	}

	med := medBySkinType[e.opts.SkinType-1]
	sunburn := med / (uvIndex * 1.5)
	result.SunburnMinutes = int(math.Round(sunburn))

	safe := 0.7 * sunburn
	if uvIndex >= vitaminDMinUV {
		vitD := (15 * 6 / uvIndex) * vitaminDMultiplier[e.opts.SkinType-1]
		rounded := int(math.Round(vitD))
		result.VitaminDMinutes = &rounded
		if vitD < safe {
			safe = vitD
		}
	}
	result.SafeMinutes = int(math.Round(safe))
	return result
}
