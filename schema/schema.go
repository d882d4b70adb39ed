// Package schema has configs, models and constants for all parts of breeze.
package schema

import "time"

// WeatherSample is one normalized observation or forecast point in time.
// Every field except Time is optional; nil fields fall back to the documented
// defaults during normalization (see core.Defaults).
type WeatherSample struct {
	Time         time.Time `json:"time"`
	Temperature  *float64  `json:"temperature,omitempty"`   // °C
	FeelsLike    *float64  `json:"feels_like,omitempty"`    // °C
	Humidity     *float64  `json:"humidity,omitempty"`      // percent
	WindSpeed    *float64  `json:"wind_speed,omitempty"`    // km/h
	PrecipChance *float64  `json:"precip_chance,omitempty"` // percent
	UVIndex      *float64  `json:"uv_index,omitempty"`      // unitless index
	Visibility   *float64  `json:"visibility,omitempty"`    // km
	AirQuality   *float64  `json:"air_quality,omitempty"`   // AQI
	Pollen       *float64  `json:"pollen,omitempty"`        // 0-5 scale
	Pressure     *float64  `json:"pressure,omitempty"`      // hPa
}

// DailySummary carries day-level aggregates used as fallbacks when the
// current sample is missing a field (e.g. UV falls back to the day's max).
type DailySummary struct {
	Date            time.Time `json:"date"`
	TempMin         *float64  `json:"temp_min,omitempty"`
	TempMax         *float64  `json:"temp_max,omitempty"`
	UVIndexMax      *float64  `json:"uv_index_max,omitempty"`
	PrecipChanceMax *float64  `json:"precip_chance_max,omitempty"`
}

// WeatherBundle is the full normalized input consumed by the engine: one
// current observation, an hourly forecast series, the day summary, and the
// separately sourced air-quality and pollen readings.
type WeatherBundle struct {
	Current    WeatherSample   `json:"current"`
	Hourly     []WeatherSample `json:"hourly"`
	Daily      DailySummary    `json:"daily"`
	AirQuality *float64        `json:"air_quality,omitempty"`
	Pollen     *float64        `json:"pollen,omitempty"`
	Alerts     []ExternalAlert `json:"alerts,omitempty"`
}

// ExternalAlert is an active provider-issued weather alert. The engine only
// inspects Severity; everything else is passed through for display.
type ExternalAlert struct {
	Event    string        `json:"event"`
	Severity AlertSeverity `json:"severity"`
	Headline string        `json:"headline,omitempty"`
}

// HasCritical reports whether any active alert carries critical severity.
func HasCritical(alerts []ExternalAlert) bool {
	for _, a := range alerts {
		if a.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// Conditions is a fully populated sample produced by the normalize step.
// Every scoring function operates on this shape so per-field fallback rules
// live in exactly one place.
type Conditions struct {
	Time         time.Time `json:"time"`
	Temperature  float64   `json:"temperature"`
	FeelsLike    float64   `json:"feels_like"`
	Humidity     float64   `json:"humidity"`
	WindSpeed    float64   `json:"wind_speed"`
	PrecipChance float64   `json:"precip_chance"`
	UVIndex      float64   `json:"uv_index"`
	Visibility   float64   `json:"visibility"`
	AirQuality   float64   `json:"air_quality"`
	Pollen       float64   `json:"pollen"`
	Pressure     float64   `json:"pressure"`
}

// PressureReading is one (time, pressure) pair for the headache-risk trend.
type PressureReading struct {
	Time     time.Time `json:"time"`
	Pressure float64   `json:"pressure"` // hPa
}
