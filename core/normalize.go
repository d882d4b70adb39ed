package core

import (
	"github.com/nhollman/breeze/schema"
)

// Documented defaults for absent input fields. Normalization substitutes
// these once, up front, so no scoring function carries its own fallbacks.
const (
	DefaultTemperature  = 18.0    // °C
	DefaultHumidity     = 50.0    // percent
	DefaultWindSpeed    = 0.0     // km/h
	DefaultPrecipChance = 0.0     // percent
	DefaultUVIndex      = 0.0     // index
	DefaultVisibility   = 10.0    // km
	DefaultAirQuality   = 25.0    // AQI
	DefaultPollen       = 0.0     // 0-5 scale
	DefaultPressure     = 1013.25 // hPa
)

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// NormalizeSample produces fully populated conditions from a single sample.
func NormalizeSample(s schema.WeatherSample) schema.Conditions {
	temp := orDefault(s.Temperature, DefaultTemperature)
	return schema.Conditions{
		Time:         s.Time,
		Temperature:  temp,
		FeelsLike:    orDefault(s.FeelsLike, temp),
		Humidity:     orDefault(s.Humidity, DefaultHumidity),
		WindSpeed:    orDefault(s.WindSpeed, DefaultWindSpeed),
		PrecipChance: orDefault(s.PrecipChance, DefaultPrecipChance),
		UVIndex:      orDefault(s.UVIndex, DefaultUVIndex),
		Visibility:   orDefault(s.Visibility, DefaultVisibility),
		AirQuality:   orDefault(s.AirQuality, DefaultAirQuality),
		Pollen:       orDefault(s.Pollen, DefaultPollen),
		Pressure:     orDefault(s.Pressure, DefaultPressure),
	}
}

// Normalize derives the current conditions from a bundle, filling gaps in the
// current sample from the daily summary and the standalone air-quality and
// pollen records before applying the documented defaults.
func Normalize(b schema.WeatherBundle) schema.Conditions {
	s := b.Current

	// Current UV falls back to the day's max before the numeric default.
	if s.UVIndex == nil && b.Daily.UVIndexMax != nil {
		s.UVIndex = b.Daily.UVIndexMax
	}
	if s.PrecipChance == nil && b.Daily.PrecipChanceMax != nil {
		s.PrecipChance = b.Daily.PrecipChanceMax
	}
	if s.AirQuality == nil && b.AirQuality != nil {
		s.AirQuality = b.AirQuality
	}
	if s.Pollen == nil && b.Pollen != nil {
		s.Pollen = b.Pollen
	}

	return NormalizeSample(s)
}
