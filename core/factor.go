package core

import (
	"github.com/nhollman/breeze/schema"
)

// Critical thresholds that hard-cap the composite score.
const (
	criticalPrecipChance = 40.0 // percent
	criticalWindSpeed    = 40.0 // km/h
)

// scoreTemperature maps air temperature (°C) to a comfort score. The optimal
// band 18-24 °C scores 100; colder air loses 5 pts/°C, warmer air degrades
// faster with steeper slopes past 28/32/36 °C.
func scoreTemperature(t float64) float64 {
	switch {
	case t >= 18 && t <= 24:
		return 100
	case t < 18:
		return clampScore(100 - 5.0*(18-t))
	case t <= 28:
		return clampScore(100 - 6.0*(t-24))
	case t <= 32:
		return clampScore(76 - 6.5*(t-28))
	case t <= 36:
		return clampScore(50 - 7.0*(t-32))
	default:
		return clampScore(22 - 7.5*(t-36))
	}
}

// scoreWind maps wind speed (km/h) to a comfort score.
func scoreWind(w float64) float64 {
	switch {
	case w <= 10:
		return 100
	case w <= 15:
		return 95
	case w <= 25:
		return 85
	case w <= 35:
		return 65
	case w <= 50:
		return 40
	case w <= 70:
		return 20
	default:
		return clampScore(20 - 0.5*(w-70))
	}
}

// scoreHumidity maps relative humidity (%) to a comfort score. The optimal
// band is 40-60%; dry air is tolerated better than overly humid air.
func scoreHumidity(h float64) float64 {
	switch {
	case h >= 40 && h <= 60:
		return 100
	case h < 40:
		return clampScore(100 - 1.5*(40-h))
	default:
		return clampScore(100 - 2.5*(h-60))
	}
}

// scorePrecip maps precipitation probability (%) to a comfort score.
func scorePrecip(p float64) float64 {
	switch {
	case p <= 10:
		return 100
	case p <= 25:
		return 90
	case p <= 40:
		return 70
	case p <= 60:
		return 45
	case p <= 80:
		return 25
	default:
		return 10
	}
}

// scoreUV maps the UV index to a risk-adjusted comfort score.
func scoreUV(uv float64) float64 {
	switch {
	case uv <= 2:
		return 100
	case uv <= 5:
		return 80
	case uv <= 7:
		return 55
	case uv <= 10:
		return 30
	default:
		return 10
	}
}

// scoreAirQuality maps an AQI reading to a comfort score. Past AQI 100 the
// score keeps decaying linearly at 0.25 pts per index point.
func scoreAirQuality(aqi float64) float64 {
	switch {
	case aqi <= 20:
		return 100
	case aqi <= 40:
		return 85
	case aqi <= 60:
		return 65
	case aqi <= 80:
		return 45
	case aqi <= 100:
		return 25
	default:
		return clampScore(25 - 0.25*(aqi-100))
	}
}

// scoreVisibility maps visibility (km) to a comfort score.
func scoreVisibility(v float64) float64 {
	switch {
	case v >= 10:
		return 100
	case v >= 5:
		return 90
	case v >= 2:
		return 70
	case v >= 1:
		return 45
	default:
		return 20
	}
}

// scorePollen maps the 0-5 pollen scale to a comfort score.
func scorePollen(p float64) float64 {
	switch {
	case p <= 1:
		return 100
	case p <= 2:
		return 80
	case p <= 3:
		return 55
	case p <= 4:
		return 30
	default:
		return 10
	}
}

// ScoreFactors evaluates every factor curve against fully normalized
// conditions. Scores are clamped to [0,100] before any weighting; out-of-range
// raw input never fails, it just saturates the curve.
func ScoreFactors(c schema.Conditions) map[schema.FactorKey]schema.FactorResult {
	results := map[schema.FactorKey]schema.FactorResult{
		schema.FactorTemperature: {RawValue: c.Temperature, Score: scoreTemperature(c.Temperature)},
		schema.FactorPrecip:      {RawValue: c.PrecipChance, Score: scorePrecip(c.PrecipChance), Critical: c.PrecipChance > criticalPrecipChance},
		schema.FactorWind:        {RawValue: c.WindSpeed, Score: scoreWind(c.WindSpeed), Critical: c.WindSpeed > criticalWindSpeed},
		schema.FactorHumidity:    {RawValue: c.Humidity, Score: scoreHumidity(c.Humidity)},
		schema.FactorUV:          {RawValue: c.UVIndex, Score: scoreUV(c.UVIndex)},
		schema.FactorAirQuality:  {RawValue: c.AirQuality, Score: scoreAirQuality(c.AirQuality)},
		schema.FactorVisibility:  {RawValue: c.Visibility, Score: scoreVisibility(c.Visibility)},
		schema.FactorPollen:      {RawValue: c.Pollen, Score: scorePollen(c.Pollen)},
	}
	for key, r := range results {
		r.Factor = key
		r.Weight = schema.FactorWeights[key]
		r.Score = clampScore(r.Score)
		results[key] = r
	}
	return results
}
