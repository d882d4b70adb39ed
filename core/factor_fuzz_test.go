package core

import (
	"math"
	"testing"

	"github.com/nhollman/breeze/schema"
)

// FuzzScoreFactors fuzzes the factor curves with arbitrary conditions to
// guarantee saturation: every score stays in [0,100] and the composite
// never escapes its bounds or the critical cap.
func FuzzScoreFactors(f *testing.F) {
	seeds := []schema.Conditions{
		{Temperature: 20, Humidity: 50, WindSpeed: 5, Visibility: 10, AirQuality: 25},
		{Temperature: -40, Humidity: 100, WindSpeed: 200, PrecipChance: 100, UVIndex: 14, AirQuality: 500, Pollen: 5},
		{Temperature: 50, Humidity: 0, Visibility: 0, Pressure: 950},
		{},
	}
	for _, s := range seeds {
		f.Add(s.Temperature, s.Humidity, s.WindSpeed, s.PrecipChance, s.UVIndex, s.Visibility, s.AirQuality, s.Pollen)
	}

	f.Fuzz(func(t *testing.T, temp, humidity, wind, precip, uv, vis, aqi, pollen float64) {
		for _, v := range []float64{temp, humidity, wind, precip, uv, vis, aqi, pollen} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Skip("non-finite input")
			}
		}

		cond := schema.Conditions{
			Temperature:  temp,
			FeelsLike:    temp,
			Humidity:     humidity,
			WindSpeed:    wind,
			PrecipChance: precip,
			UVIndex:      uv,
			Visibility:   vis,
			AirQuality:   aqi,
			Pollen:       pollen,
		}

		factors := ScoreFactors(cond)
		if len(factors) != len(schema.AllFactors) {
			t.Fatalf("expected %d factors, got %d", len(schema.AllFactors), len(factors))
		}
		for key, r := range factors {
			if r.Score < 0 || r.Score > 100 {
				t.Errorf("factor %s score %f out of range for input %+v", key, r.Score, cond)
			}
		}

		composite := Composite(cond)
		if composite.Score < 0 || composite.Score > 100 {
			t.Errorf("composite score %d out of range for input %+v", composite.Score, cond)
		}
		if composite.Capped && composite.Score > 30 {
			t.Errorf("capped composite score %d above cap for input %+v", composite.Score, cond)
		}
	})
}
