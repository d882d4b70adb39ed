package core

import (
	"testing"

	"github.com/nhollman/breeze/schema"
	"github.com/stretchr/testify/assert"
)

// TestScoreTemperature tests the temperature comfort curve.
func TestScoreTemperature(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		expected float64
	}{
		{name: "optimal band low edge", temp: 18, expected: 100},
		{name: "optimal band high edge", temp: 24, expected: 100},
		{name: "mild cold", temp: 10, expected: 60},
		{name: "deep cold saturates at zero", temp: -10, expected: 0},
		{name: "warm", temp: 28, expected: 76},
		{name: "hot", temp: 32, expected: 50},
		{name: "very hot", temp: 36, expected: 22},
		{name: "extreme heat", temp: 38, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scoreTemperature(tt.temp), 0.001)
		})
	}
}

// TestScoreWind tests the wind comfort steps.
func TestScoreWind(t *testing.T) {
	tests := []struct {
		name     string
		wind     float64
		expected float64
	}{
		{name: "calm", wind: 0, expected: 100},
		{name: "light breeze boundary", wind: 10, expected: 100},
		{name: "breezy", wind: 15, expected: 95},
		{name: "moderate", wind: 25, expected: 85},
		{name: "strong", wind: 35, expected: 65},
		{name: "very strong", wind: 50, expected: 40},
		{name: "storm", wind: 70, expected: 20},
		{name: "beyond storm decays", wind: 90, expected: 10},
		{name: "hurricane saturates at zero", wind: 200, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scoreWind(tt.wind), 0.001)
		})
	}
}

// TestScoreHumidity tests the asymmetric humidity curve.
func TestScoreHumidity(t *testing.T) {
	tests := []struct {
		name     string
		humidity float64
		expected float64
	}{
		{name: "optimal low edge", humidity: 40, expected: 100},
		{name: "optimal high edge", humidity: 60, expected: 100},
		{name: "dry", humidity: 20, expected: 70},
		{name: "very dry", humidity: 0, expected: 40},
		{name: "humid", humidity: 80, expected: 50},
		{name: "oppressive", humidity: 100, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scoreHumidity(tt.humidity), 0.001)
		})
	}
}

// TestScorePrecip tests the precipitation probability steps.
func TestScorePrecip(t *testing.T) {
	tests := []struct {
		name     string
		precip   float64
		expected float64
	}{
		{name: "dry", precip: 0, expected: 100},
		{name: "boundary 10", precip: 10, expected: 100},
		{name: "boundary 25", precip: 25, expected: 90},
		{name: "boundary 40", precip: 40, expected: 70},
		{name: "boundary 60", precip: 60, expected: 45},
		{name: "boundary 80", precip: 80, expected: 25},
		{name: "certain rain", precip: 100, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scorePrecip(tt.precip), 0.001)
		})
	}
}

// TestScoreUV tests the UV index steps.
func TestScoreUV(t *testing.T) {
	tests := []struct {
		name     string
		uv       float64
		expected float64
	}{
		{name: "none", uv: 0, expected: 100},
		{name: "low boundary", uv: 2, expected: 100},
		{name: "moderate boundary", uv: 5, expected: 80},
		{name: "high boundary", uv: 7, expected: 55},
		{name: "very high boundary", uv: 10, expected: 30},
		{name: "extreme", uv: 12, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scoreUV(tt.uv), 0.001)
		})
	}
}

// TestScoreAirQuality tests the AQI steps including the linear tail.
func TestScoreAirQuality(t *testing.T) {
	tests := []struct {
		name     string
		aqi      float64
		expected float64
	}{
		{name: "pristine", aqi: 0, expected: 100},
		{name: "good boundary", aqi: 20, expected: 100},
		{name: "fair boundary", aqi: 40, expected: 85},
		{name: "moderate boundary", aqi: 60, expected: 65},
		{name: "poor boundary", aqi: 80, expected: 45},
		{name: "bad boundary", aqi: 100, expected: 25},
		{name: "tail decay", aqi: 140, expected: 15},
		{name: "tail saturates at zero", aqi: 300, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scoreAirQuality(tt.aqi), 0.001)
		})
	}
}

// TestScoreVisibility tests the visibility steps.
func TestScoreVisibility(t *testing.T) {
	tests := []struct {
		name     string
		vis      float64
		expected float64
	}{
		{name: "clear", vis: 20, expected: 100},
		{name: "boundary 10", vis: 10, expected: 100},
		{name: "boundary 5", vis: 5, expected: 90},
		{name: "boundary 2", vis: 2, expected: 70},
		{name: "boundary 1", vis: 1, expected: 45},
		{name: "fog", vis: 0.2, expected: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scoreVisibility(tt.vis), 0.001)
		})
	}
}

// TestScorePollen tests the pollen scale steps.
func TestScorePollen(t *testing.T) {
	tests := []struct {
		name     string
		pollen   float64
		expected float64
	}{
		{name: "none", pollen: 0, expected: 100},
		{name: "boundary 1", pollen: 1, expected: 100},
		{name: "boundary 2", pollen: 2, expected: 80},
		{name: "boundary 3", pollen: 3, expected: 55},
		{name: "boundary 4", pollen: 4, expected: 30},
		{name: "max", pollen: 5, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scorePollen(tt.pollen), 0.001)
		})
	}
}

// TestScoreFactors verifies the assembled factor map: every factor present,
// weights attached, and the critical flags wired to the right inputs.
func TestScoreFactors(t *testing.T) {
	cond := schema.Conditions{
		Temperature:  20,
		PrecipChance: 55,
		WindSpeed:    45,
		Humidity:     50,
		UVIndex:      4,
		AirQuality:   30,
		Visibility:   10,
		Pollen:       1,
	}

	factors := ScoreFactors(cond)
	assert.Len(t, factors, len(schema.AllFactors))

	for _, key := range schema.AllFactors {
		r, ok := factors[key]
		assert.True(t, ok, "missing factor %s", key)
		assert.Equal(t, key, r.Factor)
		assert.InDelta(t, schema.FactorWeights[key], r.Weight, 0.0001)
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 100.0)
	}

	assert.True(t, factors[schema.FactorPrecip].Critical)
	assert.True(t, factors[schema.FactorWind].Critical)
	assert.False(t, factors[schema.FactorTemperature].Critical)
}

// TestScoreFactorsCriticalBoundary confirms the thresholds are strict.
func TestScoreFactorsCriticalBoundary(t *testing.T) {
	cond := schema.Conditions{PrecipChance: 40, WindSpeed: 40, Visibility: 10}
	factors := ScoreFactors(cond)
	assert.False(t, factors[schema.FactorPrecip].Critical)
	assert.False(t, factors[schema.FactorWind].Critical)

	cond.PrecipChance = 40.1
	cond.WindSpeed = 40.1
	factors = ScoreFactors(cond)
	assert.True(t, factors[schema.FactorPrecip].Critical)
	assert.True(t, factors[schema.FactorWind].Critical)
}
