package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHasCritical tests critical severity detection across alert lists.
func TestHasCritical(t *testing.T) {
	tests := []struct {
		name     string
		alerts   []ExternalAlert
		expected bool
	}{
		{name: "no alerts", alerts: nil, expected: false},
		{
			name: "advisory only",
			alerts: []ExternalAlert{
				{Event: "Wind Advisory", Severity: SeverityAdvisory},
			},
			expected: false,
		},
		{
			name: "warning is not critical",
			alerts: []ExternalAlert{
				{Event: "Heat Warning", Severity: SeverityWarning},
			},
			expected: false,
		},
		{
			name: "critical among others",
			alerts: []ExternalAlert{
				{Event: "Watch", Severity: SeverityWatch},
				{Event: "Tornado", Severity: SeverityCritical},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasCritical(tt.alerts))
		})
	}
}

// TestColorForLabel verifies the label-to-color mapping stays band-aligned.
func TestColorForLabel(t *testing.T) {
	tests := []struct {
		label    ComfortLabel
		expected ColorToken
	}{
		{label: LabelExcellent, expected: ColorGreen},
		{label: LabelGood, expected: ColorTeal},
		{label: LabelModerate, expected: ColorYellow},
		{label: LabelPoor, expected: ColorOrange},
		{label: LabelCritical, expected: ColorRed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ColorForLabel(tt.label))
	}
}

// TestColorForRisk verifies the risk-to-color mapping.
func TestColorForRisk(t *testing.T) {
	tests := []struct {
		level    RiskLevel
		expected ColorToken
	}{
		{level: RiskLow, expected: ColorGreen},
		{level: RiskModerate, expected: ColorYellow},
		{level: RiskElevated, expected: ColorOrange},
		{level: RiskHigh, expected: ColorRed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ColorForRisk(tt.level))
	}
}

// TestAllFactorsCoverWeights guards the factor list and weight table
// against drifting apart.
func TestAllFactorsCoverWeights(t *testing.T) {
	assert.Len(t, FactorWeights, len(AllFactors))
	for _, key := range AllFactors {
		_, ok := FactorWeights[key]
		assert.True(t, ok, "factor %s has no weight", key)
	}
}

// TestValidBackends verifies the backend allow-list.
func TestValidBackends(t *testing.T) {
	for _, b := range []DatabaseBackend{SQLiteBackend, MySQLBackend, PostgreSQLBackend, NoneBackend} {
		_, ok := ValidBackends[b]
		assert.True(t, ok, "backend %s should be valid", b)
	}
	_, ok := ValidBackends[DatabaseBackend("oracle")]
	assert.False(t, ok)
}
