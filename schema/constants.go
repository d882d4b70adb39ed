package schema

// Custom string types for type safety.
type (
	// FactorKey identifies one physical comfort factor.
	FactorKey string

	// ComfortLabel is the qualitative band for a composite score.
	ComfortLabel string

	// ColorToken is an abstract color the presentation layer maps to a theme.
	ColorToken string

	// IconToken is an abstract icon identifier.
	IconToken string

	// RiskLevel is the ordinal severity of a bio-meteorological signal.
	RiskLevel string

	// AlertSeverity mirrors the normalized provider severity scale.
	AlertSeverity string

	// CheckCategory groups recommendation items.
	CheckCategory string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching/history.
	DatabaseBackend string
)

// All comfort factors, in weight order.
const (
	FactorTemperature FactorKey = "temperature"
	FactorPrecip      FactorKey = "precipitation"
	FactorWind        FactorKey = "wind"
	FactorHumidity    FactorKey = "humidity"
	FactorUV          FactorKey = "uv"
	FactorAirQuality  FactorKey = "air_quality"
	FactorVisibility  FactorKey = "visibility"
	FactorPollen      FactorKey = "pollen"

	// FactorNone marks an uncapped composite score.
	FactorNone FactorKey = ""
)

// AllFactors lists every factor in the order it is weighted and displayed.
var AllFactors = []FactorKey{
	FactorTemperature,
	FactorPrecip,
	FactorWind,
	FactorHumidity,
	FactorUV,
	FactorAirQuality,
	FactorVisibility,
	FactorPollen,
}

// FactorWeights is the fixed per-factor weight table. The weights sum to 1.0.
var FactorWeights = map[FactorKey]float64{
	FactorTemperature: 0.25,
	FactorPrecip:      0.20,
	FactorWind:        0.15,
	FactorHumidity:    0.10,
	FactorUV:          0.10,
	FactorAirQuality:  0.10,
	FactorVisibility:  0.05,
	FactorPollen:      0.05,
}

// Comfort label bands at thresholds 80/60/40/20.
const (
	LabelExcellent ComfortLabel = "excellent"
	LabelGood      ComfortLabel = "good"
	LabelModerate  ComfortLabel = "moderate"
	LabelPoor      ComfortLabel = "poor"
	LabelCritical  ComfortLabel = "critical"
)

// Color tokens shared by labels, risk levels and recommendation bands.
const (
	ColorGreen  ColorToken = "green"
	ColorTeal   ColorToken = "teal"
	ColorYellow ColorToken = "yellow"
	ColorOrange ColorToken = "orange"
	ColorRed    ColorToken = "red"
	ColorGray   ColorToken = "gray"
)

// Risk levels, ordered low to high.
const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskElevated RiskLevel = "elevated"
	RiskHigh     RiskLevel = "high"
)

// All alert severities supported.
const (
	SeverityAdvisory AlertSeverity = "advisory"
	SeverityWatch    AlertSeverity = "watch"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Recommendation categories.
const (
	CategorySafety   CheckCategory = "safety"
	CategoryRain     CheckCategory = "rain"
	CategorySun      CheckCategory = "sun"
	CategorySleep    CheckCategory = "sleep"
	CategoryClothing CheckCategory = "clothing"
	CategoryWind     CheckCategory = "wind"
	CategoryAir      CheckCategory = "air"
	CategoryMigraine CheckCategory = "migraine"
	CategoryHeat     CheckCategory = "heat"
	CategoryCold     CheckCategory = "cold"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet" // history export only
)

// All cache/history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes for analysis commands.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidExportModes lists all valid output modes for history export.
var ValidExportModes = map[OutputMode]struct{}{
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidBackends lists all valid database backends.
var ValidBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// LabelForScore maps a composite score to its qualitative band.
func LabelForScore(score int) ComfortLabel {
	switch {
	case score >= 80:
		return LabelExcellent
	case score >= 60:
		return LabelGood
	case score >= 40:
		return LabelModerate
	case score >= 20:
		return LabelPoor
	default:
		return LabelCritical
	}
}

// ColorForLabel maps a comfort label to its color token. Labels and colors
// share the same bands so presentation stays consistent with scoring.
func ColorForLabel(label ComfortLabel) ColorToken {
	switch label {
	case LabelExcellent:
		return ColorGreen
	case LabelGood:
		return ColorTeal
	case LabelModerate:
		return ColorYellow
	case LabelPoor:
		return ColorOrange
	default:
		return ColorRed
	}
}

// ColorForRisk maps a risk level to its color token.
func ColorForRisk(level RiskLevel) ColorToken {
	switch level {
	case RiskLow:
		return ColorGreen
	case RiskModerate:
		return ColorYellow
	case RiskElevated:
		return ColorOrange
	default:
		return ColorRed
	}
}
