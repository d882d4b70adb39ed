package schema

import "time"

// FactorResult is the outcome of scoring a single physical factor.
// Score is always clamped to [0,100] before weighting.
type FactorResult struct {
	Factor   FactorKey `json:"factor"`
	Score    float64   `json:"score"`
	Weight   float64   `json:"weight"`
	RawValue float64   `json:"raw_value"`
	Critical bool      `json:"critical"`
}

// CompositeScore is the weighted outdoor-comfort score for one set of
// conditions. When a critical threshold is breached the score is hard-capped
// regardless of the weighted sum, and CappedBy names the first breaching
// factor (precipitation is checked before wind).
type CompositeScore struct {
	Score    int                        `json:"score"`
	Factors  map[FactorKey]FactorResult `json:"factors"`
	Capped   bool                       `json:"capped"`
	CappedBy FactorKey                  `json:"capped_by,omitempty"`
	Label    ComfortLabel               `json:"label"`
	Color    ColorToken                 `json:"color"`
}

// WindowHour is one member hour of a time window.
type WindowHour struct {
	Index int       `json:"index"`
	Time  time.Time `json:"time"`
	Score int       `json:"score"`
}

// TimeWindow is the best contiguous run of hours for outdoor activity.
// Invariants: len(Hours) >= the configured minimum slot count, and no member
// score is below the window floor.
type TimeWindow struct {
	StartIndex   int          `json:"start_index"`
	EndIndex     int          `json:"end_index"`
	AverageScore int          `json:"average_score"`
	Hours        []WindowHour `json:"hours"`
}

// RiskSignal is a derived bio-meteorological risk indicator. Magnitude is the
// signed quantity the level was derived from (e.g. hPa pressure change), not
// an instantaneous value.
type RiskSignal struct {
	Level     RiskLevel  `json:"level"`
	Magnitude float64    `json:"magnitude"`
	Advisory  string     `json:"advisory"`
	Color     ColorToken `json:"color"`
	Critical  bool       `json:"critical"`
}

// UVExposure holds the sun-exposure timers for a UV index and skin type.
// VitaminDMinutes is nil when the UV index is below the synthesis threshold.
type UVExposure struct {
	UVIndex         float64 `json:"uv_index"`
	SkinType        int     `json:"skin_type"`
	SunburnMinutes  int     `json:"sunburn_minutes"`
	VitaminDMinutes *int    `json:"vitamin_d_minutes,omitempty"`
	SafeMinutes     int     `json:"safe_minutes"`
}

// RecommendationItem is one actionable recommendation. Items are created
// fresh on every call and only ordered by Priority descending, ties keeping
// insertion order.
type RecommendationItem struct {
	ID       string        `json:"id"`
	Category CheckCategory `json:"category"`
	Priority int           `json:"priority"`
	Title    string        `json:"title"`
	Detail   string        `json:"detail,omitempty"`
	Icon     IconToken     `json:"icon"`
	Color    ColorToken    `json:"color"`
}

// TimelinePoint is one hour of the chart-ready composite score series.
type TimelinePoint struct {
	Index int          `json:"index"`
	Time  time.Time    `json:"time"`
	Score int          `json:"score"`
	Label ComfortLabel `json:"label"`
}

// AnalysisResult bundles everything one orchestration call produces.
type AnalysisResult struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Conditions  Conditions           `json:"conditions"`
	IsNight     bool                 `json:"is_night"`
	Comfort     CompositeScore       `json:"comfort"`
	BestWindow  *TimeWindow          `json:"best_window,omitempty"`
	Headache    RiskSignal           `json:"headache"`
	UVExposure  UVExposure           `json:"uv_exposure"`
	QuickChecks []RecommendationItem `json:"quick_checks"`
	Alerts      []RecommendationItem `json:"alerts"`
	Timeline    []TimelinePoint      `json:"timeline"`
}

// AnalysisRun is one recorded CLI analysis, persisted by the history store.
type AnalysisRun struct {
	ID         int64     `json:"id" parquet:"id"`
	RunAt      time.Time `json:"run_at" parquet:"run_at"`
	InputPath  string    `json:"input_path" parquet:"input_path"`
	Locale     string    `json:"locale" parquet:"locale"`
	Score      int       `json:"score" parquet:"score"`
	Label      string    `json:"label" parquet:"label"`
	Capped     bool      `json:"capped" parquet:"capped"`
	HasWindow  bool      `json:"has_window" parquet:"has_window"`
	Headache   string    `json:"headache" parquet:"headache"`
	CheckCount int       `json:"check_count" parquet:"check_count"`
	AlertCount int       `json:"alert_count" parquet:"alert_count"`
	DurationMS int64     `json:"duration_ms" parquet:"duration_ms"`
}
