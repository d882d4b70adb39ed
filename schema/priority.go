package schema

// Priority bands for quick checks. Higher means more urgent. The bands are
// named so every ladder stays auditable and testable per category.
const (
	PrioritySafetyAlert    = 200 // active critical external alert
	PrioritySafetyStorm    = 190 // wind >= 50 km/h
	PrioritySafetyFrost    = 180 // feels-like <= -5 °C
	PrioritySafetyCold     = 150 // feels-like <= 0 °C
	PriorityRainHigh       = 140 // precip chance >= 70%
	PriorityUVExtreme      = 130 // effective UV >= 8
	PrioritySleepNight     = 120 // sleep outlook during night hours
	PriorityUVHigh         = 110 // effective UV >= 5
	PriorityRainLikely     = 100 // precip chance >= 30%
	PriorityAirHazard      = 100 // AQI >= 150
	PriorityJacketCold     = 90  // feels-like <= 5 °C
	PriorityWindAdvisory   = 70  // 30 <= wind < 50 km/h
	PriorityJacketCool     = 70  // feels-like <= 12 °C
	PriorityAirPoor        = 60  // AQI >= 100
	PriorityUVModerate     = 60  // effective UV >= 3
	PriorityJacketOptional = 50  // mild temperatures
	PriorityRainUnlikely   = 40  // precip chance < 30%
	PrioritySleepDay       = 30  // sleep outlook outside night hours
	PriorityUVLow          = 20  // effective UV < 3 or nighttime
)

// Simple-ladder variants used by the plain quick-check entry point. The
// simple rain ladder compresses the range; UV bands keep their thresholds at
// reduced priorities.
const (
	SimpleRainHigh     = 100
	SimpleRainLikely   = 80
	SimpleRainUnlikely = 20
	SimpleUVExtreme    = 100
	SimpleUVHigh       = 80
	SimpleUVModerate   = 40
	SimpleUVLow        = 20
)

// Priority constants for the safety-alert list. Alerts are a parallel,
// independently sorted list and never merge with quick checks.
const (
	AlertStorm       = 200 // wind >= 70 km/h
	AlertExtremeHeat = 195 // feels-like >= 38 °C
	AlertExtremeCold = 190 // feels-like <= -15 °C
	AlertStrongWind  = 185 // wind >= 50 km/h
	AlertExtremeUV   = 175 // UV >= 11
	AlertFrost       = 170 // feels-like <= -5 °C
	AlertAirHazard   = 165 // AQI >= 150
	AlertHeat        = 160 // feels-like >= 33 °C
	AlertMigraine    = 155 // pressure change past critical threshold
	AlertHighUV      = 140 // UV >= 8
	AlertAirPoor     = 120 // AQI >= 100
)

// Icon tokens keyed by the same bands as the priorities above.
const (
	IconAlert    IconToken = "alert"
	IconStorm    IconToken = "storm"
	IconSnow     IconToken = "snowflake"
	IconUmbrella IconToken = "umbrella"
	IconSun      IconToken = "sun"
	IconMoon     IconToken = "moon"
	IconJacket   IconToken = "jacket"
	IconWind     IconToken = "wind"
	IconMask     IconToken = "mask"
	IconHead     IconToken = "head"
	IconThermo   IconToken = "thermometer"
)
