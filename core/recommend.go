package core

import (
	"github.com/nhollman/breeze/schema"
)

// CheckContext carries the call-time context that steers priorities.
type CheckContext struct {
	IsNight          bool
	DayMaxUV         float64
	HasCriticalAlert bool
}

// Quick-check thresholds. Each ladder is independent; items never derive
// from the composite score.
const (
	stormWindSpeed    = 50.0 // km/h
	severeFrostFeels  = -5.0 // °C
	frostFeels        = 0.0  // °C
	rainHighChance    = 70.0 // percent
	rainLikelyChance  = 30.0 // percent
	rainJacketChance  = 50.0 // percent, switches jacket wording
	uvExtremeIndex    = 8.0
	uvHighIndex       = 5.0
	uvModerateIndex   = 3.0
	jacketColdFeels   = 5.0  // °C
	jacketCoolFeels   = 12.0 // °C
	windAdvisoryFloor = 30.0 // km/h
	airHazardAQI      = 150.0
	airPoorAQI        = 100.0
)

// QuickChecks produces the prioritized recommendation list for the given
// conditions, sorted by priority descending with insertion order preserved
// on ties.
func (e *Engine) QuickChecks(c schema.Conditions, ctx CheckContext) []schema.RecommendationItem {
	var items []schema.RecommendationItem

	items = append(items, e.safetyOverrides(c, ctx)...)
	items = append(items, e.rainCheck(c, false))
	items = append(items, e.sunCheck(c, ctx, false))
	items = append(items, e.sleepCheck(c, ctx))
	items = append(items, e.clothingCheck(c))
	if w, ok := e.windCheck(c); ok {
		items = append(items, w)
	}
	if a, ok := e.airCheck(c); ok {
		items = append(items, a)
	}

	return RankItems(items)
}

// SimpleChecks is the plain entry point with the compressed rain/UV ladders
// and no safety overrides. Both ladders are kept as distinct entry points on
// purpose; consumers pick one, never both.
func (e *Engine) SimpleChecks(c schema.Conditions, ctx CheckContext) []schema.RecommendationItem {
	var items []schema.RecommendationItem

	items = append(items, e.rainCheck(c, true))
	items = append(items, e.sunCheck(c, ctx, true))
	items = append(items, e.sleepCheck(c, ctx))
	items = append(items, e.clothingCheck(c))
	if w, ok := e.windCheck(c); ok {
		items = append(items, w)
	}
	if a, ok := e.airCheck(c); ok {
		items = append(items, a)
	}

	return RankItems(items)
}

// safetyOverrides emits the highest-band items. At most one frost item is
// produced; an active critical alert and a storm can coexist.
func (e *Engine) safetyOverrides(c schema.Conditions, ctx CheckContext) []schema.RecommendationItem {
	var items []schema.RecommendationItem

	if ctx.HasCriticalAlert {
		items = append(items, schema.RecommendationItem{
			ID:       "safety-alert",
			Category: schema.CategorySafety,
			Priority: schema.PrioritySafetyAlert,
			Title:    e.tr.T("check.alert.title"),
			Detail:   e.tr.T("check.alert.detail"),
			Icon:     schema.IconAlert,
			Color:    schema.ColorRed,
		})
	}
	if c.WindSpeed >= stormWindSpeed {
		items = append(items, schema.RecommendationItem{
			ID:       "safety-storm",
			Category: schema.CategorySafety,
			Priority: schema.PrioritySafetyStorm,
			Title:    e.tr.T("check.storm.title"),
			Detail:   e.tr.T("check.storm.detail", c.WindSpeed),
			Icon:     schema.IconStorm,
			Color:    schema.ColorRed,
		})
	}
	switch {
	case c.FeelsLike <= severeFrostFeels:
		items = append(items, schema.RecommendationItem{
			ID:       "safety-frost",
			Category: schema.CategorySafety,
			Priority: schema.PrioritySafetyFrost,
			Title:    e.tr.T("check.frost.title"),
			Detail:   e.tr.T("check.frost.detail", c.FeelsLike),
			Icon:     schema.IconSnow,
			Color:    schema.ColorRed,
		})
	case c.FeelsLike <= frostFeels:
		items = append(items, schema.RecommendationItem{
			ID:       "safety-cold",
			Category: schema.CategorySafety,
			Priority: schema.PrioritySafetyCold,
			Title:    e.tr.T("check.cold.title"),
			Detail:   e.tr.T("check.cold.detail", c.FeelsLike),
			Icon:     schema.IconSnow,
			Color:    schema.ColorOrange,
		})
	}
	return items
}

func (e *Engine) rainCheck(c schema.Conditions, simple bool) schema.RecommendationItem {
	item := schema.RecommendationItem{
		ID:       "rain",
		Category: schema.CategoryRain,
		Icon:     schema.IconUmbrella,
	}
	switch {
	case c.PrecipChance >= rainHighChance:
		item.Priority = schema.PriorityRainHigh
		if simple {
			item.Priority = schema.SimpleRainHigh
		}
		item.Title = e.tr.T("check.rain.high")
		item.Detail = e.tr.T("check.rain.high.d", c.PrecipChance)
		item.Color = schema.ColorRed
	case c.PrecipChance >= rainLikelyChance:
		item.Priority = schema.PriorityRainLikely
		if simple {
			item.Priority = schema.SimpleRainLikely
		}
		item.Title = e.tr.T("check.rain.likely")
		item.Detail = e.tr.T("check.rain.likely.d", c.PrecipChance)
		item.Color = schema.ColorYellow
	default:
		item.Priority = schema.PriorityRainUnlikely
		if simple {
			item.Priority = schema.SimpleRainUnlikely
		}
		item.Title = e.tr.T("check.rain.unlikely")
		item.Detail = e.tr.T("check.rain.unlikely.d", c.PrecipChance)
		item.Color = schema.ColorGreen
	}
	return item
}

// sunCheck scores sun protection from the effective UV: the max of the
// current index and the day's max. At night the priority drops to the low
// constant regardless of UV.
func (e *Engine) sunCheck(c schema.Conditions, ctx CheckContext, simple bool) schema.RecommendationItem {
	effective := c.UVIndex
	if ctx.DayMaxUV > effective {
		effective = ctx.DayMaxUV
	}

	item := schema.RecommendationItem{
		ID:       "sun",
		Category: schema.CategorySun,
		Icon:     schema.IconSun,
	}
	if ctx.IsNight {
		item.Priority = schema.PriorityUVLow
		if simple {
			item.Priority = schema.SimpleUVLow
		}
		item.Title = e.tr.T("check.uv.night")
		item.Icon = schema.IconMoon
		item.Color = schema.ColorGray
		return item
	}

	switch {
	case effective >= uvExtremeIndex:
		item.Priority = schema.PriorityUVExtreme
		if simple {
			item.Priority = schema.SimpleUVExtreme
		}
		item.Title = e.tr.T("check.uv.extreme")
		item.Detail = e.tr.T("check.uv.extreme.d", effective)
		item.Color = schema.ColorRed
	case effective >= uvHighIndex:
		item.Priority = schema.PriorityUVHigh
		if simple {
			item.Priority = schema.SimpleUVHigh
		}
		item.Title = e.tr.T("check.uv.high")
		item.Detail = e.tr.T("check.uv.high.d", effective)
		item.Color = schema.ColorOrange
	case effective >= uvModerateIndex:
		item.Priority = schema.PriorityUVModerate
		if simple {
			item.Priority = schema.SimpleUVModerate
		}
		item.Title = e.tr.T("check.uv.moderate")
		item.Detail = e.tr.T("check.uv.moderate.d", effective)
		item.Color = schema.ColorYellow
	default:
		item.Priority = schema.PriorityUVLow
		if simple {
			item.Priority = schema.SimpleUVLow
		}
		item.Title = e.tr.T("check.uv.low")
		item.Detail = e.tr.T("check.uv.low.d", effective)
		item.Color = schema.ColorGreen
	}
	return item
}

// Sleep sub-score constants: optimal 16-19 °C and 40-60% humidity.
const (
	sleepTempLow      = 16.0
	sleepTempHigh     = 19.0
	sleepColdPenalty  = 5.0  // pts per °C below the band
	sleepHeatPenalty  = 8.57 // pts per °C above the band
	sleepHumidPenalty = 0.5  // pts per % outside 40-60
)

// sleepScore rates how well current temperature and humidity suit sleep.
func sleepScore(temp, humidity float64) int {
	score := 100.0
	if temp < sleepTempLow {
		score -= sleepColdPenalty * (sleepTempLow - temp)
	} else if temp > sleepTempHigh {
		score -= sleepHeatPenalty * (temp - sleepTempHigh)
	}
	if humidity < 40 {
		score -= sleepHumidPenalty * (40 - humidity)
	} else if humidity > 60 {
		score -= sleepHumidPenalty * (humidity - 60)
	}
	return int(clampScore(score))
}

// sleepCheck has a context-switched priority: prominent at night, background
// during the day. Only the message varies with the sub-score.
func (e *Engine) sleepCheck(c schema.Conditions, ctx CheckContext) schema.RecommendationItem {
	score := sleepScore(c.Temperature, c.Humidity)

	var key string
	var color schema.ColorToken
	switch {
	case score >= 70:
		key, color = "check.sleep.good", schema.ColorGreen
	case score >= 40:
		key, color = "check.sleep.fair", schema.ColorYellow
	default:
		key, color = "check.sleep.poor", schema.ColorOrange
	}

	priority := schema.PrioritySleepDay
	if ctx.IsNight {
		priority = schema.PrioritySleepNight
	}
	return schema.RecommendationItem{
		ID:       "sleep",
		Category: schema.CategorySleep,
		Priority: priority,
		Title:    e.tr.T("check.sleep.title"),
		Detail:   e.tr.T(key, score),
		Icon:     schema.IconMoon,
		Color:    color,
	}
}

func (e *Engine) clothingCheck(c schema.Conditions) schema.RecommendationItem {
	item := schema.RecommendationItem{
		ID:       "clothing",
		Category: schema.CategoryClothing,
		Icon:     schema.IconJacket,
	}
	switch {
	case c.FeelsLike <= jacketColdFeels:
		item.Priority = schema.PriorityJacketCold
		item.Title = e.tr.T("check.jacket.cold")
		item.Detail = e.tr.T("check.jacket.cold.d", c.FeelsLike)
		item.Color = schema.ColorTeal
	case c.FeelsLike <= jacketCoolFeels:
		item.Priority = schema.PriorityJacketCool
		item.Title = e.tr.T("check.jacket.cool")
		item.Detail = e.tr.T("check.jacket.cool.d", c.FeelsLike)
		item.Color = schema.ColorTeal
	default:
		item.Priority = schema.PriorityJacketOptional
		item.Title = e.tr.T("check.jacket.light")
		item.Detail = e.tr.T("check.jacket.light.d", c.FeelsLike)
		item.Color = schema.ColorGreen
	}
	if c.PrecipChance >= rainJacketChance {
		item.Title = e.tr.T("check.jacket.rain")
	}
	return item
}

// windCheck only emits in the advisory band; the storm band is handled by
// the safety overrides.
func (e *Engine) windCheck(c schema.Conditions) (schema.RecommendationItem, bool) {
	if c.WindSpeed < windAdvisoryFloor || c.WindSpeed >= stormWindSpeed {
		return schema.RecommendationItem{}, false
	}
	return schema.RecommendationItem{
		ID:       "wind",
		Category: schema.CategoryWind,
		Priority: schema.PriorityWindAdvisory,
		Title:    e.tr.T("check.wind.title"),
		Detail:   e.tr.T("check.wind.detail", c.WindSpeed),
		Icon:     schema.IconWind,
		Color:    schema.ColorYellow,
	}, true
}

func (e *Engine) airCheck(c schema.Conditions) (schema.RecommendationItem, bool) {
	if c.AirQuality < airPoorAQI {
		return schema.RecommendationItem{}, false
	}
	item := schema.RecommendationItem{
		ID:       "air",
		Category: schema.CategoryAir,
		Icon:     schema.IconMask,
	}
	if c.AirQuality >= airHazardAQI {
		item.Priority = schema.PriorityAirHazard
		item.Title = e.tr.T("check.air.hazard")
		item.Detail = e.tr.T("check.air.hazard.d", c.AirQuality)
		item.Color = schema.ColorRed
	} else {
		item.Priority = schema.PriorityAirPoor
		item.Title = e.tr.T("check.air.poor")
		item.Detail = e.tr.T("check.air.poor.d", c.AirQuality)
		item.Color = schema.ColorOrange
	}
	return item, true
}
