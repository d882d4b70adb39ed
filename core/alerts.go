package core

import (
	"github.com/nhollman/breeze/schema"
)

// Safety-alert thresholds. These ladders parallel the quick checks but use
// their own breakpoints and priority constants; the two lists never merge.
const (
	alertStormWind    = 70.0  // km/h
	alertStrongWind   = 50.0  // km/h
	alertExtremeHeat  = 38.0  // °C feels-like
	alertHeat         = 33.0  // °C feels-like
	alertExtremeCold  = -15.0 // °C feels-like
	alertFrost        = -5.0  // °C feels-like
	alertExtremeUV    = 11.0
	alertHighUV       = 8.0
	alertAirHazardAQI = 150.0
	alertAirPoorAQI   = 100.0
)

// SafetyAlerts derives the independently sorted alert list from current
// conditions and the headache signal. Each category emits at most one item,
// the highest matching band.
func (e *Engine) SafetyAlerts(c schema.Conditions, headache schema.RiskSignal) []schema.RecommendationItem {
	var items []schema.RecommendationItem

	switch {
	case c.WindSpeed >= alertStormWind:
		items = append(items, schema.RecommendationItem{
			ID:       "alert-storm",
			Category: schema.CategoryWind,
			Priority: schema.AlertStorm,
			Title:    e.tr.T("alert.storm", c.WindSpeed),
			Icon:     schema.IconStorm,
			Color:    schema.ColorRed,
		})
	case c.WindSpeed >= alertStrongWind:
		items = append(items, schema.RecommendationItem{
			ID:       "alert-wind",
			Category: schema.CategoryWind,
			Priority: schema.AlertStrongWind,
			Title:    e.tr.T("alert.wind", c.WindSpeed),
			Icon:     schema.IconWind,
			Color:    schema.ColorOrange,
		})
	}

	switch {
	case c.FeelsLike >= alertExtremeHeat:
		items = append(items, schema.RecommendationItem{
			ID:       "alert-heat-extreme",
			Category: schema.CategoryHeat,
			Priority: schema.AlertExtremeHeat,
			Title:    e.tr.T("alert.heat.extreme", c.FeelsLike),
			Icon:     schema.IconThermo,
			Color:    schema.ColorRed,
		})
	case c.FeelsLike >= alertHeat:
		items = append(items, schema.RecommendationItem{
			ID:       "alert-heat",
			Category: schema.CategoryHeat,
			Priority: schema.AlertHeat,
			Title:    e.tr.T("alert.heat", c.FeelsLike),
			Icon:     schema.IconThermo,
			Color:    schema.ColorOrange,
		})
	case c.FeelsLike <= alertExtremeCold:
		items = append(items, schema.RecommendationItem{
			ID:       "alert-cold-extreme",
			Category: schema.CategoryCold,
			Priority: schema.AlertExtremeCold,
			Title:    e.tr.T("alert.cold.extreme", c.FeelsLike),
			Icon:     schema.IconSnow,
			Color:    schema.ColorRed,
		})
	case c.FeelsLike <= alertFrost:
		items = append(items, schema.RecommendationItem{
			ID:       "alert-frost",
			Category: schema.CategoryCold,
			Priority: schema.AlertFrost,
			Title:    e.tr.T("alert.frost", c.FeelsLike),
			Icon:     schema.IconSnow,
			Color:    schema.ColorOrange,
		})
	}

	switch {
	case c.UVIndex >= alertExtremeUV:
		items = append(items, schema.RecommendationItem{
			ID:       "alert-uv-extreme",
			Category: schema.CategorySun,
			Priority: schema.AlertExtremeUV,
			Title:    e.tr.T("alert.uv.extreme", c.UVIndex),
			Icon:     schema.IconSun,
			Color:    schema.ColorRed,
		})
	case c.UVIndex >= alertHighUV:
		items = append(items, schema.RecommendationItem{
			ID:       "alert-uv-high",
			Category: schema.CategorySun,
			Priority: schema.AlertHighUV,
			Title:    e.tr.T("alert.uv.high", c.UVIndex),
			Icon:     schema.IconSun,
			Color:    schema.ColorOrange,
		})
	}

	switch {
	case c.AirQuality >= alertAirHazardAQI:
		items = append(items, schema.RecommendationItem{
			ID:       "alert-air-hazard",
			Category: schema.CategoryAir,
			Priority: schema.AlertAirHazard,
			Title:    e.tr.T("alert.air.hazard", c.AirQuality),
			Icon:     schema.IconMask,
			Color:    schema.ColorRed,
		})
	case c.AirQuality >= alertAirPoorAQI:
		items = append(items, schema.RecommendationItem{
			ID:       "alert-air-poor",
			Category: schema.CategoryAir,
			Priority: schema.AlertAirPoor,
			Title:    e.tr.T("alert.air.poor", c.AirQuality),
			Icon:     schema.IconMask,
			Color:    schema.ColorOrange,
		})
	}

	if headache.Critical {
		items = append(items, schema.RecommendationItem{
			ID:       "alert-migraine",
			Category: schema.CategoryMigraine,
			Priority: schema.AlertMigraine,
			Title:    e.tr.T("alert.migraine", headache.Magnitude),
			Icon:     schema.IconHead,
			Color:    schema.ColorOrange,
		})
	}

	return RankItems(items)
}
