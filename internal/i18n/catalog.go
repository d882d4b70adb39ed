package i18n

// catalogs maps locale -> message key -> format string. The English catalog
// is authoritative; other locales may omit keys and inherit the English text.
var catalogs = map[string]map[string]string{
	"en": {
		// Comfort labels.
		"label.excellent": "Excellent",
		"label.good":      "Good",
		"label.moderate":  "Moderate",
		"label.poor":      "Poor",
		"label.critical":  "Critical",

		// Headache / pressure advisories.
		"headache.low":      "Pressure is steady (%+.1f hPa). Low headache risk.",
		"headache.moderate": "Pressure shifting %+.1f hPa over 3h. Sensitive people may notice it.",
		"headache.elevated": "Notable pressure swing of %+.1f hPa. Elevated headache risk.",
		"headache.high":     "Rapid pressure swing of %+.1f hPa. High migraine risk.",

		// UV exposure timers.
		"uv.sunburn":     "Unprotected skin burns in about %d minutes.",
		"uv.vitamind":    "About %d minutes of sun covers your vitamin D dose.",
		"uv.vitamind.na": "UV is too low for vitamin D synthesis right now.",

		// Quick checks.
		"check.alert.title":     "Severe weather alert active",
		"check.alert.detail":    "Follow official guidance before heading out.",
		"check.storm.title":     "Storm-force wind",
		"check.storm.detail":    "Wind at %.0f km/h. Stay indoors if possible.",
		"check.frost.title":     "Severe frost",
		"check.frost.detail":    "Feels like %.0f °C. Limit time outside.",
		"check.cold.title":      "Freezing conditions",
		"check.cold.detail":     "Feels like %.0f °C. Dress in layers.",
		"check.rain.high":       "Take an umbrella",
		"check.rain.high.d":     "Rain very likely (%.0f%%).",
		"check.rain.likely":     "Pack an umbrella",
		"check.rain.likely.d":   "Rain possible (%.0f%%).",
		"check.rain.unlikely":   "No umbrella needed",
		"check.rain.unlikely.d": "Rain unlikely (%.0f%%).",
		"check.uv.extreme":      "Strong sun protection needed",
		"check.uv.extreme.d":    "UV index %.0f. Use SPF 50+, seek shade at midday.",
		"check.uv.high":         "Sun protection recommended",
		"check.uv.high.d":       "UV index %.0f. Use SPF 30+.",
		"check.uv.moderate":     "Some sun protection helps",
		"check.uv.moderate.d":   "UV index %.0f. Sunscreen for longer stays outside.",
		"check.uv.low":          "No sun protection needed",
		"check.uv.low.d":        "UV index %.0f.",
		"check.uv.night":        "No sun exposure overnight",
		"check.sleep.title":     "Sleep outlook",
		"check.sleep.good":      "Bedroom climate looks good for sleep (score %d).",
		"check.sleep.fair":      "Slightly off ideal sleeping climate (score %d). Air the room before bed.",
		"check.sleep.poor":      "Poor sleeping climate (score %d). Cool and ventilate the bedroom.",
		"check.jacket.cold":     "Warm jacket weather",
		"check.jacket.cold.d":   "Feels like %.0f °C.",
		"check.jacket.cool":     "Take a jacket",
		"check.jacket.cool.d":   "Feels like %.0f °C.",
		"check.jacket.light":    "Light layers are fine",
		"check.jacket.light.d":  "Feels like %.0f °C.",
		"check.jacket.rain":     "Take a rain jacket",
		"check.wind.title":      "Wind advisory",
		"check.wind.detail":     "Gusty wind around %.0f km/h. Secure loose items.",
		"check.air.hazard":      "Hazardous air quality",
		"check.air.hazard.d":    "AQI %.0f. Avoid outdoor exercise.",
		"check.air.poor":        "Poor air quality",
		"check.air.poor.d":      "AQI %.0f. Sensitive groups should limit exertion.",

		// Safety alerts.
		"alert.storm":        "Storm warning: wind %.0f km/h",
		"alert.wind":         "Strong wind: %.0f km/h",
		"alert.heat.extreme": "Extreme heat: feels like %.0f °C",
		"alert.heat":         "Heat stress: feels like %.0f °C",
		"alert.cold.extreme": "Extreme cold: feels like %.0f °C",
		"alert.frost":        "Severe frost: feels like %.0f °C",
		"alert.uv.extreme":   "Extreme UV: index %.0f",
		"alert.uv.high":      "Very high UV: index %.0f",
		"alert.air.hazard":   "Hazardous air: AQI %.0f",
		"alert.air.poor":     "Unhealthy air: AQI %.0f",
		"alert.migraine":     "Migraine watch: pressure swing %+.1f hPa",

		// Time window.
		"window.best": "Best time outside: %s – %s (avg %d)",
		"window.none": "No comfortable window in the next 24 hours",
	},
	"de": {
		"label.excellent": "Ausgezeichnet",
		"label.good":      "Gut",
		"label.moderate":  "Mäßig",
		"label.poor":      "Schlecht",
		"label.critical":  "Kritisch",

		"headache.low":      "Luftdruck stabil (%+.1f hPa). Geringes Kopfschmerzrisiko.",
		"headache.moderate": "Luftdruck ändert sich um %+.1f hPa in 3h. Empfindliche Personen spüren das.",
		"headache.elevated": "Deutliche Druckschwankung von %+.1f hPa. Erhöhtes Kopfschmerzrisiko.",
		"headache.high":     "Starke Druckschwankung von %+.1f hPa. Hohes Migränerisiko.",

		"uv.sunburn":     "Ungeschützte Haut verbrennt in etwa %d Minuten.",
		"uv.vitamind":    "Etwa %d Minuten Sonne decken die Vitamin-D-Dosis.",
		"uv.vitamind.na": "UV ist derzeit zu niedrig für die Vitamin-D-Synthese.",

		"check.alert.title":     "Amtliche Unwetterwarnung aktiv",
		"check.alert.detail":    "Offizielle Hinweise beachten, bevor Sie rausgehen.",
		"check.storm.title":     "Sturmböen",
		"check.storm.detail":    "Wind mit %.0f km/h. Möglichst drinnen bleiben.",
		"check.frost.title":     "Strenger Frost",
		"check.frost.detail":    "Gefühlt %.0f °C. Aufenthalt draußen begrenzen.",
		"check.cold.title":      "Frostige Bedingungen",
		"check.cold.detail":     "Gefühlt %.0f °C. Im Zwiebelprinzip anziehen.",
		"check.rain.high":       "Regenschirm mitnehmen",
		"check.rain.high.d":     "Regen sehr wahrscheinlich (%.0f%%).",
		"check.rain.likely":     "Regenschirm einpacken",
		"check.rain.likely.d":   "Regen möglich (%.0f%%).",
		"check.rain.unlikely":   "Kein Schirm nötig",
		"check.rain.unlikely.d": "Regen unwahrscheinlich (%.0f%%).",
		"check.uv.extreme":      "Starker Sonnenschutz nötig",
		"check.uv.extreme.d":    "UV-Index %.0f. LSF 50+, mittags Schatten suchen.",
		"check.uv.high":         "Sonnenschutz empfohlen",
		"check.uv.high.d":       "UV-Index %.0f. LSF 30+ verwenden.",
		"check.uv.moderate":     "Etwas Sonnenschutz hilft",
		"check.uv.moderate.d":   "UV-Index %.0f. Sonnencreme bei längerem Aufenthalt.",
		"check.uv.low":          "Kein Sonnenschutz nötig",
		"check.uv.low.d":        "UV-Index %.0f.",
		"check.uv.night":        "Nachts keine Sonnenbelastung",
		"check.sleep.title":     "Schlafklima",
		"check.sleep.good":      "Gutes Schlafklima (Wert %d).",
		"check.sleep.fair":      "Leicht vom Ideal entfernt (Wert %d). Vor dem Schlafen lüften.",
		"check.sleep.poor":      "Schlechtes Schlafklima (Wert %d). Schlafzimmer kühlen und lüften.",
		"check.jacket.cold":     "Warme Jacke nötig",
		"check.jacket.cold.d":   "Gefühlt %.0f °C.",
		"check.jacket.cool":     "Jacke mitnehmen",
		"check.jacket.cool.d":   "Gefühlt %.0f °C.",
		"check.jacket.light":    "Leichte Kleidung reicht",
		"check.jacket.light.d":  "Gefühlt %.0f °C.",
		"check.jacket.rain":     "Regenjacke mitnehmen",
		"check.wind.title":      "Windwarnung",
		"check.wind.detail":     "Böiger Wind um %.0f km/h. Lose Gegenstände sichern.",
		"check.air.hazard":      "Gesundheitsschädliche Luft",
		"check.air.hazard.d":    "AQI %.0f. Sport im Freien vermeiden.",
		"check.air.poor":        "Schlechte Luftqualität",
		"check.air.poor.d":      "AQI %.0f. Empfindliche Gruppen sollten sich schonen.",

		"alert.storm":        "Sturmwarnung: Wind %.0f km/h",
		"alert.wind":         "Starker Wind: %.0f km/h",
		"alert.heat.extreme": "Extreme Hitze: gefühlt %.0f °C",
		"alert.heat":         "Hitzebelastung: gefühlt %.0f °C",
		"alert.cold.extreme": "Extreme Kälte: gefühlt %.0f °C",
		"alert.frost":        "Strenger Frost: gefühlt %.0f °C",
		"alert.uv.extreme":   "Extremer UV-Index: %.0f",
		"alert.uv.high":      "Sehr hoher UV-Index: %.0f",
		"alert.air.hazard":   "Gefährliche Luft: AQI %.0f",
		"alert.air.poor":     "Ungesunde Luft: AQI %.0f",
		"alert.migraine":     "Migränewarnung: Druckschwankung %+.1f hPa",

		"window.best": "Beste Zeit draußen: %s – %s (Ø %d)",
		"window.none": "Kein angenehmes Zeitfenster in den nächsten 24 Stunden",
	},
}
