package core

import (
	"math"

	"github.com/nhollman/breeze/schema"
)

// criticalCap is the hard ceiling applied when any critical threshold is
// breached, regardless of the weighted sum.
const criticalCap = 30

// Composite combines the weighted factor scores into one outdoor-comfort
// score. Precipitation is checked before wind when attributing the cap.
func Composite(c schema.Conditions) schema.CompositeScore {
	factors := ScoreFactors(c)

	// --- 1. Critical breach detection (first match wins) ---
	capped := false
	cappedBy := schema.FactorNone
	for _, key := range []schema.FactorKey{schema.FactorPrecip, schema.FactorWind} {
		if factors[key].Critical {
			capped = true
			cappedBy = key
			break
		}
	}

	// --- 2. Weighted sum ---
	var weighted float64
	for _, r := range factors {
		weighted += r.Score * r.Weight
	}
	score := int(math.Round(clampScore(weighted)))

	// --- 3. Hard cap ---
	if capped && score > criticalCap {
		score = criticalCap
	}

	label := schema.LabelForScore(score)
	return schema.CompositeScore{
		Score:    score,
		Factors:  factors,
		Capped:   capped,
		CappedBy: cappedBy,
		Label:    label,
		Color:    schema.ColorForLabel(label),
	}
}
