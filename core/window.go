package core

import (
	"math"

	"github.com/nhollman/breeze/schema"
)

// Window search constraints.
const (
	windowFloor    = 25 // a window is disqualified if any hour scores below this
	minWindowSlots = 3  // never search windows shorter than this
	slotsPerHour   = 1  // hourly input
)

// FindBestWindow scans an hourly score series for the contiguous window of at
// least minHours duration with the highest mean score, subject to the floor
// constraint on the worst member hour. Returns nil when no window qualifies
// or fewer than minWindowSlots hours exist. Ties keep the left-most window.
func FindBestWindow(hours []schema.TimelinePoint, minHours float64) *schema.TimeWindow {
	if len(hours) < minWindowSlots {
		return nil
	}

	size := int(math.Ceil(minHours * slotsPerHour))
	if size < minWindowSlots {
		size = minWindowSlots
	}
	if len(hours) < size {
		return nil
	}

	bestStart := -1
	bestMean := 0.0
	for start := 0; start+size <= len(hours); start++ {
		sum := 0
		minScore := hours[start].Score
		for _, h := range hours[start : start+size] {
			sum += h.Score
			if h.Score < minScore {
				minScore = h.Score
			}
		}
		if minScore < windowFloor {
			continue
		}
		mean := float64(sum) / float64(size)
		if bestStart < 0 || mean > bestMean {
			bestStart = start
			bestMean = mean
		}
	}
	if bestStart < 0 {
		return nil
	}

	members := make([]schema.WindowHour, 0, size)
	for _, h := range hours[bestStart : bestStart+size] {
		members = append(members, schema.WindowHour{Index: h.Index, Time: h.Time, Score: h.Score})
	}
	return &schema.TimeWindow{
		StartIndex:   hours[bestStart].Index,
		EndIndex:     hours[bestStart+size-1].Index,
		AverageScore: int(math.Round(bestMean)),
		Hours:        members,
	}
}
