// Package core implements the comfort-analysis engine: factor scoring, the
// weighted composite score, time-window search, bio-signal risk derivation,
// and recommendation prioritization.
package core

import (
	"github.com/jonboulle/clockwork"
	"github.com/nhollman/breeze/internal/i18n"
)

// Night hours: everything before 6:00 and from 21:00 on counts as night.
const (
	nightStartHour = 21
	nightEndHour   = 6
)

// Default engine options.
const (
	DefaultSkinType       = 3
	DefaultMinWindowHours = 1.5
)

// Options holds the per-user constants the engine is constructed with. They
// are read-only for the duration of a call.
type Options struct {
	SkinType          int     // Fitzpatrick-like class 1-6
	MigraineSensitive bool    // lowers the pressure alert threshold
	MinWindowHours    float64 // minimum duration for the best time window
	Simple            bool    // use the compressed rain/UV ladders
	Locale            string  // display language, falls back to English
}

// Engine derives comfort and health-risk signals from normalized weather
// input. It holds no mutable state; the same input always yields the same
// output for a fixed clock reading.
type Engine struct {
	opts  Options
	clock clockwork.Clock
	tr    *i18n.Translator
}

// NewEngine builds an engine from the given options. Out-of-range options are
// replaced with defaults rather than rejected. A nil clock means real time.
func NewEngine(opts Options, clock clockwork.Clock) *Engine {
	if opts.SkinType < 1 || opts.SkinType > 6 {
		opts.SkinType = DefaultSkinType
	}
	if opts.MinWindowHours <= 0 {
		opts.MinWindowHours = DefaultMinWindowHours
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Engine{
		opts:  opts,
		clock: clock,
		tr:    i18n.New(opts.Locale),
	}
}

// IsNight reports whether the given wall-clock hour falls in night hours.
func IsNight(hour int) bool {
	return hour < nightEndHour || hour >= nightStartHour
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampScore(v float64) float64 {
	return clamp(v, 0, 100)
}
