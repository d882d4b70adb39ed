package core

import (
	"testing"
	"time"

	"github.com/nhollman/breeze/schema"
	"github.com/stretchr/testify/assert"
)

// makeSeries builds an hourly timeline from raw scores starting at base.
func makeSeries(base time.Time, scores ...int) []schema.TimelinePoint {
	points := make([]schema.TimelinePoint, len(scores))
	for i, s := range scores {
		points[i] = schema.TimelinePoint{
			Index: i,
			Time:  base.Add(time.Duration(i) * time.Hour),
			Score: s,
			Label: schema.LabelForScore(s),
		}
	}
	return points
}

// TestFindBestWindow covers the core window search behavior.
func TestFindBestWindow(t *testing.T) {
	base := time.Date(2026, 7, 14, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		scores        []int
		minHours      float64
		expectNil     bool
		expectedStart int
		expectedEnd   int
		expectedAvg   int
	}{
		{
			name:      "too few hours",
			scores:    []int{90, 90},
			minHours:  1,
			expectNil: true,
		},
		{
			name:          "picks highest mean",
			scores:        []int{30, 40, 50, 60, 50, 40},
			minHours:      2,
			expectedStart: 2,
			expectedEnd:   4,
			expectedAvg:   53,
		},
		{
			name:          "short duration still searches three hours",
			scores:        []int{80, 90, 100, 70},
			minHours:      0.5,
			expectedStart: 0,
			expectedEnd:   2,
			expectedAvg:   90,
		},
		{
			name:          "fractional duration rounds up",
			scores:        []int{50, 60, 70, 80, 90, 40},
			minHours:      4.5,
			expectedStart: 0,
			expectedEnd:   4,
			expectedAvg:   70,
		},
		{
			name:          "floor disqualifies windows with a bad hour",
			scores:        []int{100, 100, 20, 100, 100, 100},
			minHours:      3,
			expectedStart: 3,
			expectedEnd:   5,
			expectedAvg:   100,
		},
		{
			name:      "floor disqualifies everything",
			scores:    []int{24, 24, 24, 24},
			minHours:  3,
			expectNil: true,
		},
		{
			name:          "tie keeps the left-most window",
			scores:        []int{50, 50, 50, 50, 50},
			minHours:      3,
			expectedStart: 0,
			expectedEnd:   2,
			expectedAvg:   50,
		},
		{
			name:      "duration longer than series",
			scores:    []int{90, 90, 90},
			minHours:  5,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := FindBestWindow(makeSeries(base, tt.scores...), tt.minHours)
			if tt.expectNil {
				assert.Nil(t, window)
				return
			}
			assert.NotNil(t, window)
			assert.Equal(t, tt.expectedStart, window.StartIndex)
			assert.Equal(t, tt.expectedEnd, window.EndIndex)
			assert.Equal(t, tt.expectedAvg, window.AverageScore)
			assert.Len(t, window.Hours, tt.expectedEnd-tt.expectedStart+1)
		})
	}
}

// TestFindBestWindowMembers verifies the member hours carry their source
// index, time and score.
func TestFindBestWindowMembers(t *testing.T) {
	base := time.Date(2026, 7, 14, 8, 0, 0, 0, time.UTC)
	series := makeSeries(base, 30, 80, 90, 85, 40)

	window := FindBestWindow(series, 3)
	assert.NotNil(t, window)
	assert.Equal(t, 1, window.StartIndex)
	assert.Equal(t, 3, window.EndIndex)

	for i, h := range window.Hours {
		src := series[window.StartIndex+i]
		assert.Equal(t, src.Index, h.Index)
		assert.True(t, src.Time.Equal(h.Time))
		assert.Equal(t, src.Score, h.Score)
	}
}
