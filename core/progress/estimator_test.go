package progress

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimator_UnknownAtZero(t *testing.T) {
	est := NewEstimator(time.Now())

	got := est.Estimate(0, 100)
	assert.False(t, got.Known)
	assert.Equal(t, UnknownETA, got.String())
}

func TestEstimator_Formula(t *testing.T) {
	start := time.Unix(0, 0)
	est := NewEstimator(start)

	est.Observe(start.Add(2 * time.Second))
	est.Observe(start.Add(6 * time.Second))

	// deltas 2s and 4s: total=6, sumSq=20, sigma=sqrt(|20-36|)=4.
	// current=25 of 100: scale=3.
	got := est.Estimate(25, 100)

	spread := 3 * 4 * math.Sqrt(3)
	assert.True(t, got.Known)
	assert.InDelta(t, 18-spread, got.Lower, 1e-9)
	assert.InDelta(t, 18+spread, got.Upper, 1e-9)
	assert.Equal(t, 6*time.Second, est.Elapsed())
}

func TestEstimator_CompleteIsZero(t *testing.T) {
	start := time.Unix(0, 0)
	est := NewEstimator(start)
	est.Observe(start.Add(3 * time.Second))

	got := est.Estimate(100, 100)
	assert.Equal(t, Estimate{Lower: 0, Upper: 0, Known: true}, got)
	assert.Equal(t, "ETA ~[0s, 0s]", got.String())
}

func TestEstimator_OverflowIsZero(t *testing.T) {
	start := time.Unix(0, 0)
	est := NewEstimator(start)
	est.Observe(start.Add(3 * time.Second))

	got := est.Estimate(150, 100)
	assert.Equal(t, 0.0, got.Lower)
	assert.Equal(t, 0.0, got.Upper)
}

func TestEstimate_String(t *testing.T) {
	tests := []struct {
		est  Estimate
		want string
	}{
		{Estimate{Lower: -4, Upper: 12, Known: true}, "ETA ~[0s, 12s]"},
		{Estimate{Lower: 75, Upper: 182, Known: true}, "ETA ~[1m 15s, 3m 2s]"},
		{Estimate{Lower: 3723, Upper: 3723, Known: true}, "ETA ~[1h 2m 3s, 1h 2m 3s]"},
		{Estimate{Lower: 59.7, Upper: 60, Known: true}, "ETA ~[1m 0s, 1m 0s]"},
		{Estimate{Lower: 999999999999, Upper: 1e12, Known: true}, "ETA ~[277777777h 46m 39s, 277777777h 46m 40s]"},
		{Estimate{Lower: math.NaN(), Upper: math.Inf(1), Known: true}, "ETA ~[0s, inf]"},
		{Estimate{}, UnknownETA},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.est.String())
		})
	}
}

func TestEstimator_BeyondDurationRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	est := NewEstimator(start)
	est.Observe(start.Add(time.Second))

	got := est.Estimate(1, 1e12)
	assert.Equal(t, 999999999999.0, got.Lower)
	assert.Equal(t, "ETA ~[277777777h 46m 39s, 277777777h 46m 39s]", got.String())
}
