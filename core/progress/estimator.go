package progress

import (
	"fmt"
	"math"
	"time"
)

// UnknownETA is rendered by $(time) while no progress has been made.
const UnknownETA = "ETA ~[?]"

// Estimator keeps running statistics of the wall-clock time between render
// calls.
//
// The interval it produces treats the running sum and sum of squares of those
// deltas as if they described a sample distribution. That is a heuristic, not
// a statistically sound confidence interval, and the rendered form is marked
// approximate with "~".
type Estimator struct {
	begin               time.Time
	prev                time.Time
	totalElapsed        float64
	totalElapsedSquared float64
}

// NewEstimator returns an estimator whose clock starts at now.
func NewEstimator(now time.Time) *Estimator {
	return &Estimator{begin: now, prev: now}
}

// Observe records the time elapsed since the previous observation.
func (e *Estimator) Observe(now time.Time) {
	delta := now.Sub(e.prev).Seconds()
	e.prev = now
	e.totalElapsed += delta
	e.totalElapsedSquared += delta * delta
}

// Elapsed returns the wall-clock time since the estimator was created, as of
// the last observation.
func (e *Estimator) Elapsed() time.Duration {
	return e.prev.Sub(e.begin)
}

// Estimate is an approximate remaining-time interval in seconds.
type Estimate struct {
	Lower float64
	Upper float64
	Known bool
}

// Estimate computes the remaining-time interval for current out of max.
// A zero current value yields an unknown estimate. Overflow is treated as
// nothing remaining.
func (e *Estimator) Estimate(current, max float64) Estimate {
	if current == 0 {
		return Estimate{}
	}

	sigma := math.Sqrt(math.Abs(e.totalElapsedSquared - e.totalElapsed*e.totalElapsed))
	scale := (max - current) / current
	if scale < 0 {
		scale = 0
	}

	center := e.totalElapsed * scale
	spread := 3 * sigma * math.Sqrt(scale)

	return Estimate{
		Lower: center - spread,
		Upper: center + spread,
		Known: true,
	}
}

// String renders the estimate as "ETA ~[lower, upper]".
func (est Estimate) String() string {
	if !est.Known {
		return UnknownETA
	}
	return fmt.Sprintf("ETA ~[%s, %s]", formatSeconds(est.Lower), formatSeconds(est.Upper))
}

// formatSeconds formats a number of seconds compactly. Negative values
// display as zero. The arithmetic stays in float64 so that estimates far
// beyond the range of time.Duration still render.
func formatSeconds(s float64) string {
	if s < 0 || math.IsNaN(s) {
		s = 0
	}
	if math.IsInf(s, 1) {
		return "inf"
	}

	total := math.Round(s)
	if total < 60 {
		return fmt.Sprintf("%.0fs", total)
	}

	h := math.Floor(total / 3600)
	m := math.Floor(math.Mod(total, 3600) / 60)
	sec := math.Mod(total, 60)
	if h == 0 {
		return fmt.Sprintf("%.0fm %.0fs", m, sec)
	}
	return fmt.Sprintf("%.0fh %.0fm %.0fs", h, m, sec)
}
