package gauge

import (
	"time"

	"github.com/safedep/gauge/core/progress"
	"github.com/safedep/gauge/tui"
)

// Options configures the gauge view. Bar must write to Buffer.
type Options struct {
	Bar      *progress.Bar
	Buffer   *tui.LineBuffer
	Title    string
	Step     float64
	Interval time.Duration
}

func (o Options) step() float64 {
	if o.Step != 0 {
		return o.Step
	}
	return 1
}

func (o Options) interval() time.Duration {
	if o.Interval > 0 {
		return o.Interval
	}
	return 100 * time.Millisecond
}
