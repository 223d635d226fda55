package progress

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/safedep/gauge/core/template"
)

func (b *Bar) resolve(op template.Operation) string {
	switch op {
	case template.OpBar:
		return b.renderBar()
	case template.OpPercent:
		return b.renderPercent()
	case template.OpStatus:
		return b.renderStatus()
	case template.OpTime:
		return b.renderTime()
	case template.OpCurrent:
		return b.renderCurrent()
	default:
		return ""
	}
}

// filled returns the number of completed glyphs, clamped to [0, width].
func (b *Bar) filled() int {
	n := math.Floor(b.Progress() * float64(b.width))
	switch {
	case n < 0 || math.IsNaN(n):
		return 0
	case n > float64(b.width):
		return b.width
	default:
		return int(n)
	}
}

func (b *Bar) renderBar() string {
	filled := b.filled()

	done := strings.Repeat(b.complete, filled)
	var rest string
	if b.marker != "" && filled < b.width {
		done += b.marker
		rest = strings.Repeat(b.incomplete, b.width-filled-1)
	} else {
		rest = strings.Repeat(b.incomplete, b.width-filled)
	}

	if b.completeColor != "" && done != "" {
		done = b.output.Colorize(done, b.completeColor)
	}
	if b.incompleteColor != "" && rest != "" {
		rest = b.output.Colorize(rest, b.incompleteColor)
	}

	return done + rest
}

func (b *Bar) renderPercent() string {
	return fmt.Sprintf("%6.2f%%", b.Progress()*100)
}

func (b *Bar) renderStatus() string {
	if len(b.buckets) > 0 {
		return b.renderBucket()
	}

	switch {
	case b.current < b.max:
		if b.animation != nil {
			return b.animation.Next()
		}
		return b.currentMessage
	case b.current == b.max:
		return b.finishMessage
	default:
		return b.overflowMessage
	}
}

func (b *Bar) renderTime() string {
	return b.estimator.Estimate(b.current, b.max).String()
}

func (b *Bar) renderCurrent() string {
	return strconv.FormatFloat(b.current, 'f', -1, 64)
}
