package progress

import (
	"fmt"
	"math"
	"time"

	"github.com/safedep/gauge/core/template"
)

// Bar renders a progress line from a compiled template.
type Bar struct {
	tpl *template.Template

	current float64
	max     float64
	width   int

	complete        string
	incomplete      string
	marker          string
	completeColor   Color
	incompleteColor Color

	currentMessage  string
	finishMessage   string
	overflowMessage string

	animation *Animation
	buckets   []Bucket
	estimator *Estimator

	output Output
	clock  func() time.Time
}

// New builds a Bar counting towards max. The format string is compiled
// immediately; nothing is written until the first mutation or Render.
func New(max float64, opts ...Option) (*Bar, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	if s.err != nil {
		return nil, s.err
	}
	if !(max > 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("invalid max value %v: %w", max, ErrInvalidMax)
	}
	if s.width <= 0 {
		return nil, fmt.Errorf("invalid width %d: %w", s.width, ErrInvalidWidth)
	}

	b := &Bar{
		tpl:             template.Compile(s.format, s.allowed...),
		current:         clamp(s.current),
		max:             max,
		width:           s.width,
		complete:        s.complete,
		incomplete:      s.incomplete,
		marker:          s.marker,
		completeColor:   s.completeColor,
		incompleteColor: s.incompleteColor,
		currentMessage:  s.currentMessage,
		finishMessage:   s.finishMessage,
		overflowMessage: s.overflowMessage,
		animation:       NewAnimation(s.frames...),
		buckets:         s.buckets,
		estimator:       NewEstimator(s.clock()),
		output:          s.output,
		clock:           s.clock,
	}

	return b, nil
}

// Increment adds amount to the current value and re-renders. A negative
// result is clamped to zero.
func (b *Bar) Increment(amount float64) error {
	b.current = clamp(b.current + amount)
	return b.Render()
}

// SetCurrent sets the current value and re-renders.
func (b *Bar) SetCurrent(v float64) error {
	b.current = clamp(v)
	return b.Render()
}

// SetPercentDone sets the current value from a fraction of max (1.0 is
// complete) and re-renders. Fractions above 1.0 overflow.
func (b *Bar) SetPercentDone(fraction float64) error {
	b.current = clamp(fraction * b.max)
	return b.Render()
}

// SetCompleteChar sets the completed glyph to the first character of g.
func (b *Bar) SetCompleteChar(g string) error {
	return b.setGlyph(&b.complete, g, "complete")
}

// SetIncompleteChar sets the remaining glyph to the first character of g.
func (b *Bar) SetIncompleteChar(g string) error {
	return b.setGlyph(&b.incomplete, g, "incomplete")
}

// SetCurrentChar sets the current-position marker to the first character of g.
func (b *Bar) SetCurrentChar(g string) error {
	return b.setGlyph(&b.marker, g, "current")
}

func (b *Bar) setGlyph(dst *string, g, name string) error {
	c, ok := firstChar(g)
	if !ok {
		return fmt.Errorf("%s glyph: %w", name, ErrInvalidGlyph)
	}
	*dst = c
	return b.Render()
}

// SetCompleteColor sets the colour of the completed part of the bar.
func (b *Bar) SetCompleteColor(c Color) error {
	b.completeColor = c
	return b.Render()
}

// SetIncompleteColor sets the colour of the remaining part of the bar.
func (b *Bar) SetIncompleteColor(c Color) error {
	b.incompleteColor = c
	return b.Render()
}

// Render evaluates the template and writes the line to the output. It can be
// used to retry after an output failure.
func (b *Bar) Render() error {
	return b.output.WriteLine(b.String())
}

// String evaluates the template without writing it. Like Render it advances
// the animation and records a time observation.
func (b *Bar) String() string {
	b.estimator.Observe(b.clock())
	return b.tpl.Render(template.ResolverFunc(b.resolve))
}

// Current returns the current value.
func (b *Bar) Current() float64 {
	return b.current
}

// Max returns the maximum value.
func (b *Bar) Max() float64 {
	return b.max
}

// Width returns the bar width in glyphs.
func (b *Bar) Width() int {
	return b.width
}

// Progress returns current/max. Values above 1 indicate overflow.
func (b *Bar) Progress() float64 {
	return b.current / b.max
}

// Done reports whether the current value has reached max.
func (b *Bar) Done() bool {
	return b.current >= b.max
}

// Template returns the compiled template.
func (b *Bar) Template() *template.Template {
	return b.tpl
}

// Elapsed returns the time between construction and the last render.
func (b *Bar) Elapsed() time.Duration {
	return b.estimator.Elapsed()
}

func clamp(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
