package progress

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/safedep/gauge/core/template"
)

const (
	// DefaultWidth is the bar width used when none is configured.
	DefaultWidth = 10
	// DefaultFormat is the format string used when none is configured.
	DefaultFormat = "$(percent): [$(bar)] $(status)"
	// DefaultCompleteGlyph fills the completed part of the bar.
	DefaultCompleteGlyph = "."
	// DefaultIncompleteGlyph fills the remaining part of the bar.
	DefaultIncompleteGlyph = " "
	// DefaultFinishMessage is the status shown at exactly 100%.
	DefaultFinishMessage = "Done!"
	// DefaultOverflowMessage is the status shown above 100%.
	DefaultOverflowMessage = "Overflow!"
)

// settings collects option values before a Bar is built.
type settings struct {
	current    float64
	width      int
	format     string
	allowed    []template.Operation
	complete   string
	incomplete string
	marker     string

	completeColor   Color
	incompleteColor Color

	currentMessage  string
	finishMessage   string
	overflowMessage string

	frames  []string
	buckets []Bucket

	output Output
	clock  func() time.Time

	err error
}

func defaultSettings() settings {
	return settings{
		width:           DefaultWidth,
		format:          DefaultFormat,
		complete:        DefaultCompleteGlyph,
		incomplete:      DefaultIncompleteGlyph,
		finishMessage:   DefaultFinishMessage,
		overflowMessage: DefaultOverflowMessage,
		output:          Discard,
		clock:           time.Now,
	}
}

func (s *settings) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Option configures a Bar at construction time.
type Option func(*settings)

// WithCurrent sets the initial value. Negative values are clamped to zero.
func WithCurrent(v float64) Option {
	return func(s *settings) {
		s.current = v
	}
}

// WithWidth sets the bar width in glyphs.
func WithWidth(n int) Option {
	return func(s *settings) {
		s.width = n
	}
}

// WithFormat sets the format string compiled into the bar's template.
func WithFormat(format string) Option {
	return func(s *settings) {
		s.format = format
	}
}

// WithCompleteGlyph sets the glyph for completed progress. Only the first
// character is used.
func WithCompleteGlyph(g string) Option {
	return func(s *settings) {
		s.complete = s.glyph(g, "complete")
	}
}

// WithIncompleteGlyph sets the glyph for remaining progress. Only the first
// character is used.
func WithIncompleteGlyph(g string) Option {
	return func(s *settings) {
		s.incomplete = s.glyph(g, "incomplete")
	}
}

// WithCurrentGlyph sets a marker drawn at the current position. Only the
// first character is used.
func WithCurrentGlyph(g string) Option {
	return func(s *settings) {
		s.marker = s.glyph(g, "current")
	}
}

func (s *settings) glyph(g, name string) string {
	r, ok := firstChar(g)
	if !ok {
		s.setErr(fmt.Errorf("%s glyph: %w", name, ErrInvalidGlyph))
	}
	return r
}

// WithCompleteColor colours the completed part of the bar.
func WithCompleteColor(c Color) Option {
	return func(s *settings) {
		s.completeColor = c
	}
}

// WithIncompleteColor colours the remaining part of the bar.
func WithIncompleteColor(c Color) Option {
	return func(s *settings) {
		s.incompleteColor = c
	}
}

// WithCurrentMessage sets the status shown below 100%.
func WithCurrentMessage(msg string) Option {
	return func(s *settings) {
		s.currentMessage = msg
	}
}

// WithFinishMessage sets the status shown at exactly 100%.
func WithFinishMessage(msg string) Option {
	return func(s *settings) {
		s.finishMessage = msg
	}
}

// WithOverflowMessage sets the status shown above 100%.
func WithOverflowMessage(msg string) Option {
	return func(s *settings) {
		s.overflowMessage = msg
	}
}

// WithAnimation plays frames in the status position below 100%. It takes
// precedence over the current message.
func WithAnimation(frames ...string) Option {
	return func(s *settings) {
		s.frames = frames
	}
}

// WithBuckets switches the status to coarse buckets. See NewFuzzy.
func WithBuckets(buckets ...Bucket) Option {
	return func(s *settings) {
		s.buckets = buckets
	}
}

// WithOutput sets where rendered lines are sent.
func WithOutput(o Output) Option {
	return func(s *settings) {
		if o != nil {
			s.output = o
		}
	}
}

// WithClock replaces the wall clock used by the time estimator.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.clock = now
		}
	}
}

// withOperations restricts the template to the given operations.
func withOperations(ops ...template.Operation) Option {
	return func(s *settings) {
		s.allowed = ops
	}
}

// firstChar returns the first character of g as a string.
func firstChar(g string) (string, bool) {
	if g == "" {
		return "", false
	}
	_, size := utf8.DecodeRuneInString(g)
	return g[:size], true
}
