package progress

// Color is an opaque colour token passed through to the Output. The empty
// Color means "no colour".
type Color string

// Output receives rendered lines. Implementations decide how the current
// terminal line is replaced.
type Output interface {
	// WriteLine replaces the current line with text.
	WriteLine(text string) error

	// Colorize wraps text in the given colour. Returning text unchanged is a
	// valid implementation.
	Colorize(text string, color Color) string
}

type discardOutput struct{}

func (discardOutput) WriteLine(string) error { return nil }

func (discardOutput) Colorize(text string, _ Color) string { return text }

// Discard is an Output that drops every line and never colours.
var Discard Output = discardOutput{}
