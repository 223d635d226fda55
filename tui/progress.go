package tui

import (
	"io"

	"github.com/safedep/gauge/core/progress"
)

const (
	clearLine       = "\033[2K"
	carriageReturn  = "\r"
	clearLineReturn = clearLine + carriageReturn
)

// LineWriterOptions configures a LineWriter.
type LineWriterOptions struct {
	// Interactive repaints a single line in place. When nil it is detected
	// from the writer.
	Interactive *bool
	// UseColors enables colour escape sequences.
	UseColors bool
	// MaxWidth truncates interactive lines so they never wrap. Zero
	// disables truncation.
	MaxWidth int
}

// LineWriter writes progress lines to a terminal. In interactive mode each
// line replaces the previous one; otherwise every line is written on its own.
type LineWriter struct {
	w           io.Writer
	color       *Colorizer
	interactive bool
	maxWidth    int
	dirty       bool
}

var _ progress.Output = (*LineWriter)(nil)

// NewLineWriter creates a new LineWriter.
func NewLineWriter(w io.Writer, opts LineWriterOptions) *LineWriter {
	interactive := IsWriterTerminal(w)
	if opts.Interactive != nil {
		interactive = *opts.Interactive
	}

	return &LineWriter{
		w:           w,
		color:       NewWriterColorizer(w, opts.UseColors),
		interactive: interactive,
		maxWidth:    opts.MaxWidth,
	}
}

// WriteLine clears the line and writes text.
func (p *LineWriter) WriteLine(text string) error {
	if !p.interactive {
		_, err := io.WriteString(p.w, text+"\n")
		return err
	}

	if p.maxWidth > 0 {
		text = p.color.renderer.NewStyle().MaxWidth(p.maxWidth).Render(text)
	}

	if _, err := io.WriteString(p.w, clearLineReturn+text); err != nil {
		return err
	}
	p.dirty = true
	return nil
}

// Colorize implements progress.Output.
func (p *LineWriter) Colorize(text string, color progress.Color) string {
	return p.color.Colorize(text, color)
}

// Finish ends the progress line so later output starts on a fresh line.
func (p *LineWriter) Finish() error {
	if !p.interactive || !p.dirty {
		return nil
	}
	p.dirty = false
	_, err := io.WriteString(p.w, "\n")
	return err
}

// Clear clears the progress line.
func (p *LineWriter) Clear() error {
	if !p.interactive {
		return nil
	}
	p.dirty = false
	_, err := io.WriteString(p.w, clearLineReturn)
	return err
}

// Interactive reports whether lines are repainted in place.
func (p *LineWriter) Interactive() bool {
	return p.interactive
}

// LineBuffer is an Output that keeps the most recent line in memory.
type LineBuffer struct {
	color *Colorizer
	last  string
	count int
}

var _ progress.Output = (*LineBuffer)(nil)

// NewLineBuffer creates a LineBuffer.
func NewLineBuffer(useColors bool) *LineBuffer {
	return &LineBuffer{color: NewColorizer(useColors)}
}

// WriteLine stores text as the latest line.
func (b *LineBuffer) WriteLine(text string) error {
	b.last = text
	b.count++
	return nil
}

// Colorize implements progress.Output.
func (b *LineBuffer) Colorize(text string, color progress.Color) string {
	return b.color.Colorize(text, color)
}

// Last returns the most recent line.
func (b *LineBuffer) Last() string {
	return b.last
}

// Count returns how many lines have been written.
func (b *LineBuffer) Count() int {
	return b.count
}
