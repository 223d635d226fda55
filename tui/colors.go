package tui

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/safedep/gauge/core/progress"
)

// ANSI color codes
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	// Foreground colors
	Black   = "\033[30m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m"

	// Bright foreground colors
	BrightRed     = "\033[91m"
	BrightGreen   = "\033[92m"
	BrightYellow  = "\033[93m"
	BrightBlue    = "\033[94m"
	BrightMagenta = "\033[95m"
	BrightCyan    = "\033[96m"
	BrightWhite   = "\033[97m"
)

// namedColors maps colour tokens accepted in configuration to ANSI sequences.
var namedColors = map[string]string{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"gray":           Gray,
	"grey":           Gray,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
	"bold":           Bold,
	"dim":            Dim,
}

// Colorizer wraps text with ANSI color codes if colors are enabled.
type Colorizer struct {
	enabled  bool
	renderer *lipgloss.Renderer
}

// NewColorizer creates a new Colorizer for standard output.
func NewColorizer(enabled bool) *Colorizer {
	return &Colorizer{enabled: enabled, renderer: lipgloss.DefaultRenderer()}
}

// NewWriterColorizer creates a Colorizer whose lipgloss colours are rendered
// for w rather than for standard output.
func NewWriterColorizer(w io.Writer, enabled bool) *Colorizer {
	r := lipgloss.NewRenderer(w)
	if enabled && r.ColorProfile() == termenv.Ascii {
		// Colours were forced for a writer that is not a terminal.
		r.SetColorProfile(termenv.TrueColor)
	}
	return &Colorizer{enabled: enabled, renderer: r}
}

// Apply applies the given ANSI sequence to the text.
func (c *Colorizer) Apply(color, text string) string {
	if !c.enabled {
		return text
	}
	return color + text + Reset
}

// Colorize applies a colour token. Named colours use plain ANSI sequences;
// anything else (hex "#RRGGBB" or a 256-colour index) goes through lipgloss.
func (c *Colorizer) Colorize(text string, color progress.Color) string {
	if !c.enabled || color == "" || text == "" {
		return text
	}

	token := strings.ToLower(strings.TrimSpace(string(color)))
	if seq, ok := namedColors[token]; ok {
		return c.Apply(seq, text)
	}

	return c.renderer.NewStyle().Foreground(lipgloss.Color(token)).Render(text)
}

// IsNamedColor reports whether color is one of the named ANSI colours.
func IsNamedColor(color string) bool {
	_, ok := namedColors[strings.ToLower(strings.TrimSpace(color))]
	return ok
}

// IsValidColor reports whether color is accepted by Colorize: empty, a named
// colour, "#RGB", "#RRGGBB" or an ANSI 256 index.
func IsValidColor(color string) bool {
	token := strings.ToLower(strings.TrimSpace(color))
	if token == "" || IsNamedColor(token) {
		return true
	}

	if hex, ok := strings.CutPrefix(token, "#"); ok {
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}

	n, err := strconv.Atoi(token)
	return err == nil && n >= 0 && n <= 255
}

// Dim formats secondary/dim text.
func (c *Colorizer) Dim(text string) string {
	return c.Apply(Gray, text)
}

// Success formats success text.
func (c *Colorizer) Success(text string) string {
	return c.Apply(Green, text)
}

// Error formats error text.
func (c *Colorizer) Error(text string) string {
	return c.Apply(Red, text)
}
