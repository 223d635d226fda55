package progress

import "errors"

var (
	// ErrInvalidMax is returned when the maximum value is not a positive finite number.
	ErrInvalidMax = errors.New("max value must be a positive finite number")

	// ErrInvalidWidth is returned when the bar width is not positive.
	ErrInvalidWidth = errors.New("bar width must be positive")

	// ErrInvalidGlyph is returned when an empty string is given as a glyph.
	ErrInvalidGlyph = errors.New("glyph must contain at least one character")
)
