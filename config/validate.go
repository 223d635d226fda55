package config

import (
	"fmt"

	"github.com/safedep/gauge/tui"
)

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	// Validate bar geometry and glyphs
	if cfg.Bar.Width <= 0 {
		return fmt.Errorf("bar.width must be positive")
	}
	if cfg.Bar.Complete == "" {
		return fmt.Errorf("bar.complete must not be empty")
	}
	if cfg.Bar.Incomplete == "" {
		return fmt.Errorf("bar.incomplete must not be empty")
	}

	// Validate colours
	if !tui.IsValidColor(cfg.Bar.CompleteColor) {
		return fmt.Errorf("invalid bar.complete_color: %s", cfg.Bar.CompleteColor)
	}
	if !tui.IsValidColor(cfg.Bar.IncompleteColor) {
		return fmt.Errorf("invalid bar.incomplete_color: %s", cfg.Bar.IncompleteColor)
	}

	// Validate animation preset
	if len(cfg.Bar.Frames) == 0 && cfg.Bar.Animation != "" {
		if _, ok := tui.AnimationFrames(cfg.Bar.Animation); !ok {
			return fmt.Errorf("invalid bar.animation: %s (must be one of %v)", cfg.Bar.Animation, tui.AnimationNames())
		}
	}

	// Validate fuzzy buckets
	for i, b := range cfg.Fuzzy.Buckets {
		if b.Message == "" {
			return fmt.Errorf("fuzzy.buckets[%d]: message must not be empty", i)
		}
		if !tui.IsValidColor(b.Color) {
			return fmt.Errorf("fuzzy.buckets[%d]: invalid color: %s", i, b.Color)
		}
	}

	// Validate color mode
	if !isValidColorMode(cfg.Display.Colors) {
		return fmt.Errorf("invalid display.colors: %s (must be auto, always, or never)", cfg.Display.Colors)
	}

	// Validate interactive mode
	if !isValidInteractiveMode(cfg.Display.Interactive) {
		return fmt.Errorf("invalid display.interactive: %s (must be auto, always, or never)", cfg.Display.Interactive)
	}

	// Validate run pacing
	if cfg.Run.Interval <= 0 {
		return fmt.Errorf("run.interval must be positive")
	}
	if cfg.Run.Step == 0 {
		return fmt.Errorf("run.step must not be zero")
	}

	return nil
}

// isValidColorMode returns true if the given mode is valid.
func isValidColorMode(mode ColorMode) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// isValidInteractiveMode returns true if the given mode is valid.
func isValidInteractiveMode(mode InteractiveMode) bool {
	switch mode {
	case InteractiveAuto, InteractiveAlways, InteractiveNever:
		return true
	default:
		return false
	}
}
