// Package config provides configuration management using Viper.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/safedep/gauge/core/progress"
	"github.com/safedep/gauge/tui"
	"github.com/spf13/viper"
)

// ColorMode represents the color output mode.
type ColorMode string

const (
	// ColorAuto automatically detects terminal support.
	ColorAuto ColorMode = "auto"
	// ColorAlways always uses colors.
	ColorAlways ColorMode = "always"
	// ColorNever never uses colors.
	ColorNever ColorMode = "never"
)

// InteractiveMode controls whether the bar repaints a single line.
type InteractiveMode string

const (
	// InteractiveAuto repaints in place when the output is a terminal.
	InteractiveAuto InteractiveMode = "auto"
	// InteractiveAlways always repaints in place.
	InteractiveAlways InteractiveMode = "always"
	// InteractiveNever writes every update on its own line.
	InteractiveNever InteractiveMode = "never"
)

// Config holds all configuration values.
type Config struct {
	Bar     BarConfig     `mapstructure:"bar"`
	Fuzzy   FuzzyConfig   `mapstructure:"fuzzy"`
	Display DisplayConfig `mapstructure:"display"`
	Run     RunConfig     `mapstructure:"run"`
}

// BarConfig holds the appearance of a standard bar.
type BarConfig struct {
	Width           int      `mapstructure:"width"`
	Format          string   `mapstructure:"format"`
	Complete        string   `mapstructure:"complete"`
	Incomplete      string   `mapstructure:"incomplete"`
	Current         string   `mapstructure:"current"`
	CompleteColor   string   `mapstructure:"complete_color"`
	IncompleteColor string   `mapstructure:"incomplete_color"`
	CurrentMessage  string   `mapstructure:"current_message"`
	FinishMessage   string   `mapstructure:"finish_message"`
	OverflowMessage string   `mapstructure:"overflow_message"`
	Animation       string   `mapstructure:"animation"`
	Frames          []string `mapstructure:"frames"`
}

// FuzzyConfig holds the settings of the bucketed status bar.
type FuzzyConfig struct {
	Format  string         `mapstructure:"format"`
	Buckets []BucketConfig `mapstructure:"buckets"`
}

// BucketConfig is one fuzzy status level.
type BucketConfig struct {
	Message string `mapstructure:"message"`
	Color   string `mapstructure:"color"`
}

// DisplayConfig holds display-related settings.
type DisplayConfig struct {
	Colors      ColorMode       `mapstructure:"colors"`
	Interactive InteractiveMode `mapstructure:"interactive"`
}

// RunConfig holds the pacing of simulated runs.
type RunConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Step     float64       `mapstructure:"step"`
}

// Load loads configuration from the given path or default locations.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Set config type
	v.SetConfigType("yaml")

	// Determine config file path
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		paths := ResolvePaths()

		v.SetConfigName("config")
		v.AddConfigPath(paths.ConfigDir)
	}

	// Bind environment variables
	v.SetEnvPrefix("GAUGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	// Validate config
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a Config with all default values.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)

	return &cfg
}

// ShouldUseColors returns true if colors should be used when writing to w.
func (c *Config) ShouldUseColors(w io.Writer) bool {
	switch c.Display.Colors {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return tui.IsWriterTerminal(w)
	}
}

// IsInteractive returns true if bar lines written to w should be repainted
// in place.
func (c *Config) IsInteractive(w io.Writer) bool {
	switch c.Display.Interactive {
	case InteractiveAlways:
		return true
	case InteractiveNever:
		return false
	default:
		return tui.IsWriterTerminal(w)
	}
}

// AnimationFrames returns the frames configured for the status animation.
// Explicit frames win over a named preset.
func (c *Config) AnimationFrames() []string {
	if len(c.Bar.Frames) > 0 {
		return c.Bar.Frames
	}
	if c.Bar.Animation == "" {
		return nil
	}
	frames, _ := tui.AnimationFrames(c.Bar.Animation)
	return frames
}

// BarOptions converts the bar section into progress options.
func (c *Config) BarOptions() []progress.Option {
	opts := []progress.Option{
		progress.WithWidth(c.Bar.Width),
		progress.WithFormat(c.Bar.Format),
		progress.WithCompleteGlyph(c.Bar.Complete),
		progress.WithIncompleteGlyph(c.Bar.Incomplete),
		progress.WithCompleteColor(progress.Color(c.Bar.CompleteColor)),
		progress.WithIncompleteColor(progress.Color(c.Bar.IncompleteColor)),
		progress.WithCurrentMessage(c.Bar.CurrentMessage),
		progress.WithFinishMessage(c.Bar.FinishMessage),
		progress.WithOverflowMessage(c.Bar.OverflowMessage),
	}

	if c.Bar.Current != "" {
		opts = append(opts, progress.WithCurrentGlyph(c.Bar.Current))
	}
	if frames := c.AnimationFrames(); len(frames) > 0 {
		opts = append(opts, progress.WithAnimation(frames...))
	}

	return opts
}

// FuzzyOptions converts the bar and fuzzy sections into options for
// progress.NewFuzzy.
func (c *Config) FuzzyOptions() []progress.Option {
	opts := []progress.Option{
		progress.WithWidth(c.Bar.Width),
		progress.WithFormat(c.Fuzzy.Format),
		progress.WithCompleteGlyph(c.Bar.Complete),
		progress.WithIncompleteGlyph(c.Bar.Incomplete),
		progress.WithCompleteColor(progress.Color(c.Bar.CompleteColor)),
		progress.WithIncompleteColor(progress.Color(c.Bar.IncompleteColor)),
	}

	if c.Bar.Current != "" {
		opts = append(opts, progress.WithCurrentGlyph(c.Bar.Current))
	}
	if len(c.Fuzzy.Buckets) > 0 {
		buckets := make([]progress.Bucket, len(c.Fuzzy.Buckets))
		for i, b := range c.Fuzzy.Buckets {
			buckets[i] = progress.Bucket{Message: b.Message, Color: progress.Color(b.Color)}
		}
		opts = append(opts, progress.WithBuckets(buckets...))
	}

	return opts
}
