package config

import (
	"github.com/safedep/gauge/core/progress"
	"github.com/spf13/viper"
)

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	// Bar defaults
	v.SetDefault("bar.width", 30)
	v.SetDefault("bar.format", "$(percent) [$(bar)] $(status) $(time)")
	v.SetDefault("bar.complete", "=")
	v.SetDefault("bar.incomplete", " ")
	v.SetDefault("bar.current", ">")
	v.SetDefault("bar.complete_color", "green")
	v.SetDefault("bar.incomplete_color", "")
	v.SetDefault("bar.current_message", "")
	v.SetDefault("bar.finish_message", progress.DefaultFinishMessage)
	v.SetDefault("bar.overflow_message", progress.DefaultOverflowMessage)
	v.SetDefault("bar.animation", "spinner")
	v.SetDefault("bar.frames", []string{})

	// Fuzzy defaults
	v.SetDefault("fuzzy.format", progress.DefaultFuzzyFormat)
	v.SetDefault("fuzzy.buckets", defaultBuckets())

	// Display defaults
	v.SetDefault("display.colors", "auto")
	v.SetDefault("display.interactive", "auto")

	// Run defaults
	v.SetDefault("run.interval", "100ms")
	v.SetDefault("run.step", 1.0)
}

// defaultBuckets mirrors progress.DefaultBuckets in configuration form.
func defaultBuckets() []BucketConfig {
	buckets := progress.DefaultBuckets()
	out := make([]BucketConfig, len(buckets))
	for i, b := range buckets {
		out[i] = BucketConfig{Message: b.Message, Color: string(b.Color)}
	}
	return out
}
