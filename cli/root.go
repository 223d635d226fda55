// Package cli provides the command-line interface for gauge.
package cli

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/safedep/dry/log"
	"github.com/safedep/gauge/config"
	"github.com/safedep/gauge/core/progress"
	"github.com/safedep/gauge/internal/version"
	"github.com/safedep/gauge/tui"
	"github.com/spf13/cobra"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Paths  *config.Paths
	RunID  uuid.UUID
}

// NewApp creates a new App with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		Paths:  config.ResolvePaths(),
		RunID:  uuid.New(),
	}
}

// ConfigFile returns the config file in effect for this invocation.
func (a *App) ConfigFile() string {
	if globalFlags.ConfigPath != "" {
		return globalFlags.ConfigPath
	}
	return a.Paths.ConfigFile
}

// LineWriter returns a progress output for w honouring display settings.
func (a *App) LineWriter(w io.Writer) *tui.LineWriter {
	interactive := a.Config.IsInteractive(w)
	opts := tui.LineWriterOptions{
		Interactive: &interactive,
		UseColors:   a.Config.ShouldUseColors(w),
	}
	if interactive {
		// Leave the last column free so the cursor never wraps.
		opts.MaxWidth = tui.GetTerminalWidth() - 1
	}
	return tui.NewLineWriter(w, opts)
}

// NewBar builds a standard or fuzzy bar from configuration. Extra options
// are applied last.
func (a *App) NewBar(max float64, fuzzy bool, extra ...progress.Option) (*progress.Bar, error) {
	if fuzzy {
		return progress.NewFuzzy(max, append(a.Config.FuzzyOptions(), extra...)...)
	}
	return progress.New(max, append(a.Config.BarOptions(), extra...)...)
}

// messageColorizer colours informational command output written to w.
func messageColorizer(w io.Writer) *tui.Colorizer {
	return tui.NewColorizer(!globalFlags.NoColor && tui.IsWriterTerminal(w))
}

// GlobalFlags holds the global command flags.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
	NoColor    bool
}

var globalFlags GlobalFlags

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gauge",
		Short: "Template driven terminal progress bars",
		Long: `Gauge renders single-line terminal progress bars from format templates.

A template mixes literal text with tokens such as $(bar), $(percent),
$(status), $(time) and $(current). Unknown tokens render as nothing.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Handle NO_COLOR environment variable
			if os.Getenv("NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			if os.Getenv("GAUGE_NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			setupInternalLogger()

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "print a summary after each run")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.NoColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(
		NewRunCmd(),
		NewPreviewCmd(),
		NewTokensCmd(),
		NewWatchCmd(),
		NewConfigCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// setupInternalLogger sets up the DRY logger
func setupInternalLogger() {
	// The progress line owns the terminal, so logs never go to stdout.
	_ = os.Setenv("APP_LOG_SKIP_STDOUT_LOGGER", "true")

	log.Init("gauge", "cli")
}

// loadApp loads the application with configuration.
func loadApp() (*App, error) {
	cfg, err := config.Load(globalFlags.ConfigPath)
	if err != nil {
		return nil, ErrConfig("failed to load config", err)
	}

	// Override with flags
	if globalFlags.NoColor {
		cfg.Display.Colors = config.ColorNever
	}

	app := NewApp(cfg)
	log.Debugf("run %s: loaded config from %s", app.RunID, app.ConfigFile())

	return app, nil
}
