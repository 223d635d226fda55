package cli

import (
	"errors"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/safedep/dry/log"
	"github.com/safedep/gauge/config"
	"github.com/safedep/gauge/core/progress"
	"github.com/safedep/gauge/tui"
	"github.com/safedep/gauge/tui/component/gauge"
	"github.com/spf13/cobra"
)

type watchParams struct {
	max       float64
	step      float64
	interval  time.Duration
	format    string
	width     int
	animation string
	fuzzy     bool
}

// NewWatchCmd creates the watch command.
func NewWatchCmd() *cobra.Command {
	var p watchParams

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Interactive full-screen progress view",
		Long: `Launch a full-screen view of a bar advancing on a timer.

Keys: p/space pause, +/- step manually, r reset, q quit.`,
		Example: `  gauge watch
  gauge watch --max 50 --interval 250ms --fuzzy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			if err := applyBarFlags(cmd, app, p.format, p.width, p.animation, p.fuzzy); err != nil {
				return err
			}
			if !cmd.Flags().Changed("step") {
				p.step = app.Config.Run.Step
			}
			if !cmd.Flags().Changed("interval") {
				p.interval = app.Config.Run.Interval
			}

			if p.step == 0 || math.IsNaN(p.step) {
				return ErrUsage("invalid step", errors.New("step must be non-zero"))
			}
			if p.interval <= 0 {
				return ErrUsage("invalid interval", errors.New("interval must be positive"))
			}

			buf := tui.NewLineBuffer(app.Config.Display.Colors != config.ColorNever)
			bar, err := app.NewBar(p.max, p.fuzzy, progress.WithOutput(buf))
			if err != nil {
				return ErrUsage("invalid bar parameters", err)
			}

			log.Debugf("watch %s: max=%v step=%v interval=%s", app.RunID, p.max, p.step, p.interval)

			model := gauge.New(gauge.Options{
				Bar:      bar,
				Buffer:   buf,
				Title:    "gauge " + bar.Template().Source(),
				Step:     p.step,
				Interval: p.interval,
			})

			prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = prog.Run()

			return err
		},
	}

	cmd.Flags().Float64Var(&p.max, "max", 100, "maximum value of the bar")
	cmd.Flags().Float64Var(&p.step, "step", 1, "amount added on every tick (default: run.step)")
	cmd.Flags().DurationVar(&p.interval, "interval", 0, "delay between ticks (default: run.interval)")
	addBarFlags(cmd, &p.format, &p.width, &p.animation, &p.fuzzy)

	return cmd
}
