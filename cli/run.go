package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/safedep/dry/log"
	"github.com/safedep/gauge/core/progress"
	"github.com/safedep/gauge/tui"
	"github.com/spf13/cobra"
)

type runParams struct {
	max       float64
	from      float64
	to        float64
	step      float64
	interval  time.Duration
	format    string
	width     int
	animation string
	fuzzy     bool
}

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	var p runParams

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive a progress bar through a simulated run",
		Long: `Drive a progress bar from --from to --to in steps of --step.

The bar is repainted in place on a terminal. When output is redirected each
update is written on its own line. Values past --max show the overflow state.`,
		Example: `  gauge run
  gauge run --max 250 --step 5 --interval 20ms
  gauge run --format '$(current)/100 $(bar) $(time)' --width 40
  gauge run --to 120 --fuzzy`,
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
			if !cmd.Flags().Changed("to") {
				p.to = p.max
			}
			if p.step == 0 || math.IsNaN(p.step) {
				return ErrUsage("invalid step", errors.New("step must be non-zero"))
			}
			if p.interval <= 0 {
				return ErrUsage("invalid interval", errors.New("interval must be positive"))
			}

			out := app.LineWriter(cmd.OutOrStdout())
			bar, err := app.NewBar(p.max, p.fuzzy,
				progress.WithOutput(out),
				progress.WithCurrent(p.from),
			)
			if err != nil {
				return ErrUsage("invalid bar parameters", err)
			}

			log.Debugf("run %s: max=%v from=%v to=%v step=%v interactive=%v operations=%v",
				app.RunID, p.max, p.from, p.to, p.step, out.Interactive(), bar.Template().Operations())

			runErr := drive(cmd.Context(), bar, p.to, p.step, p.interval)
			if errors.Is(runErr, context.Canceled) {
				// Interrupted runs leave no half-drawn line behind.
				_ = out.Clear()
				return nil
			}

			if err := out.Finish(); err != nil && runErr == nil {
				runErr = err
			}

			if runErr != nil {
				log.Errorf("run %s: render failed: %v", app.RunID, runErr)
				return ErrRender("failed to write progress", runErr)
			}

			if globalFlags.Verbose {
				summary := fmt.Sprintf("finished at %v/%v in %s",
					bar.Current(), bar.Max(), tui.FormatDuration(bar.Elapsed()))
				fmt.Fprintln(cmd.ErrOrStderr(), messageColorizer(cmd.ErrOrStderr()).Dim(summary))
			}

			return nil
		},
	}

	cmd.Flags().Float64Var(&p.max, "max", 100, "maximum value of the bar")
	cmd.Flags().Float64Var(&p.from, "from", 0, "starting value")
	cmd.Flags().Float64Var(&p.to, "to", 0, "final value (default: --max)")
	cmd.Flags().Float64Var(&p.step, "step", 1, "amount added on every update (default: run.step)")
	cmd.Flags().DurationVar(&p.interval, "interval", 0, "delay between updates (default: run.interval)")
	addBarFlags(cmd, &p.format, &p.width, &p.animation, &p.fuzzy)

	return cmd
}

// drive renders bar once and then moves it towards target every interval
// until it arrives or ctx is done.
func drive(ctx context.Context, bar *progress.Bar, target, step float64, interval time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := bar.Render(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !arrived(bar.Current(), target, step) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			next := bar.Current() + step
			if (step > 0 && next > target) || (step < 0 && next < target) {
				next = target
			}
			if err := bar.SetCurrent(next); err != nil {
				return err
			}
		}
	}

	return nil
}

func arrived(current, target, step float64) bool {
	if step > 0 {
		return current >= target
	}
	// Values are clamped at zero, so a negative target is reached at zero.
	return current <= math.Max(target, 0)
}

// addBarFlags registers the flags shared by commands that build a bar.
func addBarFlags(cmd *cobra.Command, format *string, width *int, animation *string, fuzzy *bool) {
	cmd.Flags().StringVarP(format, "format", "f", "", "format template (default: bar.format)")
	cmd.Flags().IntVarP(width, "width", "w", 0, "bar width in glyphs (default: bar.width)")
	cmd.Flags().StringVar(animation, "animation", "", "status animation preset, or \"none\"")
	cmd.Flags().BoolVar(fuzzy, "fuzzy", false, "report coarse status buckets instead of messages")
}

// applyBarFlags copies explicitly set bar flags over the loaded configuration.
func applyBarFlags(cmd *cobra.Command, app *App, format string, width int, animation string, fuzzy bool) error {
	if cmd.Flags().Changed("format") {
		if fuzzy {
			app.Config.Fuzzy.Format = format
		} else {
			app.Config.Bar.Format = format
		}
	}
	if cmd.Flags().Changed("width") {
		app.Config.Bar.Width = width
	}
	if cmd.Flags().Changed("animation") {
		app.Config.Bar.Frames = nil
		switch animation {
		case "none":
			app.Config.Bar.Animation = ""
		default:
			if _, ok := tui.AnimationFrames(animation); !ok {
				return ErrUsage("invalid animation", fmt.Errorf("unknown preset %q (must be one of %v)", animation, tui.AnimationNames()))
			}
			app.Config.Bar.Animation = animation
		}
	}

	return nil
}
