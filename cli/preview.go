package cli

import (
	"bytes"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/safedep/gauge/core/progress"
	"github.com/safedep/gauge/core/template"
	"github.com/safedep/gauge/tui"
	"github.com/spf13/cobra"
)

type previewParams struct {
	max       float64
	at        []float64
	against   string
	format    string
	width     int
	animation string
	fuzzy     bool
}

// NewPreviewCmd creates the preview command.
func NewPreviewCmd() *cobra.Command {
	var p previewParams

	cmd := &cobra.Command{
		Use:   "preview [format]",
		Short: "Render a template at fixed progress points",
		Long: `Render a template at fixed progress points, one line per point.

Points are fractions of --max: 0.5 is half way, 1 is complete and values
above 1 overflow. With --against, a unified diff between the previews of the
two templates is printed instead.`,
		Example: `  gauge preview '[$(bar)] $(percent)'
  gauge preview --at 0,0.33,1,1.2 --fuzzy
  gauge preview '[$(bar)]' --against '<$(bar)> $(status)'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				if err := cmd.Flags().Set("format", args[0]); err != nil {
					return ErrUsage("invalid format", err)
				}
			}
			if err := applyBarFlags(cmd, app, p.format, p.width, p.animation, p.fuzzy); err != nil {
				return err
			}

			if usesTime(app, p.fuzzy) {
				fmt.Fprintln(cmd.ErrOrStderr(), messageColorizer(cmd.ErrOrStderr()).Dim(
					"note: $(time) depends on the pace of updates and is not meaningful in a preview"))
			}

			current, err := previewLines(app, p.max, p.fuzzy, p.at)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("against") {
				_, err := fmt.Fprint(cmd.OutOrStdout(), current)
				return err
			}

			before := activeFormat(app, p.fuzzy)
			if p.fuzzy {
				app.Config.Fuzzy.Format = p.against
			} else {
				app.Config.Bar.Format = p.against
			}

			other, err := previewLines(app, p.max, p.fuzzy, p.at)
			if err != nil {
				return err
			}

			diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(current),
				B:        difflib.SplitLines(other),
				FromFile: "a/" + before,
				ToFile:   "b/" + p.against,
				Context:  3,
			})
			if err != nil {
				return fmt.Errorf("failed to diff previews: %w", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), diff)
			return err
		},
	}

	cmd.Flags().Float64Var(&p.max, "max", 100, "maximum value of the bar")
	cmd.Flags().Float64SliceVar(&p.at, "at", []float64{0, 0.25, 0.5, 0.75, 1, 1.25}, "progress fractions to render")
	cmd.Flags().StringVar(&p.against, "against", "", "second template to diff against")
	addBarFlags(cmd, &p.format, &p.width, &p.animation, &p.fuzzy)

	return cmd
}

// previewLines renders one non-interactive line per progress fraction.
func previewLines(app *App, max float64, fuzzy bool, at []float64) (string, error) {
	var buf bytes.Buffer
	interactive := false
	out := tui.NewLineWriter(&buf, tui.LineWriterOptions{
		Interactive: &interactive,
		UseColors:   app.Config.ShouldUseColors(&buf) && !globalFlags.NoColor,
	})

	bar, err := app.NewBar(max, fuzzy, progress.WithOutput(out))
	if err != nil {
		return "", ErrUsage("invalid bar parameters", err)
	}

	for _, fraction := range at {
		if err := bar.SetPercentDone(fraction); err != nil {
			return "", ErrRender("failed to render preview", err)
		}
	}

	return buf.String(), nil
}

// usesTime reports whether the active format references $(time).
func usesTime(app *App, fuzzy bool) bool {
	if fuzzy {
		// Fuzzy bars never resolve $(time).
		return false
	}
	return template.Compile(app.Config.Bar.Format).Uses(template.OpTime)
}

func activeFormat(app *App, fuzzy bool) string {
	if fuzzy {
		return app.Config.Fuzzy.Format
	}
	return app.Config.Bar.Format
}
