package cli

import (
	"github.com/safedep/gauge/core/template"
	"github.com/safedep/gauge/tui"
	"github.com/spf13/cobra"
)

var tokenDescriptions = map[template.Operation]string{
	template.OpBar:     "bar glyphs, filled in proportion to progress",
	template.OpPercent: "completion percentage, e.g. \" 45.00%\"",
	template.OpStatus:  "status message, animation frame or fuzzy bucket",
	template.OpTime:    "approximate remaining time interval",
	template.OpCurrent: "raw current value",
}

// NewTokensCmd creates the tokens command.
func NewTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [format]",
		Short: "List template tokens or show how a format compiles",
		Example: `  gauge tokens
  gauge tokens '[$(bar)] $(Percent) $(bogus)'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return tui.WriteOperations(cmd.OutOrStdout(), tokenDescriptions)
			}
			return tui.WriteSegments(cmd.OutOrStdout(), template.Compile(args[0]))
		},
	}

	return cmd
}
