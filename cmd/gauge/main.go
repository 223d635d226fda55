// Package main provides the entry point for gauge.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/safedep/gauge/cli"
	"github.com/safedep/gauge/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		color := tui.NewColorizer(os.Getenv("NO_COLOR") == "" && tui.IsWriterTerminal(os.Stderr))

		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			fmt.Fprint(os.Stderr, color.Error(exitErr.Message()))
			os.Exit(exitErr.ExitCode())
		}

		fmt.Fprintln(os.Stderr, color.Error("Error: "+err.Error()))
		os.Exit(cli.ExitGeneral)
	}
}
