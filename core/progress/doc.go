// Package progress renders single-line progress indicators from compiled
// format templates.
//
// A Bar owns its value state, glyph and colour style, status messages, an
// optional animation and a time-to-completion estimator. Every mutator
// re-evaluates the template and hands the resulting line to an Output:
//
//	bar, err := progress.New(100,
//	    progress.WithFormat("$(percent) [$(bar)] $(status)"),
//	    progress.WithWidth(20),
//	    progress.WithOutput(tui.NewLineWriter(os.Stderr, tui.LineWriterOptions{})),
//	)
//	if err != nil {
//	    return err
//	}
//	for range items {
//	    if err := bar.Increment(1); err != nil {
//	        return err
//	    }
//	}
//
// Values below zero are clamped to zero. Values above the maximum are an
// overflow state: the bar is drawn full and the status shows the overflow
// message.
//
// A Bar is not safe for concurrent use. Callers sharing one across goroutines
// must serialise access themselves.
package progress
