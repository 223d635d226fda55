package tui

import (
	"io"

	"github.com/safedep/gauge/core/template"
)

// WriteOperations lists every template token with its description.
func WriteOperations(w io.Writer, descriptions map[template.Operation]string) error {
	tw := &tableWriter{w: w}
	for _, op := range template.AllOperations() {
		tw.printf("%-12s %s\n", op.Token(), descriptions[op])
	}
	return tw.Err()
}

// WriteSegments prints the compiled form of tpl, one segment per line.
func WriteSegments(w io.Writer, tpl *template.Template) error {
	tw := &tableWriter{w: w}
	for i, seg := range tpl.Segments() {
		switch {
		case seg.Kind == template.SegmentLiteral:
			tw.printf("%2d  literal    %q\n", i, seg.Text)
		case seg.Op == template.OpNone:
			tw.printf("%2d  operation  (unknown, renders empty)\n", i)
		default:
			tw.printf("%2d  operation  %s\n", i, seg.Op)
		}
	}
	return tw.Err()
}
