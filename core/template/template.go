package template

import (
	"regexp"
	"slices"
	"strings"
)

// tokenPattern matches $( followed by the shortest run of characters up to
// the first closing parenthesis.
var tokenPattern = regexp.MustCompile(`\$\((.*?)\)`)

// SegmentKind tags a Segment as literal text or an operation reference.
type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentOperation
)

// Segment is one unit of a compiled Template.
type Segment struct {
	Kind SegmentKind
	Text string
	Op   Operation
}

// Literal returns a literal text segment.
func Literal(text string) Segment {
	return Segment{Kind: SegmentLiteral, Text: text}
}

// Op returns an operation segment.
func Op(op Operation) Segment {
	return Segment{Kind: SegmentOperation, Op: op}
}

// Resolver produces the text for a single operation at render time.
type Resolver interface {
	Resolve(op Operation) string
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(op Operation) string

// Resolve calls f(op).
func (f ResolverFunc) Resolve(op Operation) string {
	return f(op)
}

// Template is a compiled format string. It is immutable once built.
type Template struct {
	source   string
	segments []Segment
}

// Compile parses format into a Template. When allowed is non-empty only those
// operations are recognised and every other token compiles to OpNone.
func Compile(format string, allowed ...Operation) *Template {
	tpl := &Template{source: format}

	last := 0
	for _, loc := range tokenPattern.FindAllStringIndex(format, -1) {
		start, end := loc[0], loc[1]
		tpl.segments = append(tpl.segments, Literal(format[last:start]))

		op := Lookup(format[start:end])
		if len(allowed) > 0 && !slices.Contains(allowed, op) {
			op = OpNone
		}
		tpl.segments = append(tpl.segments, Op(op))
		last = end
	}

	if last < len(format) {
		tpl.segments = append(tpl.segments, Literal(format[last:]))
	}
	if len(tpl.segments) == 0 {
		tpl.segments = append(tpl.segments, Literal(""))
	}

	return tpl
}

// Source returns the format string the template was compiled from.
func (t *Template) Source() string {
	return t.source
}

// Segments returns a copy of the compiled segments.
func (t *Template) Segments() []Segment {
	return slices.Clone(t.segments)
}

// Operations returns the distinct resolved operations in order of first
// appearance. OpNone is never included.
func (t *Template) Operations() []Operation {
	var ops []Operation
	for _, seg := range t.segments {
		if seg.Kind != SegmentOperation || seg.Op == OpNone {
			continue
		}
		if !slices.Contains(ops, seg.Op) {
			ops = append(ops, seg.Op)
		}
	}
	return ops
}

// Uses reports whether the template references op.
func (t *Template) Uses(op Operation) bool {
	return slices.Contains(t.Operations(), op)
}

// Render evaluates every segment in order and concatenates the results.
func (t *Template) Render(r Resolver) string {
	var sb strings.Builder
	for _, seg := range t.segments {
		switch seg.Kind {
		case SegmentLiteral:
			sb.WriteString(seg.Text)
		case SegmentOperation:
			if seg.Op == OpNone {
				continue
			}
			sb.WriteString(r.Resolve(seg.Op))
		}
	}
	return sb.String()
}
