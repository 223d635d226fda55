// Package template compiles progress format strings into an ordered list of
// segments.
//
// A format string mixes literal text with operation tokens of the form
// $(name). Recognised names are bar, percent, status, time and current,
// matched case-insensitively:
//
//	tpl := template.Compile("Downloading $(percent) [$(bar)] $(status)")
//	line := tpl.Render(resolver)
//
// Compilation never fails. Unknown tokens compile to OpNone and render as an
// empty string; an unterminated "$(" is kept as literal text.
package template
