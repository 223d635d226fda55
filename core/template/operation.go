package template

import "strings"

// Operation identifies a renderable feature referenced from a format string.
type Operation int

const (
	// OpNone is the sentinel for unrecognised tokens. It renders as "".
	OpNone Operation = iota
	// OpBar renders the bar glyphs.
	OpBar
	// OpPercent renders the completion percentage.
	OpPercent
	// OpStatus renders the status message or animation frame.
	OpStatus
	// OpTime renders the approximate time-to-completion interval.
	OpTime
	// OpCurrent renders the raw current value.
	OpCurrent
)

// operationNames is the token table. Every Operation other than OpNone must
// have an entry here.
var operationNames = map[Operation]string{
	OpBar:     "bar",
	OpPercent: "percent",
	OpStatus:  "status",
	OpTime:    "time",
	OpCurrent: "current",
}

var nameToOperation map[string]Operation

func init() {
	nameToOperation = make(map[string]Operation, len(operationNames))
	for op, name := range operationNames {
		nameToOperation[name] = op
	}
}

// String returns the token name of the operation.
func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "none"
}

// Token returns the operation in its $(name) form.
func (o Operation) Token() string {
	return "$(" + o.String() + ")"
}

// AllOperations returns every recognised operation in declaration order.
func AllOperations() []Operation {
	return []Operation{OpBar, OpPercent, OpStatus, OpTime, OpCurrent}
}

// Lookup resolves a token name to its Operation. The name may be given bare
// ("Bar") or wrapped ("$(bar)"). It is lowercased and trailing newlines are
// stripped before lookup. Unknown names return OpNone.
func Lookup(token string) Operation {
	name := normalize(token)
	if strings.HasPrefix(name, "$(") && strings.HasSuffix(name, ")") {
		name = name[2 : len(name)-1]
	}
	if op, ok := nameToOperation[name]; ok {
		return op
	}
	return OpNone
}

func normalize(token string) string {
	return strings.TrimRight(strings.ToLower(token), "\r\n")
}
