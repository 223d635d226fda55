// Package version holds build metadata injected with -ldflags.
package version

var (
	// Version is the released version of gauge.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
)
