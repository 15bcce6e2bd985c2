// Package gnreads provides application-wide metadata for the gnreads
// command-line tool.
package gnreads

var (
	// Version is set during the build via ldflags.
	Version = "v0.1.0"

	// Build is the build timestamp, set via ldflags.
	Build = "n/a"
)
