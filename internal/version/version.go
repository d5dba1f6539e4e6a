// Package version exposes build metadata stamped in at link time.
package version

import "fmt"

// Set via -ldflags at build time; the zero values identify a local dev build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Full returns a one-line human-readable build description.
func Full() string {
	return fmt.Sprintf("zoomdl %s, commit %s, built at %s", Version, Commit, Date)
}
