// Package buildinfo carries the version stamped in with
// -ldflags "-X quickgfx/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, or the commit for untagged builds.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long describes the build on one line for --version output and logs.
func Long() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Short(), Commit, Date)
}
