// Package version reports the build identity of the carousel binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are injected at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Resolved returns Version, or the module version recorded by
// `go install` when no version was injected.
func Resolved() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// String returns a human-readable version string.
func String() string {
	return fmt.Sprintf("carousel %s (%s, %s)", Resolved(), Commit, BuildDate)
}
