// Package version exposes build metadata injected by the linker.
package version

import "fmt"

// Populated via -ldflags at build time; see the magefile.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns the human-readable version line printed by --version.
func String() string {
	return fmt.Sprintf("benchgate %s (%s, built %s)", Version, CommitHash, BuildDate)
}
