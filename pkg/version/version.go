// Package version holds build-time version info for the check tools.
// Populated by the linker via -ldflags, read from anywhere via Version().
package version

// Build information, overridden at build time.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Version returns the build version string.
func Version() string { return version }

// Commit returns the build commit hash.
func Commit() string { return commit }

// BuildDate returns the build date string.
func BuildDate() string { return buildDate }
