// Package build holds version information injected at build time.
package build

// Populated via -ldflags on release builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
