package app

import "fmt"

// Build metadata, overridden with -ldflags "-X github.com/teatak/glossary/app.Version=v0.3.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is what the server logs at startup and reports on GET /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
