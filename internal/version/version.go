package version

import "fmt"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/alexiusacademia/girderloads/internal/version.Version=0.2.0"
var (
	// Version is the semantic version of the application
	Version = "0.1.0"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"

	// Author of the application
	Author = "Alexius Academia"

	// Year of release
	Year = "2026"
)

// String formats the version line printed by the version command.
func String() string {
	if GitCommit == "unknown" {
		return fmt.Sprintf("girderloads v%s", Version)
	}
	return fmt.Sprintf("girderloads v%s (%s, built %s)", Version, GitCommit, BuildTime)
}
