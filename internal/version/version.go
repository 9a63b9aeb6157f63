package version

import "runtime/debug"

// Build information set by ldflags:
// -X github.com/arthur-debert/awesome-copilot/internal/version.Version={{.Version}}
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Resolved returns Version, or for dev builds installed with go install,
// the module version recorded in the binary.
func Resolved() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}
