// Package version holds build metadata injected via ldflags.
package version

import "runtime"

// Build information. Populated at build time with -ldflags, e.g.:
//
//	-X github.com/Dydiddl/ASCR/version.GitRelease=v0.3.0
var (
	// GitRelease is the release tag, or "dev" for untagged builds.
	GitRelease = "dev"

	// GitCommit is the commit hash the binary was built from.
	GitCommit = "unknown"

	// GitCommitDate is the commit date of GitCommit.
	GitCommitDate = "unknown"

	// GoInfo is the Go toolchain version used for the build.
	GoInfo = runtime.Version()
)
