// Package version exposes build-time version metadata.
package version

import (
	"fmt"
	"runtime"
)

var (
	// These variables are set during build time
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// FullVersion returns a multi-line description of the build.
func FullVersion() string {
	return fmt.Sprintf(
		"tidy %s\nbuild date: %s\ngit commit: %s\ngo version: %s\nplatform: %s/%s",
		Version, BuildDate, GitCommit,
		runtime.Version(), runtime.GOOS, runtime.GOARCH,
	)
}
