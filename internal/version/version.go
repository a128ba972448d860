package version

import (
	"fmt"
	"runtime"
)

var (
	// These variables are set via build flags (ldflags)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
)

// String returns the build metadata on one line
func String() string {
	return fmt.Sprintf("kyso launcher %s (commit %s, built %s, %s %s/%s)",
		Version, Commit, BuildDate, GoVersion, runtime.GOOS, runtime.GOARCH)
}
