package version

import (
	"fmt"
	"runtime"
)

const (
	// Name of the application
	Name = "pubcheck"
	// Version of the application (populated at build time)
	Version = "dev"
	// Commit hash (populated at build time)
	Commit = "unknown"
	// Build date (populated at build time)
	Date = "unknown"
)

// VersionInfo returns complete version information
func VersionInfo() string {
	return fmt.Sprintf("%s version %s\nCommit: %s\nBuilt: %s\nGo version: %s (%s/%s)",
		Name, Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
