// ============================================================================
// numlab - Complex number laboratory
// ============================================================================
//
// Package:     version
// Description: Central version management
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants
const (
	// Application version
	Platform = "1.0.0"

	// Foundation package versions
	Mathx = "0.3.0"
	Listx = "0.1.0"
)

// Build information, set via -ldflags at build time
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "mathx":
		return Mathx
	case "listx":
		return Listx
	default:
		return Platform
	}
}

// Info returns the application version with build metadata
func Info() string {
	return Platform + " (commit " + GitCommit + ", built " + BuildDate + ")"
}
