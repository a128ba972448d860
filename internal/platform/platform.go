// Package platform identifies the host operating system and the launcher's
// install location.
package platform

import (
	"runtime"
)

// ID names an operating system the way runtime.GOOS does
type ID string

// Known platform identifiers
const (
	Windows ID = "windows"
	Darwin  ID = "darwin"
	Linux   ID = "linux"
)

// Current returns the identifier of the running platform
func Current() ID {
	return ID(runtime.GOOS)
}

func (id ID) String() string {
	return string(id)
}

// IsWindows returns true if running on Windows
func IsWindows() bool {
	return Current() == Windows
}

// IsDarwin returns true if running on macOS
func IsDarwin() bool {
	return Current() == Darwin
}

// IsLinux returns true if running on Linux
func IsLinux() bool {
	return Current() == Linux
}
