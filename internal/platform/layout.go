package platform

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Target identifies the operating system a bundle is laid out for.
type Target string

const (
	Darwin  Target = "darwin"
	Windows Target = "windows"
	Linux   Target = "linux"
)

// ValidTargets contains all supported target values, in display order.
var ValidTargets = []Target{Darwin, Windows, Linux}

// Current returns the target matching the host operating system.
func Current() Target {
	return Target(runtime.GOOS)
}

// Parse converts a user-supplied string to a Target.
func Parse(s string) (Target, error) {
	t := Target(s)
	for _, v := range ValidTargets {
		if t == v {
			return t, nil
		}
	}
	return "", fmt.Errorf("unsupported platform %q (expected darwin, windows, or linux)", s)
}

// ResourcesDir returns the resource root inside a bundle directory.
// On macOS the bundle is a .app and resources live under Contents/Resources;
// Windows and Linux builds use the bundle directory itself.
func (t Target) ResourcesDir(bundleDir string) string {
	if t == Darwin {
		return filepath.Join(bundleDir, "Contents", "Resources")
	}
	return bundleDir
}

// ExecutableName returns the platform-specific file name for an executable.
func (t Target) ExecutableName(name string) string {
	if t == Windows {
		return name + ".exe"
	}
	return name
}

// LibraryName returns the platform-specific file name for a shared library.
func (t Target) LibraryName(name string) string {
	switch t {
	case Darwin:
		return name + ".dylib"
	case Windows:
		return name + ".dll"
	default:
		return name + ".so"
	}
}
