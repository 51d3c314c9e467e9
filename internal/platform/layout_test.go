package platform

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestParse(t *testing.T) {
	for _, valid := range []string{"darwin", "windows", "linux"} {
		got, err := Parse(valid)
		if err != nil {
			t.Errorf("Parse(%q): %v", valid, err)
		}
		if string(got) != valid {
			t.Errorf("Parse(%q) = %q", valid, got)
		}
	}

	for _, invalid := range []string{"", "freebsd", "Darwin", "win"} {
		if _, err := Parse(invalid); err == nil {
			t.Errorf("Parse(%q) should fail", invalid)
		}
	}
}

func TestCurrentMatchesHost(t *testing.T) {
	if string(Current()) != runtime.GOOS {
		t.Errorf("Current() = %q, want %q", Current(), runtime.GOOS)
	}
}

func TestResourcesDir(t *testing.T) {
	tests := []struct {
		target Target
		bundle string
		want   string
	}{
		{Darwin, "build/macos/App.app", filepath.Join("build/macos/App.app", "Contents", "Resources")},
		{Windows, "build/windows", "build/windows"},
		{Linux, "build/linux", "build/linux"},
	}

	for _, tt := range tests {
		if got := tt.target.ResourcesDir(tt.bundle); got != tt.want {
			t.Errorf("%s.ResourcesDir(%q) = %q, want %q", tt.target, tt.bundle, got, tt.want)
		}
	}
}

func TestExecutableName(t *testing.T) {
	if got := Windows.ExecutableName("tesseract"); got != "tesseract.exe" {
		t.Errorf("windows executable = %q", got)
	}
	if got := Darwin.ExecutableName("tesseract"); got != "tesseract" {
		t.Errorf("darwin executable = %q", got)
	}
}

func TestLibraryName(t *testing.T) {
	tests := []struct {
		target Target
		want   string
	}{
		{Darwin, "libpng16.dylib"},
		{Windows, "libpng16.dll"},
		{Linux, "libpng16.so"},
	}

	for _, tt := range tests {
		if got := tt.target.LibraryName("libpng16"); got != tt.want {
			t.Errorf("%s.LibraryName = %q, want %q", tt.target, got, tt.want)
		}
	}
}
