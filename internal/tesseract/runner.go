package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version runs `tesseract --version` and parses the reported version.
func Version(ctx context.Context, binary string) (*semver.Version, error) {
	out, err := run(ctx, binary, "--version")
	if err != nil {
		return nil, fmt.Errorf("running %s --version: %w", binary, err)
	}
	return ParseVersion(out)
}

// ParseVersion extracts the semver from `tesseract --version` output.
// The first line looks like "tesseract 5.3.4" or "tesseract v5.0.0-alpha".
func ParseVersion(output string) (*semver.Version, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("unrecognized version output %q", line)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(fields[1], "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", fields[1], err)
	}
	return v, nil
}

// ListLangs runs `tesseract --list-langs` against a specific tessdata
// directory and returns the available language codes.
func ListLangs(ctx context.Context, binary, tessdataDir string) ([]string, error) {
	out, err := run(ctx, binary, "--tessdata-dir", tessdataDir, "--list-langs")
	if err != nil {
		return nil, fmt.Errorf("running %s --list-langs: %w", binary, err)
	}
	return parseLangList(out), nil
}

// parseLangList drops the "List of available languages" header and blank
// lines from --list-langs output.
func parseLangList(output string) []string {
	var langs []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "available languages") {
			continue
		}
		langs = append(langs, line)
	}
	return langs
}

// Satisfies checks a version against a minimum-version string. An empty
// minimum always passes.
func Satisfies(v *semver.Version, minVersion string) (bool, error) {
	if minVersion == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(">= " + minVersion)
	if err != nil {
		return false, fmt.Errorf("parsing min_version %q: %w", minVersion, err)
	}
	return c.Check(v), nil
}

// run executes the binary and returns combined output. Tesseract historically
// printed --version to stderr, so both streams are captured together.
func run(ctx context.Context, binary string, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		return buf.String(), err
	}
	return buf.String(), nil
}
