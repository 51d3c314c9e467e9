//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tessbundle-labs/tessbundle/internal/manifest"
)

// testEnv holds paths to an isolated synthetic build machine.
type testEnv struct {
	Prefix    string // fake package-manager prefix with a tesseract install
	WorkDir   string // fake project directory holding bundle.yaml and build output
	BundleDir string // application bundle produced by the "app build"
}

// setupTestEnv lays out a Unix-style tesseract installation and a project
// directory with a manifest pinned to it, so nothing on the real host is
// touched or required.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		Prefix:  t.TempDir(),
		WorkDir: t.TempDir(),
	}
	env.BundleDir = filepath.Join(env.WorkDir, "build", "linux")

	writeFile(t, filepath.Join(env.Prefix, "bin", "tesseract"), "fake tesseract")
	for _, lang := range []string{"eng", "jpn"} {
		writeFile(t, filepath.Join(env.Prefix, "share", "tessdata", lang+".traineddata"), lang)
	}
	for _, lib := range []string{"liblept.so", "libpng16.so", "libjpeg.so"} {
		writeFile(t, filepath.Join(env.Prefix, "lib", lib), lib)
	}
	// libtiff deliberately absent: exercises the optional-skip path.

	writeFile(t, filepath.Join(env.WorkDir, manifest.DefaultFileName), `name: medisummary
version: 0.2.0
tesseract:
  binary: `+filepath.ToSlash(filepath.Join(env.Prefix, "bin", "tesseract"))+`
  tessdata: `+filepath.ToSlash(filepath.Join(env.Prefix, "share", "tessdata"))+`
  lib_dir: `+filepath.ToSlash(filepath.Join(env.Prefix, "lib"))+`
languages:
  - code: eng
  - code: jpn
libraries:
  - name: liblept
  - name: libpng16
  - name: libjpeg
  - name: libtiff
targets:
  linux:
    bundle: `+filepath.ToSlash(env.BundleDir)+`
`)

	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s: %v", path, err)
	}
}

func assertFileMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("file %s should not exist", path)
	}
}

func removeFile(path string) error {
	return os.Remove(path)
}
