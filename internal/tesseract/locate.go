package tesseract

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/tessbundle-labs/tessbundle/internal/branding"
	"github.com/tessbundle-labs/tessbundle/internal/manifest"
	"github.com/tessbundle-labs/tessbundle/internal/platform"
)

// Installation describes a located Tesseract runtime on the build machine.
type Installation struct {
	Binary      string // absolute path to the tesseract executable
	TessdataDir string // directory holding *.traineddata files
	LibDir      string // directory holding the shared libraries
}

// prefixes returns the package-manager install prefixes probed per platform,
// most specific first.
func prefixes(t platform.Target) []string {
	switch t {
	case platform.Darwin:
		// Homebrew on Apple Silicon, then Intel, then MacPorts.
		return []string{"/opt/homebrew", "/usr/local", "/opt/local"}
	case platform.Windows:
		var roots []string
		for _, env := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
			if v := os.Getenv(env); v != "" {
				roots = append(roots, filepath.Join(v, "Tesseract-OCR"))
			}
		}
		if len(roots) == 0 {
			roots = []string{`C:\Program Files\Tesseract-OCR`}
		}
		return roots
	default:
		return []string{"/usr", "/usr/local"}
	}
}

// layout maps an install prefix to the expected binary/tessdata/lib paths.
func layout(t platform.Target, prefix string) Installation {
	if t == platform.Windows {
		// The Windows installer keeps everything next to the executable.
		return Installation{
			Binary:      filepath.Join(prefix, "tesseract.exe"),
			TessdataDir: filepath.Join(prefix, "tessdata"),
			LibDir:      prefix,
		}
	}
	return Installation{
		Binary:      filepath.Join(prefix, "bin", "tesseract"),
		TessdataDir: filepath.Join(prefix, "share", "tessdata"),
		LibDir:      filepath.Join(prefix, "lib"),
	}
}

// Locate finds a Tesseract installation for the given target platform.
//
// Resolution order:
//  1. explicit paths from the manifest's tesseract block
//  2. the TESSBUNDLE_TESSERACT environment variable (binary path; tessdata
//     and lib are derived from its prefix)
//  3. known package-manager prefixes for the platform
//  4. PATH lookup (host platform only)
//
// Explicit manifest fields always win over derived ones, so a manifest can
// pin just the tessdata directory and let the binary be auto-detected.
func Locate(m *manifest.Manifest, target platform.Target) (*Installation, error) {
	spec := m.Tesseract

	inst, err := detect(spec, target)
	if err != nil {
		return nil, err
	}

	// Manifest overrides win field by field.
	if spec.Binary != "" {
		inst.Binary = spec.Binary
	}
	if spec.Tessdata != "" {
		inst.TessdataDir = spec.Tessdata
	}
	if spec.LibDir != "" {
		inst.LibDir = spec.LibDir
	}

	if _, err := os.Stat(inst.Binary); err != nil {
		return nil, fmt.Errorf("tesseract executable not found at %s: %w", inst.Binary, err)
	}

	return inst, nil
}

func detect(spec manifest.TesseractSpec, target platform.Target) (*Installation, error) {
	// Fully pinned manifests need no detection.
	if spec.Binary != "" && spec.Tessdata != "" && spec.LibDir != "" {
		return &Installation{}, nil
	}

	if env := os.Getenv(branding.EnvVar("TESSERACT")); env != "" {
		inst := fromBinary(env, target)
		return &inst, nil
	}

	for _, prefix := range prefixes(target) {
		inst := layout(target, prefix)
		if _, err := os.Stat(inst.Binary); err == nil {
			return &inst, nil
		}
	}

	// PATH only describes the host, so cross-platform runs skip it.
	if target == platform.Current() {
		if path, err := exec.LookPath("tesseract"); err == nil {
			inst := fromBinary(path, target)
			return &inst, nil
		}
	}

	if spec.Binary != "" {
		// A pinned binary with unpinned data directories still derives them.
		inst := fromBinary(spec.Binary, target)
		return &inst, nil
	}

	return nil, fmt.Errorf(
		"no tesseract installation found for %s (probed %v); install it or set tesseract.binary in %s",
		target, prefixes(target), manifest.DefaultFileName)
}

// fromBinary derives tessdata and lib directories from a binary path,
// assuming the conventional <prefix>/bin/tesseract layout (or the flat
// Windows installer layout).
func fromBinary(binary string, target platform.Target) Installation {
	dir := filepath.Dir(binary)
	if target == platform.Windows {
		return Installation{
			Binary:      binary,
			TessdataDir: filepath.Join(dir, "tessdata"),
			LibDir:      dir,
		}
	}
	prefix := filepath.Dir(dir)
	return Installation{
		Binary:      binary,
		TessdataDir: filepath.Join(prefix, "share", "tessdata"),
		LibDir:      filepath.Join(prefix, "lib"),
	}
}

// TrainedData returns the path of one language's trained-data file.
func (i *Installation) TrainedData(code string) string {
	return filepath.Join(i.TessdataDir, code+".traineddata")
}

// Library returns the path of one shared library for a target platform.
func (i *Installation) Library(target platform.Target, name string) string {
	return filepath.Join(i.LibDir, target.LibraryName(name))
}
