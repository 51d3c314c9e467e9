package bundle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tessbundle-labs/tessbundle/internal/platform"
)

// Execute runs the plan's copy operations in order, writing one status line
// per artifact to w.
//
// A mandatory artifact whose source is missing (or whose copy fails) aborts
// the run immediately: later artifacts are not touched and the partial tree
// is left in place for inspection. An optional artifact whose source is
// missing produces a warning on the result and the run continues.
func (p *Plan) Execute(w io.Writer) (*Result, error) {
	res := &Result{}

	for _, a := range p.Artifacts {
		if _, err := os.Stat(a.Source); err != nil {
			if a.Optional {
				warning := fmt.Sprintf("%s %s not found at %s — skipping", a.Kind, a.Name, a.Source)
				res.Warnings = append(res.Warnings, warning)
				res.Skipped++
				fmt.Fprintf(w, "  ⚠ %s\n", warning)
				continue
			}
			return res, fmt.Errorf("%s %s: source %s not found: %w", a.Kind, a.Name, a.Source, err)
		}

		if err := copyFile(a.Source, a.Dest); err != nil {
			if a.Optional {
				warning := fmt.Sprintf("%s %s: %v — skipping", a.Kind, a.Name, err)
				res.Warnings = append(res.Warnings, warning)
				res.Skipped++
				fmt.Fprintf(w, "  ⚠ %s\n", warning)
				continue
			}
			return res, fmt.Errorf("copying %s %s: %w", a.Kind, a.Name, err)
		}

		if a.Kind == KindExecutable {
			if err := platform.Chmod(a.Dest, platform.ExecutableMode); err != nil {
				return res, fmt.Errorf("marking %s executable: %w", a.Dest, err)
			}
		}

		res.Copied++
		fmt.Fprintf(w, "  ✓ %s: %s\n", a.Kind, a.Name)
	}

	return res, nil
}

// copyFile copies src to dst, creating parent directories and preserving the
// source file mode.
func copyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return out.Close()
}
