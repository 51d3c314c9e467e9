package bundle

import (
	"fmt"
	"io"
	"os"

	"github.com/tessbundle-labs/tessbundle/internal/platform"
)

// VerifyResult summarizes a bundle verification.
type VerifyResult struct {
	Present         int
	MissingOptional int
	MissingRequired int
	NotExecutable   bool
}

// OK reports whether every mandatory artifact is present and runnable.
func (r *VerifyResult) OK() bool {
	return r.MissingRequired == 0 && !r.NotExecutable
}

// Verify walks the plan's destination tree against the filesystem and writes
// one status line per artifact. It never needs source paths, so it works on
// plans built with DestTree.
func (p *Plan) Verify(w io.Writer) *VerifyResult {
	res := &VerifyResult{}

	fmt.Fprintf(w, "Verifying bundle %s (%s):\n", p.BundleDir, p.Platform)

	for _, a := range p.Artifacts {
		if _, err := os.Stat(a.Dest); err != nil {
			if a.Optional {
				res.MissingOptional++
				fmt.Fprintf(w, "  [SKIP] %s %s not bundled (optional)\n", a.Kind, a.Name)
			} else {
				res.MissingRequired++
				fmt.Fprintf(w, "  [MISS] %s %s missing: %s\n", a.Kind, a.Name, a.Dest)
			}
			continue
		}

		if a.Kind == KindExecutable {
			ok, err := platform.IsExecutable(a.Dest)
			if err == nil && !ok {
				res.NotExecutable = true
				fmt.Fprintf(w, "  [FAIL] %s is not executable (chmod 755 needed)\n", a.Dest)
				continue
			}
		}

		res.Present++
		fmt.Fprintf(w, "  [ OK ] %s %s\n", a.Kind, a.Name)
	}

	return res
}
