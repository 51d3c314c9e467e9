package bundle

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/tessbundle-labs/tessbundle/internal/manifest"
	"github.com/tessbundle-labs/tessbundle/internal/platform"
	"github.com/tessbundle-labs/tessbundle/internal/tesseract"
)

// DestTree returns the expected artifact tree for a manifest and target,
// with only destinations filled in. Verification uses this directly so a
// bundle can be checked on a machine with no Tesseract installed.
func DestTree(m *manifest.Manifest, target platform.Target, bundleDir string) *Plan {
	resources := target.ResourcesDir(bundleDir)
	runtimeDir := filepath.Join(resources, RuntimeDir)

	artifacts := []Artifact{{
		Kind: KindExecutable,
		Name: "tesseract",
		Dest: filepath.Join(runtimeDir, target.ExecutableName("tesseract")),
	}}

	for _, lang := range m.Languages {
		artifacts = append(artifacts, Artifact{
			Kind:     KindTrainedData,
			Name:     lang.Code,
			Dest:     filepath.Join(runtimeDir, TessdataDir, lang.Code+".traineddata"),
			Optional: lang.Optional,
		})
	}

	for _, lib := range m.Libraries {
		artifacts = append(artifacts, Artifact{
			Kind:     KindLibrary,
			Name:     lib.Name,
			Dest:     filepath.Join(runtimeDir, LibDir, target.LibraryName(lib.Name)),
			Optional: !lib.Required,
		})
	}

	return &Plan{
		Platform:     target,
		BundleDir:    bundleDir,
		ResourcesDir: resources,
		Artifacts:    artifacts,
	}
}

// BuildPlan resolves source paths from a located installation and returns a
// ready-to-execute plan.
func BuildPlan(m *manifest.Manifest, inst *tesseract.Installation, target platform.Target, bundleDir string) *Plan {
	plan := DestTree(m, target, bundleDir)

	for i := range plan.Artifacts {
		a := &plan.Artifacts[i]
		switch a.Kind {
		case KindExecutable:
			a.Source = inst.Binary
		case KindTrainedData:
			a.Source = inst.TrainedData(a.Name)
		case KindLibrary:
			a.Source = inst.Library(target, a.Name)
		}
	}

	return plan
}

// Print writes a human-readable copy plan, one line per artifact.
func (p *Plan) Print(w io.Writer) {
	fmt.Fprintf(w, "Bundle plan (%s):\n", p.Platform)
	fmt.Fprintf(w, "  bundle:    %s\n", p.BundleDir)
	fmt.Fprintf(w, "  resources: %s\n", p.ResourcesDir)
	fmt.Fprintln(w)

	for _, a := range p.Artifacts {
		marker := ""
		if a.Optional {
			marker = " (optional)"
		}
		rel, err := filepath.Rel(p.ResourcesDir, a.Dest)
		if err != nil {
			rel = a.Dest
		}
		fmt.Fprintf(w, "  %-12s %s -> %s%s\n", a.Kind+":", a.Source, rel, marker)
	}
	fmt.Fprintln(w)
}
