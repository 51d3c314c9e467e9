package doctor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tessbundle-labs/tessbundle/internal/branding"
	"github.com/tessbundle-labs/tessbundle/internal/bundle"
	"github.com/tessbundle-labs/tessbundle/internal/manifest"
	"github.com/tessbundle-labs/tessbundle/internal/platform"
	"github.com/tessbundle-labs/tessbundle/internal/tesseract"
)

// CheckToolchain verifies the build machine has a usable Tesseract that
// satisfies the manifest's minimum version.
func CheckToolchain(ctx context.Context, w io.Writer, m *manifest.Manifest, target platform.Target) error {
	fmt.Fprintln(w, "Toolchain check:")

	inst, err := tesseract.Locate(m, target)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %v\n", err)
		fmt.Fprintf(w, "         Install Tesseract (brew install tesseract / UB-Mannheim installer on Windows)\n")
		return fmt.Errorf("tesseract not installed")
	}
	fmt.Fprintf(w, "  [ OK ] tesseract found at %s\n", inst.Binary)

	v, err := tesseract.Version(ctx, inst.Binary)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] tesseract does not run: %v\n", err)
		fmt.Fprintf(w, "         Reinstall Tesseract; the executable may be corrupt or missing dependencies\n")
		return fmt.Errorf("tesseract --version failed")
	}

	ok, err := tesseract.Satisfies(v, m.Tesseract.MinVersion)
	if err != nil {
		return fmt.Errorf("checking min_version: %w", err)
	}
	if !ok {
		fmt.Fprintf(w, "  [FAIL] tesseract %s is older than required %s\n", v, m.Tesseract.MinVersion)
		fmt.Fprintf(w, "         Upgrade Tesseract before bundling\n")
		return fmt.Errorf("tesseract %s does not satisfy >= %s", v, m.Tesseract.MinVersion)
	}
	fmt.Fprintf(w, "  [ OK ] tesseract %s satisfies minimum %s\n", v, orAny(m.Tesseract.MinVersion))
	return nil
}

// CheckTrainedData verifies every configured language has a trained-data
// file in the source installation.
func CheckTrainedData(w io.Writer, m *manifest.Manifest, target platform.Target) error {
	fmt.Fprintln(w, "Trained-data check:")

	inst, err := tesseract.Locate(m, target)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %v\n", err)
		return err
	}

	if _, err := os.Stat(inst.TessdataDir); err != nil {
		fmt.Fprintf(w, "  [MISS] tessdata directory %s does not exist\n", inst.TessdataDir)
		fmt.Fprintf(w, "         Set tesseract.tessdata in %s or reinstall language data\n", manifest.DefaultFileName)
		return fmt.Errorf("tessdata directory missing")
	}
	fmt.Fprintf(w, "  [ OK ] tessdata directory %s\n", inst.TessdataDir)

	missing := 0
	for _, lang := range m.Languages {
		path := inst.TrainedData(lang.Code)
		if _, err := os.Stat(path); err != nil {
			if lang.Optional {
				fmt.Fprintf(w, "  [WARN] optional language %s has no trained data (%s)\n", lang.Code, path)
				continue
			}
			missing++
			fmt.Fprintf(w, "  [MISS] %s.traineddata not found in %s\n", lang.Code, inst.TessdataDir)
			fmt.Fprintf(w, "         Install the %s language pack (brew: bundled with tesseract; Windows: re-run the installer and tick %q)\n", lang.Code, lang.Code)
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s.traineddata\n", lang.Code)
	}

	if missing > 0 {
		return fmt.Errorf("%d required trained-data file(s) missing", missing)
	}
	return nil
}

// CheckLibraries reports which configured shared libraries resolve in the
// source installation. Missing optional libraries are informational only.
func CheckLibraries(w io.Writer, m *manifest.Manifest, target platform.Target) error {
	fmt.Fprintln(w, "Library check:")

	if len(m.Libraries) == 0 {
		fmt.Fprintln(w, "  [INFO] no libraries configured")
		return nil
	}

	inst, err := tesseract.Locate(m, target)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %v\n", err)
		return err
	}

	missingRequired := 0
	for _, lib := range m.Libraries {
		path := inst.Library(target, lib.Name)
		if _, err := os.Stat(path); err != nil {
			if lib.Required {
				missingRequired++
				fmt.Fprintf(w, "  [MISS] required library %s not found at %s\n", lib.Name, path)
			} else {
				fmt.Fprintf(w, "  [WARN] %s not found at %s (will be skipped when bundling)\n", lib.Name, path)
			}
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s\n", lib.Name)
	}

	if missingRequired > 0 {
		return fmt.Errorf("%d required library(ies) missing", missingRequired)
	}
	return nil
}

// CheckBundle validates a built bundle end to end: the build directory
// exists, every mandatory artifact is in place, the bundled executable runs,
// and the bundled trained data answers --list-langs with the required
// languages. This is the executable form of the "drag a scan in and nothing
// happens" support case.
func CheckBundle(ctx context.Context, w io.Writer, m *manifest.Manifest, target platform.Target, bundleDir string) error {
	fmt.Fprintln(w, "Bundle check:")

	if _, err := os.Stat(bundleDir); err != nil {
		fmt.Fprintf(w, "  [MISS] bundle directory %s does not exist\n", bundleDir)
		fmt.Fprintf(w, "         Run the application build first, then `%s bundle`\n", branding.CLIName())
		return fmt.Errorf("bundle directory missing")
	}

	plan := bundle.DestTree(m, target, bundleDir)
	res := plan.Verify(w)
	if !res.OK() {
		fmt.Fprintf(w, "  Run `%s bundle` to repair the tree\n", branding.CLIName())
		return fmt.Errorf("bundle tree incomplete")
	}

	// Only the host platform can run the bundled executable.
	if target != platform.Current() {
		fmt.Fprintf(w, "  [INFO] skipping runtime probe for %s bundle on %s host\n", target, platform.Current())
		return nil
	}

	exe := plan.Artifacts[0].Dest
	tessdata := filepath.Join(plan.ResourcesDir, bundle.RuntimeDir, bundle.TessdataDir)

	if _, err := tesseract.Version(ctx, exe); err != nil {
		fmt.Fprintf(w, "  [FAIL] bundled tesseract does not run: %v\n", err)
		fmt.Fprintf(w, "         The executable may be missing shared libraries; check the lib/ subtree\n")
		return fmt.Errorf("bundled tesseract not runnable")
	}
	fmt.Fprintf(w, "  [ OK ] bundled tesseract runs\n")

	langs, err := tesseract.ListLangs(ctx, exe, tessdata)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] bundled tesseract cannot list languages: %v\n", err)
		return fmt.Errorf("bundled language probe failed")
	}

	available := make(map[string]bool, len(langs))
	for _, l := range langs {
		available[l] = true
	}
	missing := 0
	for _, code := range m.RequiredLanguages() {
		if !available[code] {
			missing++
			fmt.Fprintf(w, "  [MISS] bundled tessdata does not provide %s\n", code)
		}
	}
	if missing > 0 {
		fmt.Fprintf(w, "         Re-run `%s bundle` after installing the missing language packs\n", branding.CLIName())
		return fmt.Errorf("%d required language(s) not usable in bundle", missing)
	}
	fmt.Fprintf(w, "  [ OK ] bundled languages: %v\n", langs)
	return nil
}

func orAny(minVersion string) string {
	if minVersion == "" {
		return "(none)"
	}
	return minVersion
}
