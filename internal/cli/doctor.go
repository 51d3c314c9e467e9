package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tessbundle-labs/tessbundle/internal/doctor"
	"github.com/tessbundle-labs/tessbundle/internal/manifest"
)

var (
	doctorManifest  string
	doctorPlatform  string
	doctorDir       string
	checkToolchain  bool
	checkTessdata   bool
	checkLibraries  bool
	checkBundleTree bool
	checkManifest   string
)

func init() {
	doctorCmd.Flags().StringVarP(&doctorManifest, "manifest", "m", manifest.DefaultFileName, "Path to the bundle manifest")
	doctorCmd.Flags().StringVar(&doctorPlatform, "platform", "", "Target platform (darwin, windows, linux); defaults to the host")
	doctorCmd.Flags().StringVar(&doctorDir, "bundle", "", "Bundle directory; overrides the manifest target")
	doctorCmd.Flags().BoolVar(&checkToolchain, "check-toolchain", false, "Verify tesseract is installed and recent enough")
	doctorCmd.Flags().BoolVar(&checkTessdata, "check-tessdata", false, "Verify trained data for every configured language")
	doctorCmd.Flags().BoolVar(&checkLibraries, "check-libraries", false, "Verify configured shared libraries resolve")
	doctorCmd.Flags().BoolVar(&checkBundleTree, "check-bundle", false, "Verify a built bundle and smoke-test its runtime")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a manifest file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the bundling environment",
	Long: `Run diagnostic checks on the build machine and, when a bundle exists,
on the bundle itself. Every failing check prints the remediation step to take.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	if checkManifest != "" {
		return runManifestCheck(cmd, checkManifest)
	}

	anyFlag := checkToolchain || checkTessdata || checkLibraries || checkBundleTree

	target, err := resolveTarget(doctorPlatform)
	if err != nil {
		return err
	}
	m, err := manifest.Load(doctorManifest)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	failed := 0

	runCheck := func(enabled bool, check func() error) {
		if anyFlag && !enabled {
			return
		}
		if err := check(); err != nil {
			failed++
		}
	}

	runCheck(checkToolchain, func() error { return doctor.CheckToolchain(ctx, out, m, target) })
	runCheck(checkTessdata, func() error { return doctor.CheckTrainedData(out, m, target) })
	runCheck(checkLibraries, func() error { return doctor.CheckLibraries(out, m, target) })
	runCheck(checkBundleTree, func() error {
		dir := doctorDir
		if dir == "" {
			t, ok := m.Target(string(target))
			if !ok {
				fmt.Fprintln(out, "Bundle check:")
				fmt.Fprintf(out, "  [WARN] manifest declares no %s target; pass --bundle to check a tree\n", target)
				return nil
			}
			dir = t.Bundle
		}
		return doctor.CheckBundle(ctx, out, m, target, dir)
	})

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "✓ All checks passed.")
	return nil
}

func runManifestCheck(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		m, err := manifest.Parse(path)
		if err != nil {
			fmt.Fprintln(out, "  [ OK ] Valid manifest")
			return nil
		}
		fmt.Fprintf(out, "  [ OK ] Valid bundle manifest: %s (v%s)\n", m.Name, m.Version)
		return nil
	}

	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(out, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
