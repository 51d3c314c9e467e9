package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tessbundle-labs/tessbundle/internal/bundle"
	"github.com/tessbundle-labs/tessbundle/internal/manifest"
	"github.com/tessbundle-labs/tessbundle/internal/tesseract"
)

var (
	bundleManifest string
	bundlePlatform string
	bundleDir      string
	bundleDryRun   bool
)

func init() {
	bundleCmd.Flags().StringVarP(&bundleManifest, "manifest", "m", manifest.DefaultFileName, "Path to the bundle manifest")
	bundleCmd.Flags().StringVar(&bundlePlatform, "platform", "", "Target platform (darwin, windows, linux); defaults to the host")
	bundleCmd.Flags().StringVar(&bundleDir, "bundle", "", "Bundle directory; overrides the manifest target")
	bundleCmd.Flags().BoolVar(&bundleDryRun, "dry-run", false, "Print the copy plan without copying")
	rootCmd.AddCommand(bundleCmd)
}

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Copy the Tesseract runtime into an application bundle",
	Long: `Copy the Tesseract executable, trained-data files, and shared libraries
declared in the bundle manifest into the application bundle's resource tree.
Missing optional libraries are skipped with a warning; a missing mandatory
artifact aborts the run.`,
	Args: cobra.NoArgs,
	RunE: runBundle,
}

func runBundle(cmd *cobra.Command, args []string) error {
	m, target, dir, err := loadManifestForTarget(bundleManifest, bundlePlatform, bundleDir)
	if err != nil {
		return err
	}

	inst, err := tesseract.Locate(m, target)
	if err != nil {
		return fmt.Errorf("locating tesseract: %w", err)
	}

	plan := bundle.BuildPlan(m, inst, target, dir)
	plan.Print(cmd.OutOrStdout())

	if bundleDryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run — nothing copied.")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Bundling...")
	res, err := plan.Execute(cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("bundling %s: %w", m.Name, err)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Bundled %d artifacts into %s.", res.Copied, dir)
	if res.Skipped > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " %d optional artifacts skipped.", res.Skipped)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
