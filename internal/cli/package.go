package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tessbundle-labs/tessbundle/internal/bundle"
	"github.com/tessbundle-labs/tessbundle/internal/config"
	"github.com/tessbundle-labs/tessbundle/internal/dist"
	"github.com/tessbundle-labs/tessbundle/internal/manifest"
)

var (
	packageManifest string
	packagePlatform string
	packageDir      string
	packageOutput   string
	packageNoVerify bool
)

func init() {
	packageCmd.Flags().StringVarP(&packageManifest, "manifest", "m", manifest.DefaultFileName, "Path to the bundle manifest")
	packageCmd.Flags().StringVar(&packagePlatform, "platform", "", "Target platform (darwin, windows, linux); defaults to the host")
	packageCmd.Flags().StringVar(&packageDir, "bundle", "", "Bundle directory; overrides the manifest target")
	packageCmd.Flags().StringVarP(&packageOutput, "output", "o", "", "Directory for the archive (defaults to the configured output_dir)")
	packageCmd.Flags().BoolVar(&packageNoVerify, "no-verify", false, "Skip bundle verification before archiving")
	rootCmd.AddCommand(packageCmd)
}

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Archive a verified bundle for distribution",
	Long: `Verify the bundle tree, then pack it into a tar.gz (zip on Windows)
and write a checksums.txt with the archive's SHA-256.`,
	Args: cobra.NoArgs,
	RunE: runPackage,
}

func runPackage(cmd *cobra.Command, args []string) error {
	m, target, dir, err := loadManifestForTarget(packageManifest, packagePlatform, packageDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if !packageNoVerify {
		plan := bundle.DestTree(m, target, dir)
		// Verification output is only interesting when something is wrong.
		res := plan.Verify(io.Discard)
		if !res.OK() {
			plan.Verify(out)
			return fmt.Errorf("bundle %s is incomplete; run `%s bundle` first", dir, rootCmd.Use)
		}
		fmt.Fprintf(out, "✓ Bundle verified (%d artifacts).\n", res.Present)
	}

	outputDir := packageOutput
	if outputDir == "" {
		outputDir = config.Get(config.KeyOutputDir)
	}

	archivePath, err := dist.Archive(dir, outputDir, m.Name, m.Version, target)
	if err != nil {
		return fmt.Errorf("archiving bundle: %w", err)
	}
	fmt.Fprintf(out, "✓ Wrote %s.\n", archivePath)

	checksumPath, err := dist.WriteChecksums(archivePath)
	if err != nil {
		return fmt.Errorf("writing checksums: %w", err)
	}
	fmt.Fprintf(out, "✓ Wrote %s.\n", checksumPath)
	return nil
}
