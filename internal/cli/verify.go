package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tessbundle-labs/tessbundle/internal/bundle"
	"github.com/tessbundle-labs/tessbundle/internal/manifest"
)

var (
	verifyManifest string
	verifyPlatform string
	verifyDir      string
)

func init() {
	verifyCmd.Flags().StringVarP(&verifyManifest, "manifest", "m", manifest.DefaultFileName, "Path to the bundle manifest")
	verifyCmd.Flags().StringVar(&verifyPlatform, "platform", "", "Target platform (darwin, windows, linux); defaults to the host")
	verifyCmd.Flags().StringVar(&verifyDir, "bundle", "", "Bundle directory; overrides the manifest target")
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that a built bundle contains every expected artifact",
	Long: `Walk the bundle's expected resource tree and report each artifact as
present or missing. The command fails when any mandatory artifact is absent
or the bundled executable lost its execute permission. No Tesseract
installation is needed on the verifying machine.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	m, target, dir, err := loadManifestForTarget(verifyManifest, verifyPlatform, verifyDir)
	if err != nil {
		return err
	}

	plan := bundle.DestTree(m, target, dir)
	res := plan.Verify(cmd.OutOrStdout())

	fmt.Fprintln(cmd.OutOrStdout())
	if !res.OK() {
		return fmt.Errorf("bundle %s is incomplete: %d mandatory artifact(s) missing", dir, res.MissingRequired)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Bundle %s is complete (%d artifacts present", dir, res.Present)
	if res.MissingOptional > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), ", %d optional not bundled", res.MissingOptional)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ").")
	return nil
}
