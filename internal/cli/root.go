package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tessbundle-labs/tessbundle/internal/branding"
	"github.com/tessbundle-labs/tessbundle/internal/config"
	"github.com/tessbundle-labs/tessbundle/internal/manifest"
	"github.com/tessbundle-labs/tessbundle/internal/platform"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` packages a private Tesseract OCR runtime — executable, trained
data, and shared libraries — into desktop application bundles, so the shipped
app performs OCR without a system-wide Tesseract installation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// resolveTarget parses the --platform flag, defaulting to the host platform.
func resolveTarget(flag string) (platform.Target, error) {
	if flag == "" {
		return platform.Current(), nil
	}
	return platform.Parse(flag)
}

// loadManifestForTarget loads and validates the manifest, resolves the
// target platform, and returns the target's bundle directory. A --bundle
// override wins over the manifest's target block.
func loadManifestForTarget(manifestPath, platformFlag, bundleOverride string) (*manifest.Manifest, platform.Target, string, error) {
	target, err := resolveTarget(platformFlag)
	if err != nil {
		return nil, "", "", err
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, "", "", err
	}

	bundleDir := bundleOverride
	if bundleDir == "" {
		t, ok := m.Target(string(target))
		if !ok {
			return nil, "", "", fmt.Errorf("manifest declares no %s target (add targets.%s.bundle or pass --bundle)", target, target)
		}
		bundleDir = t.Bundle
	}

	return m, target, bundleDir, nil
}
