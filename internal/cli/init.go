package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tessbundle-labs/tessbundle/internal/config"
	"github.com/tessbundle-labs/tessbundle/internal/manifest"
	"github.com/tessbundle-labs/tessbundle/internal/scaffold"
)

var (
	initApp    string
	initOutput string
	initForce  bool
)

func init() {
	initCmd.Flags().StringVar(&initApp, "app", "", "Application name (defaults to the configured app)")
	initCmd.Flags().StringVarP(&initOutput, "output", "o", manifest.DefaultFileName, "Where to write the manifest")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing manifest")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter bundle manifest",
	Long: `Generate a bundle.yaml pre-filled with the stock artifact set: the
tesseract executable, English and Japanese trained data, and the four image
libraries, with one target per supported platform.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := initApp
		if app == "" {
			app = config.Get(config.KeyApp)
		}

		data := scaffold.NewData(app)
		if err := scaffold.Generate(data, initOutput, initForce); err != nil {
			return fmt.Errorf("generating manifest: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s for %s.\n", initOutput, app)
		fmt.Fprintf(cmd.OutOrStdout(), "  Edit the targets to match your build output, then run `%s bundle`.\n", rootCmd.Use)
		return nil
	},
}
