package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stamp/internal/core/domain"
)

func (c *CLI) newManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the current asset manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := make(map[string]any)
			flags := cmd.Flags()
			if flags.Changed("manifest") {
				v, _ := flags.GetString("manifest")
				overrides[domain.OptManifest] = v
			}
			if flags.Changed("path") {
				v, _ := flags.GetString("path")
				overrides[domain.OptPath] = v
			}
			return c.app.PrintManifest(overrides)
		},
	}

	flags := cmd.Flags()
	flags.String("manifest", "assets.json", "Manifest filename")
	flags.String("path", ".", "Directory the manifest file lives in")

	return cmd
}
