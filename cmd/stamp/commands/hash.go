package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stamp/internal/core/domain"
)

func (c *CLI) newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [paths|globs|dirs...]",
		Short: "Hash asset files and update the manifest",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Hash(args, overridesFromFlags(cmd))
		},
	}

	flags := cmd.Flags()
	flags.String("hasher", "sha1", "Digest algorithm (see 'stamp algorithms')")
	flags.String("key", "aH4urS", "Literal key prefixed to every digest")
	flags.Int("length", 8, "Maximum number of digest characters retained")
	flags.String("template", domain.DefaultTemplate, "Hashed filename template")
	flags.Bool("replace", false, "Delete the original once the artifact is written")
	flags.Bool("save", true, "Write the artifact file (false computes only)")
	flags.String("manifest", "assets.json", "Manifest filename; empty disables persistence")
	flags.String("base", ".", "Base directory all recorded paths are relative to")
	flags.String("path", ".", "Directory the manifest file is written into")

	return cmd
}

// overridesFromFlags maps explicitly set flags to option overrides, so flag
// defaults never clobber configuration file values.
func overridesFromFlags(cmd *cobra.Command) map[string]any {
	overrides := make(map[string]any)
	flags := cmd.Flags()

	stringFlags := map[string]string{
		"hasher":   domain.OptHasher,
		"key":      domain.OptHashKey,
		"template": domain.OptTemplate,
		"manifest": domain.OptManifest,
		"base":     domain.OptBase,
		"path":     domain.OptPath,
	}
	for flagName, opt := range stringFlags {
		if flags.Changed(flagName) {
			v, _ := flags.GetString(flagName)
			overrides[opt] = v
		}
	}

	if flags.Changed("length") {
		v, _ := flags.GetInt("length")
		overrides[domain.OptLength] = v
	}
	if flags.Changed("replace") {
		v, _ := flags.GetBool("replace")
		overrides[domain.OptReplace] = v
	}
	if flags.Changed("save") {
		v, _ := flags.GetBool("save")
		overrides[domain.OptSave] = v
	}

	return overrides
}
