package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported digest algorithms",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range c.app.Algorithms() {
				cmd.Println(name)
			}
		},
	}
}
