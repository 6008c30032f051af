package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <domain> <entity>",
		Short: "Cancel a single one-shot reminder immediately",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Cancel(cmd.Context(), args[0], args[1])
		},
	}
}
