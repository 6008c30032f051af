package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List all pending reminder identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := c.app.Pending(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
