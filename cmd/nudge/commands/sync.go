package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile all reminders against the plan file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			planPath, err := cmd.Flags().GetString("plan")
			if err != nil {
				return err
			}
			return c.app.Sync(cmd.Context(), planPath)
		},
	}
}
