// Package commands implements the CLI commands for the nudge reminder engine.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/nudge/internal/build"
)

// CLI represents the command line interface for nudge.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Sync(ctx context.Context, planPath string) error
	Pending(ctx context.Context) ([]string, error)
	Cancel(ctx context.Context, domainName, entity string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nudge",
		Short:         "Local reminder scheduling engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("plan", "f", "nudge.yaml", "Path to plan file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newPendingCmd())
	rootCmd.AddCommand(c.newCancelCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
