// Package commands implements the CLI commands for the cbuild tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cbuild/internal/app"
	"go.trai.ch/cbuild/internal/build"
	embedgen "go.trai.ch/cbuild/internal/engine/embed"
)

// CLI represents the command line interface for cbuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Clean(ctx context.Context) error
	Watch(ctx context.Context, opts app.WatchOptions) error
	Embed(ctx context.Context, src, out string, kind embedgen.Kind) error
}

// New creates a new CLI instance with the given app. Running the root
// command without a subcommand performs an incremental build.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cbuild",
		Short:         "An incremental build tool for C projects",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, _ := cmd.Flags().GetString("cc")
			return a.Build(cmd.Context(), app.BuildOptions{CC: cc})
		},
	}

	rootCmd.Flags().String("cc", "", "Override the configured C compiler")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newEmbedCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
