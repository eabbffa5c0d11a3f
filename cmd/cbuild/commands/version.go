package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cbuild/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("cbuild version %s (commit: %s, date: %s)\n",
				build.Version, build.Commit, build.Date)
			return nil
		},
	}
}
