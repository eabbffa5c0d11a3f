package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cbuild/internal/adapters/watcher"
	"go.trai.ch/cbuild/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild automatically when sources change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, _ := cmd.Flags().GetString("cc")
			debounce, _ := cmd.Flags().GetDuration("debounce")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				CC:       cc,
				Debounce: debounce,
			})
		},
	}

	cmd.Flags().String("cc", "", "Override the configured C compiler")
	cmd.Flags().Duration("debounce", watcher.DefaultDebounceWindow,
		"Window for coalescing file events into one rebuild")

	return cmd
}
