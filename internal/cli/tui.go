package cli

import (
	"github.com/runoshun/classclock/internal/app"
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command for launching the live clock.
// It is the same as running classclock without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the live clock",
		Long: `Open the live clock in the terminal.

Shows an analog face, the current activity with the time left in it,
the next activity and a timeline of the whole day.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}
