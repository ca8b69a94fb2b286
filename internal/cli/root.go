// Package cli provides the command-line interface for classclock.
package cli

import (
	"fmt"

	"github.com/runoshun/classclock/internal/app"
	"github.com/runoshun/classclock/internal/domain"
	"github.com/runoshun/classclock/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupClock = "clock"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = tui.Run

// NewRootCommand creates the root command for classclock.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var at string

	root := &cobra.Command{
		Use:   "classclock",
		Short: "Classroom day clock",
		Long: `classclock shows where the class is in today's schedule.

It generates the fixed classroom schedule for the current weekday and
tracks the current activity, the time left in it and what comes next.
Running it without a subcommand opens the live clock in the terminal.

Use --at to pretend the current time is a different time of day,
for example --at "10:12 AM".`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			if at != "" {
				tod, err := domain.ParseTimeOfDay(at)
				if err != nil {
					return err
				}
				c.Clock = domain.ClockAt(c.Clock, tod)
			}

			if cmd.Name() == "init" {
				return nil
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVar(&at, "at", "", `Use this time of day instead of now (e.g. "2:30 PM" or "14:30")`)

	root.AddGroup(
		&cobra.Group{ID: groupClock, Title: "Clock Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	clockCmds := []*cobra.Command{
		newTUICommand(c),
		newScheduleCommand(c),
		newStatusCommand(c),
		newStatusbarCommand(c),
		newSnapshotCommand(c),
	}
	for _, cmd := range clockCmds {
		cmd.GroupID = groupClock
		root.AddCommand(cmd)
	}

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup
	root.AddCommand(configCmd)

	return root
}
