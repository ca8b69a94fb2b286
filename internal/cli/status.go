package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/runoshun/classclock/internal/app"
	"github.com/runoshun/classclock/internal/domain"
	"github.com/runoshun/classclock/internal/usecase"
	"github.com/spf13/cobra"
)

// newStatusCommand creates the status command.
func newStatusCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print a one-line status",
		Long: `Print the current activity as a single line and exit.

The line layout comes from --format or [statusbar] format in the config.
Placeholders:
  {clock}      current time, e.g. 10:12 AM
  {activity}   current activity
  {remaining}  time left, e.g. 3 minutes left
  {countdown}  time left as H:MM:SS
  {next}       next activity
  {live}       LIVE when the current activity is live

Once the day is over the line is just "` + domain.HeadlineEnded + `".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("format") {
				format = c.Config.Statusbar.Format
			}
			out, err := c.ShowStatusUseCase().Execute(cmd.Context(), usecase.ShowStatusInput{
				Format:        format,
				SoonThreshold: c.Config.Display.SoonThreshold,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Line)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Status line format (default from config)")

	return cmd
}

// newStatusbarCommand creates the statusbar command.
func newStatusbarCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format   string
		OnChange string
		Sink     string
		Period   time.Duration
	}

	cmd := &cobra.Command{
		Use:   "statusbar",
		Short: "Publish the status line to a status bar",
		Long: `Publish the status line to a status bar on every tick. Runs until interrupted.

Sinks:
  x11   name of the X root window, shown by window managers such as dwm
        (requires DISPLAY)
  tmux  status-right of the enclosing tmux server (requires TMUX)

--on-change (or [statusbar] on_change) runs a shell command each time the
current activity changes, with the status placeholders expanded, e.g.
  classclock statusbar --on-change 'notify-send "{activity}" "{remaining}"'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("format") {
				opts.Format = c.Config.Statusbar.Format
			}
			if !cmd.Flags().Changed("period") {
				opts.Period = c.Config.Tick.Period
			}
			if !cmd.Flags().Changed("on-change") {
				opts.OnChange = c.Config.Statusbar.OnChange
			}
			if !cmd.Flags().Changed("sink") {
				opts.Sink = c.Config.Statusbar.Sink
			}
			if err := domain.ValidateSink(opts.Sink); err != nil {
				return err
			}

			sink, err := c.OpenStatusSink(opts.Sink)
			if err != nil {
				return err
			}

			// Setup signal handling for graceful shutdown
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return c.RunStatusbarUseCase(sink).Execute(ctx, usecase.RunStatusbarInput{
				Format:        opts.Format,
				Period:        opts.Period,
				SoonThreshold: c.Config.Display.SoonThreshold,
				OnChange:      opts.OnChange,
				Dir:           c.WorkDir,
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Status line format (default from config)")
	cmd.Flags().DurationVarP(&opts.Period, "period", "p", 0, "Tick period (default from config)")
	cmd.Flags().StringVarP(&opts.Sink, "sink", "s", "", "Status bar sink: x11 or tmux (default from config)")
	cmd.Flags().StringVar(&opts.OnChange, "on-change", "", "Shell command run when the activity changes (default from config)")

	return cmd
}
