package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/runoshun/classclock/internal/app"
	"github.com/runoshun/classclock/internal/domain"
	"github.com/runoshun/classclock/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// newScheduleCommand creates the schedule command.
func newScheduleCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Date   string
		Format string
	}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the schedule for a day",
		Long: `Print the generated schedule for a day.

Defaults to today. The schedule depends only on the weekday: Monday,
Wednesday and Friday share one workshop order, the other days share
another, and the afternoon special rotates through the week.

Output formats:
  text  aligned table (default)
  yaml  YAML document`,
		Example: `  classclock schedule
  classclock schedule --date 2026-10-15
  classclock schedule --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var date time.Time
			if opts.Date != "" {
				d, err := time.ParseInLocation(dateLayout, opts.Date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", opts.Date, err)
				}
				date = d
			}

			out, err := c.ShowScheduleUseCase().Execute(cmd.Context(), usecase.ShowScheduleInput{Date: date})
			if err != nil {
				return err
			}

			switch opts.Format {
			case domain.ScheduleFormatText:
				printScheduleText(cmd.OutOrStdout(), out)
				return nil
			case domain.ScheduleFormatYAML:
				return printScheduleYAML(cmd.OutOrStdout(), out)
			default:
				return fmt.Errorf("%w: %q", domain.ErrInvalidFormat, opts.Format)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "Day to print (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", domain.DefaultScheduleFmt, "Output format: text or yaml")

	return cmd
}

// printScheduleText prints the schedule as an aligned table.
func printScheduleText(w io.Writer, out *usecase.ShowScheduleOutput) {
	_, _ = fmt.Fprintf(w, "%s %s (%s)\n\n", out.Date.Weekday(), out.Date.Format(dateLayout), out.Class)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "START\tACTIVITY\tLIVE")
	for _, e := range out.Schedule {
		live := ""
		if e.Live {
			live = "yes"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", e.StartTime.Format("3:04 PM"), e.Activity, live)
	}
}

type scheduleDocument struct {
	Date    string          `yaml:"date"`
	Weekday string          `yaml:"weekday"`
	Class   string          `yaml:"class"`
	Entries []scheduleEntry `yaml:"entries"`
}

type scheduleEntry struct {
	Start    string `yaml:"start"`
	Activity string `yaml:"activity"`
	Live     bool   `yaml:"live"`
}

// printScheduleYAML prints the schedule as a YAML document.
func printScheduleYAML(w io.Writer, out *usecase.ShowScheduleOutput) error {
	doc := scheduleDocument{
		Date:    out.Date.Format(dateLayout),
		Weekday: out.Date.Weekday().String(),
		Class:   out.Class.String(),
		Entries: make([]scheduleEntry, 0, len(out.Schedule)),
	}
	for _, e := range out.Schedule {
		doc.Entries = append(doc.Entries, scheduleEntry{
			Start:    e.StartTime.Format("15:04"),
			Activity: e.Activity,
			Live:     e.Live,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	return enc.Close()
}
