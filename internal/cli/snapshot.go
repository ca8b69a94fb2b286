package cli

import (
	"fmt"

	"github.com/runoshun/classclock/internal/app"
	"github.com/runoshun/classclock/internal/domain"
	"github.com/runoshun/classclock/internal/usecase"
	"github.com/spf13/cobra"
)

// newSnapshotCommand creates the snapshot command.
func newSnapshotCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Output string
		Size   int
	}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the clock face to a PNG",
		Long: `Render the analog clock face for the current instant to a PNG file.

The remaining part of the current activity is drawn as a coloured wedge.`,
		Example: `  classclock snapshot
  classclock snapshot -o face.png --size 800 --at "1:30 PM"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("size") {
				opts.Size = c.Config.Snapshot.Size
			}
			out, err := c.WriteSnapshotUseCase().Execute(cmd.Context(), usecase.WriteSnapshotInput{
				Path:          opts.Output,
				Size:          opts.Size,
				SoonThreshold: c.Config.Display.SoonThreshold,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", out.Path, out.View.Headline())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", domain.DefaultSnapshotPath, "Output file")
	cmd.Flags().IntVar(&opts.Size, "size", 0, "Image edge length in pixels (default from config)")

	return cmd
}
