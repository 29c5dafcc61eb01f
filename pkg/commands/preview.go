package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sojourn/pkg/commands/options"
	"tableflip.dev/sojourn/pkg/export"
	"tableflip.dev/sojourn/pkg/runner/preview"
	"tableflip.dev/sojourn/pkg/store"
)

func addPreview(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	ro := &options.RenderOptions{}

	validArgs := make([]string, 0, 4)
	for _, f := range export.Formats() {
		validArgs = append(validArgs, string(f))
	}

	cmd := &cobra.Command{
		Use:   "preview [format]",
		Short: "preview an export without writing a file",
		Long: fmt.Sprintf("Render a trip in one of the output formats and print the result.\n\nFormats: %s",
			strings.Join(validArgs, ", ")),
		Example: `
sojourn preview text -t alps
sojourn preview ical -t alps
sojourn preview pdf -t alps --scope itinerary,budget --per-page 3
`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(args[0])
			if err != nil {
				return err
			}
			opts, err := ro.Resolve()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := preview.Preview{
				Trip:        to.Trip,
				Format:      format,
				Options:     opts,
				AutoFill:    ro.AutoFill,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTripArgs(cmd, to)
	options.AddRenderArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
