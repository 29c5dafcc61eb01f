package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sojourn/pkg/commands/options"
	"tableflip.dev/sojourn/pkg/export"
	exportrun "tableflip.dev/sojourn/pkg/runner/export"
	"tableflip.dev/sojourn/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	ro := &options.RenderOptions{}
	co := &options.CommitOptions{}
	out := ""

	validArgs := make([]string, 0, 4)
	for _, f := range export.Formats() {
		validArgs = append(validArgs, string(f))
	}

	cmd := &cobra.Command{
		Use:   "export [format]",
		Short: "export a trip to a file",
		Example: `
sojourn export json -t alps
sojourn export pdf -t alps --template compact -o alps.pdf
sojourn export ical -t alps --autofill --commit
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
			s := exportrun.Export{
				Trip:        to.Trip,
				Format:      format,
				Options:     opts,
				Out:         out,
				AutoFill:    ro.AutoFill,
				Commit:      co.Commit,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTripArgs(cmd, to)
	options.AddRenderArgs(cmd, ro)
	options.AddCommitArgs(cmd, co)
	cmd.Flags().StringVarP(&out, "out", "o", "",
		"Output file path; defaults to the trip name plus the format extension.")

	topLevel.AddCommand(cmd)
}
