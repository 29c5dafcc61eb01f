package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "sojourn",
		Short: base.Wrap80("Compose and export trip itineraries from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addTrips(topLevel)
	addPreview(topLevel)
	addExport(topLevel)
	addEdit(topLevel)
	addPages(topLevel)
	addDemo(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
