package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sojourn/pkg/commands/options"
	"tableflip.dev/sojourn/pkg/draft"
	"tableflip.dev/sojourn/pkg/scope"
	"tableflip.dev/sojourn/pkg/store"
	"tableflip.dev/sojourn/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "browse the paginated preview interactively",
		Example: `
sojourn ui -t alps
sojourn ui -t alps --template compact --per-page 3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scope.Parse(ro.Scope)
			if err != nil {
				return err
			}
			tpl, err := scope.ParseTemplate(ro.Template)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			data, err := p.Load(context.Background(), to.Trip)
			if err != nil {
				return err
			}
			d := draft.New(data)
			if ro.AutoFill {
				d.AutoFillTransportFields()
			}
			return tui.Run(d, s, tpl, ro.PerPage)
		},
	}

	options.AddTripArgs(cmd, to)
	options.AddRenderArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
