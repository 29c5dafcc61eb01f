package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sojourn/pkg/commands/options"
	"tableflip.dev/sojourn/pkg/runner/pages"
	"tableflip.dev/sojourn/pkg/scope"
	"tableflip.dev/sojourn/pkg/store"
)

func addPages(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "show the page layout for a trip and density",
		Example: `
sojourn pages -t alps
sojourn pages -t alps --per-page 3 --scope itinerary
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scope.Parse(ro.Scope)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := pages.Pages{
				Trip:        to.Trip,
				Scope:       s,
				PerPage:     ro.PerPage,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	options.AddTripArgs(cmd, to)
	options.AddRenderArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
