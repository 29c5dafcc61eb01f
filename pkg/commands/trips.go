package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sojourn/pkg/runner/trips"
	"tableflip.dev/sojourn/pkg/store"
)

func addTrips(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "list stored trips",
		Example: `
sojourn trips
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := trips.Trips{Persistence: p}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
