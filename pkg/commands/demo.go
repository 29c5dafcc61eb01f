package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sojourn/pkg/runner/demo"
	"tableflip.dev/sojourn/pkg/store"
)

func addDemo(topLevel *cobra.Command) {
	id := ""

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "seed a sample trip",
		Example: `
sojourn demo
sojourn demo --id weekend
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := demo.Demo{ID: id, Persistence: p}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&id, "id", "alps", "Trip id to seed.")

	topLevel.AddCommand(cmd)
}
