package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/sojourn/pkg/commands/options"
	"tableflip.dev/sojourn/pkg/draft"
	"tableflip.dev/sojourn/pkg/runner/edit"
	"tableflip.dev/sojourn/pkg/store"
	"tableflip.dev/sojourn/pkg/trip"
)

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "edit a trip's working copy",
		Long: "Edit operations open a fresh working copy, apply the change, and show " +
			"the result. Nothing is persisted unless --commit is passed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEditReorder(cmd)
	addEditSet(cmd)
	addEditRemove(cmd)
	addEditAutofill(cmd)

	topLevel.AddCommand(cmd)
}

func addEditReorder(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	co := &options.CommitOptions{}
	var date string
	var from, to2 int

	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "move an item within its day",
		Example: `
sojourn edit reorder -t alps --date 2026-04-01 --from 2 --to 0 --commit
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Reorder{
				Trip:        to.Trip,
				Date:        date,
				From:        from,
				To:          to2,
				Commit:      co.Commit,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTripArgs(cmd, to)
	options.AddCommitArgs(cmd, co)
	cmd.Flags().StringVar(&date, "date", "", "Day to reorder within (YYYY-MM-DD).")
	cmd.Flags().IntVar(&from, "from", 0, "Current item position.")
	cmd.Flags().IntVar(&to2, "to", 0, "New item position.")
	_ = cmd.MarkFlagRequired("date")

	topLevel.AddCommand(cmd)
}

func addEditRemove(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	co := &options.CommitOptions{}
	var date string
	var index int

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "remove an item from its day",
		Example: `
sojourn edit remove -t alps --date 2026-04-01 --index 1 --commit
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Remove{
				Trip:        to.Trip,
				Date:        date,
				Index:       index,
				Commit:      co.Commit,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTripArgs(cmd, to)
	options.AddCommitArgs(cmd, co)
	cmd.Flags().StringVar(&date, "date", "", "Day holding the item (YYYY-MM-DD).")
	cmd.Flags().IntVar(&index, "index", 0, "Item position within the day.")
	_ = cmd.MarkFlagRequired("date")

	topLevel.AddCommand(cmd)
}

func addEditSet(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	co := &options.CommitOptions{}
	var date string
	var index int
	var name, start, end, origin, destination, mode, currency, description string
	var gate, platform string
	var cost float64
	var rating int
	var tags []string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "update fields on an item",
		Example: `
sojourn edit set -t alps --date 2026-04-01 --index 0 --name "Flight AMS to ZRH" --gate D07
sojourn edit set -t alps --date 2026-04-02 --index 1 --rating 5 --tags hike,views --commit
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := draft.Patch{}
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("start") {
				c, err := trip.ParseClock(start)
				if err != nil {
					return err
				}
				patch.Start = &c
			}
			if flags.Changed("end") {
				c, err := trip.ParseClock(end)
				if err != nil {
					return err
				}
				patch.End = &c
			}
			if flags.Changed("origin") {
				patch.Origin = &origin
			}
			if flags.Changed("destination") {
				patch.Destination = &destination
			}
			if flags.Changed("mode") {
				m, err := trip.ParseMode(mode)
				if err != nil {
					return err
				}
				patch.Mode = &m
			}
			if flags.Changed("cost") {
				patch.Cost = &cost
			}
			if flags.Changed("currency") {
				patch.Currency = &currency
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("rating") {
				patch.Rating = &rating
			}
			if flags.Changed("tags") {
				patch.Tags = tags
			}
			if flags.Changed("gate") {
				patch.Gate = &gate
			}
			if flags.Changed("platform") {
				patch.Platform = &platform
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Set{
				Trip:        to.Trip,
				Date:        date,
				Index:       index,
				Patch:       patch,
				Commit:      co.Commit,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTripArgs(cmd, to)
	options.AddCommitArgs(cmd, co)
	cmd.Flags().StringVar(&date, "date", "", "Day holding the item (YYYY-MM-DD).")
	cmd.Flags().IntVar(&index, "index", 0, "Item position within the day.")
	cmd.Flags().StringVar(&name, "name", "", "Item name.")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM).")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM).")
	cmd.Flags().StringVar(&origin, "origin", "", "Transport origin label.")
	cmd.Flags().StringVar(&destination, "destination", "", "Transport destination label.")
	cmd.Flags().StringVar(&mode, "mode", "", "Transport mode: flight, train, drive, walk or border.")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Item cost.")
	cmd.Flags().StringVar(&currency, "currency", "", "Cost currency code.")
	cmd.Flags().StringVar(&description, "description", "", "Free-text description.")
	cmd.Flags().IntVar(&rating, "rating", 0, "Rating 0-5.")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Tags, comma separated.")
	cmd.Flags().StringVar(&gate, "gate", "", "Flight gate.")
	cmd.Flags().StringVar(&platform, "platform", "", "Train platform.")
	_ = cmd.MarkFlagRequired("date")

	topLevel.AddCommand(cmd)
}

func addEditAutofill(topLevel *cobra.Command) {
	to := &options.TripOptions{}
	co := &options.CommitOptions{}

	cmd := &cobra.Command{
		Use:   "autofill",
		Short: "backfill transport fields from item text",
		Example: `
sojourn edit autofill -t alps
sojourn edit autofill -t alps --commit
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.AutoFill{
				Trip:        to.Trip,
				Commit:      co.Commit,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTripArgs(cmd, to)
	options.AddCommitArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
