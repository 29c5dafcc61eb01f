// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// TripOptions selects the stored trip a command works on.
type TripOptions struct {
	Trip string
}

// AddTripArgs wires the trip selection flag on the provided command.
func AddTripArgs(cmd *cobra.Command, o *TripOptions) {
	cmd.Flags().StringVarP(&o.Trip, "trip", "t", "",
		"Specify the trip id.")
	_ = cmd.MarkFlagRequired("trip")
}

// CommitOptions opts an edit into persisting its working copy.
type CommitOptions struct {
	Commit bool
}

// AddCommitArgs wires the commit flag on the provided command.
func AddCommitArgs(cmd *cobra.Command, o *CommitOptions) {
	cmd.Flags().BoolVar(&o.Commit, "commit", false,
		"Persist the edited working copy back to the store.")
}
