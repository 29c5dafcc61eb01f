package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sojourn/pkg/export"
	"tableflip.dev/sojourn/pkg/paginate"
	"tableflip.dev/sojourn/pkg/scope"
)

// RenderOptions captures the scope/template/density knobs shared by every
// rendering command.
type RenderOptions struct {
	Scope    string
	Template string
	PerPage  int
	AutoFill bool
}

// AddRenderArgs wires the rendering flags on the provided command.
func AddRenderArgs(cmd *cobra.Command, o *RenderOptions) {
	cmd.Flags().StringVarP(&o.Scope, "scope", "s", "all",
		"Sections to include: 'all' or a comma list of itinerary,shopping,budget,emergency,packing.")
	cmd.Flags().StringVar(&o.Template, "template", "",
		"Rendering template: journey, compact or ledger.")
	cmd.Flags().IntVarP(&o.PerPage, "per-page", "n", paginate.DefaultPerPage,
		"Itinerary items per page (2-8).")
	cmd.Flags().BoolVar(&o.AutoFill, "autofill", false,
		"Backfill transport fields from item text before rendering.")
}

// Resolve parses the raw flag values into encoder options.
func (o *RenderOptions) Resolve() (export.Options, error) {
	s, err := scope.Parse(o.Scope)
	if err != nil {
		return export.Options{}, err
	}
	tpl, err := scope.ParseTemplate(o.Template)
	if err != nil {
		return export.Options{}, err
	}
	return export.Options{
		Scope:    s,
		Template: tpl,
		PerPage:  paginate.ClampPerPage(o.PerPage),
	}, nil
}
