package pages

import (
	"context"
	"errors"

	"tableflip.dev/sojourn/pkg/draft"
	"tableflip.dev/sojourn/pkg/paginate"
	"tableflip.dev/sojourn/pkg/printers"
	"tableflip.dev/sojourn/pkg/scope"
	"tableflip.dev/sojourn/pkg/store"
)

type Pages struct {
	Trip    string
	Scope   scope.Scope
	PerPage int

	Persistence store.Persistence
}

func (n *Pages) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not page, no persistence")
	}

	data, err := n.Persistence.Load(ctx, n.Trip)
	if err != nil {
		return err
	}

	snapshot := draft.New(data).Snapshot()
	laid := paginate.Paginate(snapshot, scope.Resolve(n.Scope, snapshot), n.PerPage)

	pp := printers.PrettyPrint{}
	pp.Pages(laid)
	return nil
}
