package trips

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/sojourn/pkg/printers"
	"tableflip.dev/sojourn/pkg/store"
)

type Trips struct {
	Persistence store.Persistence
}

func (n *Trips) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list trips, no persistence")
	}

	pp := printers.PrettyPrint{}
	pp.Title("Trips")

	all := n.Persistence.Trips(ctx)
	rows := make([][]string, 0, len(all))
	for _, m := range all {
		rows = append(rows, []string{
			m.ID,
			m.Name,
			fmt.Sprintf("%d days", m.Days),
			fmt.Sprintf("%d items", m.Items),
		})
	}
	pp.Grid(rows)
	return nil
}
