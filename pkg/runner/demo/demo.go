package demo

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/sojourn/pkg/store"
	"tableflip.dev/sojourn/pkg/trip"
)

type Demo struct {
	ID string

	Persistence store.Persistence
}

func (n *Demo) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not seed demo, no persistence")
	}
	id := n.ID
	if id == "" {
		id = "alps"
	}
	if err := n.Persistence.Save(id, trip.Sample()); err != nil {
		return err
	}
	fmt.Printf("seeded demo trip %q\n", id)
	return nil
}
