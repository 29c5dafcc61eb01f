// Package edit hosts the CLI edit operations. Each runner opens a fresh
// working copy, applies its operation, prints the affected day, and only
// persists when asked to commit — otherwise the copy is discarded, exactly
// like closing the export surface without saving.
package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/sojourn/pkg/draft"
	"tableflip.dev/sojourn/pkg/printers"
	"tableflip.dev/sojourn/pkg/store"
	"tableflip.dev/sojourn/pkg/trip"
)

func open(ctx context.Context, p store.Persistence, id string) (*draft.Draft, error) {
	if p == nil {
		return nil, errors.New("can not edit, no persistence")
	}
	data, err := p.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return draft.New(data), nil
}

func finish(p store.Persistence, id string, d *draft.Draft, date string, commit bool) error {
	pp := printers.PrettyPrint{}
	if date != "" {
		items := d.Items(date)
		pp.DayTitle(dayIndex(d, date), date, len(items))
		pp.Day(items...)
	}
	if !commit {
		fmt.Println("dry run; pass --commit to persist")
		return nil
	}
	return p.Save(id, d.Snapshot())
}

func dayIndex(d *draft.Draft, date string) int {
	for i, day := range d.Data().Itinerary.Days() {
		if day == date {
			return i + 1
		}
	}
	return 0
}

// Reorder moves one item within a day.
type Reorder struct {
	Trip   string
	Date   string
	From   int
	To     int
	Commit bool

	Persistence store.Persistence
}

func (n *Reorder) Do(ctx context.Context) error {
	d, err := open(ctx, n.Persistence, n.Trip)
	if err != nil {
		return err
	}
	d.Reorder(n.Date, n.From, n.To)
	return finish(n.Persistence, n.Trip, d, n.Date, n.Commit)
}

// Remove deletes the item at a day position, resolving it to its stable id
// first so a stale position never deletes the wrong item.
type Remove struct {
	Trip   string
	Date   string
	Index  int
	Commit bool

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	d, err := open(ctx, n.Persistence, n.Trip)
	if err != nil {
		return err
	}
	items := d.Items(n.Date)
	if n.Index < 0 || n.Index >= len(items) {
		return fmt.Errorf("no item at %s[%d]", n.Date, n.Index)
	}
	d.RemoveItem(items[n.Index].ID)
	return finish(n.Persistence, n.Trip, d, n.Date, n.Commit)
}

// Set patches fields on the item at a day position.
type Set struct {
	Trip   string
	Date   string
	Index  int
	Patch  draft.Patch
	Commit bool

	Persistence store.Persistence
}

func (n *Set) Do(ctx context.Context) error {
	d, err := open(ctx, n.Persistence, n.Trip)
	if err != nil {
		return err
	}
	items := d.Items(n.Date)
	if n.Index < 0 || n.Index >= len(items) {
		return fmt.Errorf("no item at %s[%d]", n.Date, n.Index)
	}
	if err := d.UpdateItem(items[n.Index].ID, n.Patch); err != nil {
		return err
	}
	return finish(n.Persistence, n.Trip, d, n.Date, n.Commit)
}

// AutoFill sweeps transport items for fields latent in their text.
type AutoFill struct {
	Trip   string
	Commit bool

	Persistence store.Persistence
}

func (n *AutoFill) Do(ctx context.Context) error {
	d, err := open(ctx, n.Persistence, n.Trip)
	if err != nil {
		return err
	}
	filled := d.AutoFillTransportFields()
	fmt.Printf("filled %d transport fields\n", filled)

	pp := printers.PrettyPrint{}
	for i, date := range d.Data().Itinerary.Days() {
		transports := make([]*trip.Item, 0)
		for _, it := range d.Items(date) {
			if it.Kind == trip.KindTransport {
				transports = append(transports, it)
			}
		}
		if len(transports) == 0 {
			continue
		}
		pp.DayTitle(i+1, date, len(transports))
		pp.Day(transports...)
	}

	if !n.Commit {
		fmt.Println("dry run; pass --commit to persist")
		return nil
	}
	return n.Persistence.Save(n.Trip, d.Snapshot())
}
