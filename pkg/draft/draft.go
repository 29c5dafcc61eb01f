// Package draft implements the working copy: a deep-cloned, edit-until-
// committed snapshot of a trip. Every edit operation acts only here; the
// source data is never touched.
package draft

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"tableflip.dev/sojourn/pkg/extract"
	"tableflip.dev/sojourn/pkg/trip"
)

// ErrNotFound signals an edit aimed at an item no longer in the draft.
var ErrNotFound = errors.New("draft: item not found")

// Draft is a single-editor working copy. Operations are synchronous and run
// to completion; there is no locking because there is no interleaving.
type Draft struct {
	data *trip.Data
}

// New clones src and assigns a stable id to every item that lacks one.
// Re-entrant over pre-tagged data: existing ids are preserved.
func New(src *trip.Data) *Draft {
	d := &Draft{data: src.Clone()}
	d.assignStableIDs()
	return d
}

func (d *Draft) assignStableIDs() {
	seen := make(map[string]string, d.data.Itinerary.Items())
	for _, date := range d.data.Itinerary.Days() {
		for _, it := range d.data.Itinerary[date] {
			if it.ID == "" {
				it.ID = uuid.NewString()
			}
			if prev, dup := seen[it.ID]; dup {
				// Duplicate stable ids break edit addressing; this is a
				// programming error, never user input.
				panic(fmt.Sprintf("draft: duplicate stable id %s on %q and %q", it.ID, prev, it.Name))
			}
			seen[it.ID] = it.Name
		}
	}
}

// Data exposes the live working copy for rendering previews. Callers must
// not hold references across edits.
func (d *Draft) Data() *trip.Data { return d.data }

// Items returns the live sequence for one day.
func (d *Draft) Items(date string) []*trip.Item { return d.data.Itinerary[date] }

// Reorder moves one item within its day. Equal or out-of-range indices are
// silently ignored; drag interactions routinely fire no-op drags.
func (d *Draft) Reorder(date string, from, to int) {
	items := d.data.Itinerary[date]
	if from == to || from < 0 || to < 0 || from >= len(items) || to >= len(items) {
		return
	}
	it := items[from]
	items = append(items[:from], items[from+1:]...)
	items = append(items[:to], append([]*trip.Item{it}, items[to:]...)...)
	d.data.Itinerary[date] = items
}

// UpdateItem merges patch over the item with the given id, wherever it
// currently lives. The id itself is never part of the merge.
func (d *Draft) UpdateItem(id string, patch Patch) error {
	date, idx, ok := d.find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	it := d.data.Itinerary[date][idx]
	patch.apply(it)
	it.ID = id
	return nil
}

// RemoveItem deletes the item with the given id. Removing an absent id is a
// no-op so duplicate removal requests stay harmless.
func (d *Draft) RemoveItem(id string) {
	date, idx, ok := d.find(id)
	if !ok {
		return
	}
	items := d.data.Itinerary[date]
	d.data.Itinerary[date] = append(items[:idx], items[idx+1:]...)
}

// AutoFillTransportFields backfills empty destination and arrival fields on
// transport items from their own text. Already-filled fields are never
// overwritten, so re-running is a no-op. Returns the number of fields set.
func (d *Draft) AutoFillTransportFields() int {
	filled := 0
	for _, date := range d.data.Itinerary.Days() {
		for _, it := range d.data.Itinerary[date] {
			if it.Kind != trip.KindTransport {
				continue
			}
			f := extract.TransportFields(it)
			if it.Destination == "" && f.Destination != "" {
				it.Destination = f.Destination
				filled++
			}
			if it.End.IsZero() && !f.Arrival.IsZero() {
				it.End = f.Arrival
				filled++
			}
		}
	}
	return filled
}

// Snapshot returns a detached deep copy with stable ids stripped, ready for
// the serializers or the commit-back channel. Later edits to the draft do
// not affect a snapshot already taken.
func (d *Draft) Snapshot() *trip.Data {
	dup := d.data.Clone()
	for _, items := range dup.Itinerary {
		for _, it := range items {
			it.ID = ""
		}
	}
	return dup
}

// find resolves an id to its current bucket and position. The result is
// computed on demand and never cached across mutations.
func (d *Draft) find(id string) (string, int, bool) {
	for date, items := range d.data.Itinerary {
		for idx, it := range items {
			if it.ID == id {
				return date, idx, true
			}
		}
	}
	return "", 0, false
}
