package draft

import (
	"errors"
	"testing"

	"tableflip.dev/sojourn/pkg/trip"
)

func threeItemDay() *trip.Data {
	return &trip.Data{
		Name: "test",
		Itinerary: trip.Itinerary{
			"2026-04-01": {
				{Kind: trip.KindActivity, Name: "A"},
				{Kind: trip.KindActivity, Name: "B"},
				{Kind: trip.KindActivity, Name: "C"},
			},
		},
	}
}

func names(items []*trip.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestNewAssignsUniqueIDs(t *testing.T) {
	d := New(threeItemDay())
	seen := map[string]bool{}
	for _, it := range d.Items("2026-04-01") {
		if it.ID == "" {
			t.Fatalf("item %q has no stable id", it.Name)
		}
		if seen[it.ID] {
			t.Fatalf("duplicate stable id %s", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestNewDoesNotTouchSource(t *testing.T) {
	src := threeItemDay()
	d := New(src)
	d.Reorder("2026-04-01", 0, 2)
	d.RemoveItem(d.Items("2026-04-01")[0].ID)

	if src.Itinerary["2026-04-01"][0].Name != "A" {
		t.Fatalf("source mutated by draft edits")
	}
	if len(src.Itinerary["2026-04-01"]) != 3 {
		t.Fatalf("source shrank: %d items", len(src.Itinerary["2026-04-01"]))
	}
	if src.Itinerary["2026-04-01"][0].ID != "" {
		t.Fatalf("source gained a stable id")
	}
}

func TestStableIDsSurviveReorderAndUpdate(t *testing.T) {
	d := New(threeItemDay())
	items := d.Items("2026-04-01")
	idByName := map[string]string{}
	for _, it := range items {
		idByName[it.Name] = it.ID
	}

	d.Reorder("2026-04-01", 0, 2)
	newName := "A renamed"
	if err := d.UpdateItem(idByName["A"], Patch{Name: &newName}); err != nil {
		t.Fatalf("update: %v", err)
	}

	for _, it := range d.Items("2026-04-01") {
		want := it.Name
		if want == newName {
			want = "A"
		}
		if it.ID != idByName[want] {
			t.Fatalf("stable id changed for %q", it.Name)
		}
	}
}

func TestReorderNoOp(t *testing.T) {
	d := New(threeItemDay())
	before := names(d.Items("2026-04-01"))

	d.Reorder("2026-04-01", 1, 1)
	d.Reorder("2026-04-01", -1, 0)
	d.Reorder("2026-04-01", 0, 9)
	d.Reorder("no-such-day", 0, 1)

	after := names(d.Items("2026-04-01"))
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("no-op reorder changed sequence: %v -> %v", before, after)
		}
	}
}

func TestReorderMoves(t *testing.T) {
	d := New(threeItemDay())
	d.Reorder("2026-04-01", 2, 0)
	got := names(d.Items("2026-04-01"))
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRemoveThenRemoveAgain(t *testing.T) {
	d := New(threeItemDay())
	b := d.Items("2026-04-01")[1]

	d.RemoveItem(b.ID)
	got := names(d.Items("2026-04-01"))
	if len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Fatalf("after remove: %v", got)
	}

	// A duplicate removal request is a no-op, not an error.
	d.RemoveItem(b.ID)
	got = names(d.Items("2026-04-01"))
	if len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Fatalf("after duplicate remove: %v", got)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	d := New(threeItemDay())
	name := "x"
	err := d.UpdateItem("not-an-id", Patch{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateFindsItemAcrossDays(t *testing.T) {
	data := threeItemDay()
	data.Itinerary["2026-04-02"] = []*trip.Item{
		{Kind: trip.KindActivity, Name: "D"},
	}
	d := New(data)
	id := d.Items("2026-04-02")[0].ID

	rating := 3
	if err := d.UpdateItem(id, Patch{Rating: &rating}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if d.Items("2026-04-02")[0].Details.Rating != 3 {
		t.Fatalf("patch not applied")
	}
}

func TestSnapshotDetachedAndStripped(t *testing.T) {
	d := New(threeItemDay())
	snap := d.Snapshot()

	for _, it := range snap.Itinerary["2026-04-01"] {
		if it.ID != "" {
			t.Fatalf("snapshot leaked stable id %s", it.ID)
		}
	}

	snap.Itinerary["2026-04-01"][0].Name = "mutated"
	if d.Items("2026-04-01")[0].Name != "A" {
		t.Fatalf("mutating snapshot reached the live draft")
	}

	d.RemoveItem(d.Items("2026-04-01")[0].ID)
	if len(snap.Itinerary["2026-04-01"]) != 3 {
		t.Fatalf("editing the draft reached an earlier snapshot")
	}
}

func TestAutoFillIdempotent(t *testing.T) {
	data := &trip.Data{
		Itinerary: trip.Itinerary{
			"2026-04-01": {
				{Kind: trip.KindTransport, Name: "Train to Vienna",
					Details: trip.Details{Description: "quiet car, 12:45 arrival"}},
				{Kind: trip.KindActivity, Name: "Walk to the museum"},
			},
		},
	}
	d := New(data)

	filled := d.AutoFillTransportFields()
	if filled != 2 {
		t.Fatalf("expected 2 fields filled, got %d", filled)
	}
	it := d.Items("2026-04-01")[0]
	if it.Destination != "Vienna" {
		t.Fatalf("destination = %q", it.Destination)
	}
	if it.End.String() != "12:45" {
		t.Fatalf("arrival = %q", it.End.String())
	}

	// Activity items are never touched.
	if d.Items("2026-04-01")[1].Destination != "" {
		t.Fatalf("autofill touched an activity item")
	}

	if again := d.AutoFillTransportFields(); again != 0 {
		t.Fatalf("second sweep filled %d fields", again)
	}
}
