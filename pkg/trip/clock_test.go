package trip

import (
	"encoding/json"
	"testing"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:05")
	if err != nil || c.String() != "09:05" {
		t.Fatalf("got %q err %v", c.String(), err)
	}
	c, err = ParseClock("9:05")
	if err != nil || c.String() != "09:05" {
		t.Fatalf("single digit hour: %q err %v", c.String(), err)
	}
	if _, err := ParseClock("25:00"); err == nil {
		t.Fatalf("expected error for 25:00")
	}
	if _, err := ParseClock("lunch"); err == nil {
		t.Fatalf("expected error for non-time")
	}
}

func TestClockZeroValue(t *testing.T) {
	var c Clock
	if !c.IsZero() {
		t.Fatalf("zero clock is set")
	}
	if c.String() != "" {
		t.Fatalf("zero clock renders %q", c.String())
	}
}

func TestClockJSON(t *testing.T) {
	it := Item{Name: "x", Start: NewClock(7, 30)}
	b, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Item
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Start.String() != "07:30" {
		t.Fatalf("start survived as %q", got.Start.String())
	}
	if !got.End.IsZero() {
		t.Fatalf("absent end became set")
	}
}

func TestCloneIsolation(t *testing.T) {
	src := Sample()
	dup := src.Clone()

	dup.Itinerary["2026-04-01"][0].Name = "changed"
	dup.Shopping[0].Name = "changed"
	dup.Itinerary["2026-04-01"][1].Details.Tags[0] = "changed"

	if src.Itinerary["2026-04-01"][0].Name == "changed" {
		t.Fatalf("item clone shares memory")
	}
	if src.Shopping[0].Name == "changed" {
		t.Fatalf("shopping clone shares memory")
	}
	if src.Itinerary["2026-04-01"][1].Details.Tags[0] == "changed" {
		t.Fatalf("tags clone shares memory")
	}
}

func TestDaysSorted(t *testing.T) {
	itin := Itinerary{
		"2026-04-03": nil,
		"2026-04-01": nil,
		"2026-04-02": nil,
	}
	days := itin.Days()
	if days[0] != "2026-04-01" || days[2] != "2026-04-03" {
		t.Fatalf("days not ascending: %v", days)
	}
}
