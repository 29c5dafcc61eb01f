package paginate

import (
	"fmt"
	"strings"
	"testing"

	"tableflip.dev/sojourn/pkg/scope"
	"tableflip.dev/sojourn/pkg/trip"
)

func dayOf(n int) *trip.Data {
	items := make([]*trip.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, &trip.Item{Kind: trip.KindActivity, Name: fmt.Sprintf("item-%d", i)})
	}
	return &trip.Data{Itinerary: trip.Itinerary{"2026-04-01": items}}
}

func TestDayAtomicity(t *testing.T) {
	data := dayOf(7)
	pages := Paginate(data, []scope.Section{scope.SectionItinerary}, 4)

	if len(pages) != 2 {
		t.Fatalf("7 items / 4 per page: got %d pages", len(pages))
	}
	if len(pages[0].Items) != 4 || len(pages[1].Items) != 3 {
		t.Fatalf("chunk sizes %d + %d", len(pages[0].Items), len(pages[1].Items))
	}
	if pages[0].Continuation {
		t.Fatalf("first page of a day is not a continuation")
	}
	if !pages[1].Continuation {
		t.Fatalf("second page of the same day must be a continuation")
	}
	if pages[0].DayIndex != 1 || pages[1].DayIndex != 1 {
		t.Fatalf("day index drifted: %d, %d", pages[0].DayIndex, pages[1].DayIndex)
	}
}

func TestDensityChangeRepaginates(t *testing.T) {
	data := dayOf(7)

	pages := Paginate(data, []scope.Section{scope.SectionItinerary}, 3)
	if len(pages) != 3 {
		t.Fatalf("7 items / 3 per page: got %d pages", len(pages))
	}
	sizes := []int{len(pages[0].Items), len(pages[1].Items), len(pages[2].Items)}
	if sizes[0] != 3 || sizes[1] != 3 || sizes[2] != 1 {
		t.Fatalf("chunk sizes %v", sizes)
	}
	if pages[0].Continuation || !pages[1].Continuation || !pages[2].Continuation {
		t.Fatalf("continuation flags wrong")
	}
	if !strings.HasPrefix(pages[0].Header(), "Day 1 — ") {
		t.Fatalf("first page lost its full day header: %q", pages[0].Header())
	}
	if !strings.Contains(pages[1].Header(), "continued") {
		t.Fatalf("continuation header missing: %q", pages[1].Header())
	}
}

func TestEmptyDayContributesNoPages(t *testing.T) {
	data := dayOf(2)
	data.Itinerary["2026-04-02"] = nil

	pages := Paginate(data, []scope.Section{scope.SectionItinerary}, 4)
	if len(pages) != 1 {
		t.Fatalf("got %d pages", len(pages))
	}
}

func TestGlobalNumberingAndFooters(t *testing.T) {
	data := dayOf(5)
	data.Shopping = []trip.ShoppingEntry{{Name: "socks"}}
	data.Budget = []trip.BudgetEntry{{Name: "pass"}}

	sections := []scope.Section{
		scope.SectionItinerary,
		scope.SectionShopping,
		scope.SectionBudget,
	}
	pages := Paginate(data, sections, 4)

	// 2 itinerary pages + 1 shopping + 1 budget.
	if len(pages) != 4 {
		t.Fatalf("got %d pages", len(pages))
	}
	for i, p := range pages {
		if p.Number != i+1 || p.Total != 4 {
			t.Fatalf("page %d numbered %d/%d", i, p.Number, p.Total)
		}
	}

	// The last itinerary page closes with the end-of-day footer; every
	// other page runs the page counter.
	if pages[1].Footer() != "end of day 1" {
		t.Fatalf("last itinerary footer: %q", pages[1].Footer())
	}
	if pages[0].Footer() != "page 1 / 4" {
		t.Fatalf("first footer: %q", pages[0].Footer())
	}
	if pages[3].Footer() != "page 4 / 4" {
		t.Fatalf("aux footer: %q", pages[3].Footer())
	}
}

func TestMultipleDaysAscend(t *testing.T) {
	data := &trip.Data{Itinerary: trip.Itinerary{
		"2026-04-03": {{Name: "late"}},
		"2026-04-01": {{Name: "early"}},
	}}
	pages := Paginate(data, []scope.Section{scope.SectionItinerary}, 4)
	if len(pages) != 2 {
		t.Fatalf("got %d pages", len(pages))
	}
	if pages[0].Date != "2026-04-01" || pages[0].DayIndex != 1 {
		t.Fatalf("first page is %s day %d", pages[0].Date, pages[0].DayIndex)
	}
	if pages[1].Date != "2026-04-03" || pages[1].DayIndex != 2 {
		t.Fatalf("second page is %s day %d", pages[1].Date, pages[1].DayIndex)
	}
}

func TestClampPerPage(t *testing.T) {
	if got := ClampPerPage(0); got != MinPerPage {
		t.Fatalf("clamp low: %d", got)
	}
	if got := ClampPerPage(99); got != MaxPerPage {
		t.Fatalf("clamp high: %d", got)
	}
	if got := ClampPerPage(5); got != 5 {
		t.Fatalf("clamp mid: %d", got)
	}
}
