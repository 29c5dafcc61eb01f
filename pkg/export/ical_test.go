package export

import (
	"strings"
	"testing"

	"tableflip.dev/sojourn/pkg/trip"
)

func TestCalendarDefaultTimes(t *testing.T) {
	data := &trip.Data{
		Name: "t",
		Itinerary: trip.Itinerary{
			"2026-04-01": {
				{Kind: trip.KindActivity, Name: "Morning walk", Start: trip.NewClock(9, 0)},
			},
		},
	}
	out, err := Calendar(data)
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}

	// Start 09:00 with no end means end is exactly 10:00 the same day.
	if !strings.Contains(out, "20260401T090000Z") {
		t.Fatalf("missing start:\n%s", out)
	}
	if !strings.Contains(out, "20260401T100000Z") {
		t.Fatalf("missing +1h end:\n%s", out)
	}
}

func TestCalendarNoStartDefaultsToNine(t *testing.T) {
	data := &trip.Data{
		Itinerary: trip.Itinerary{
			"2026-04-01": {{Kind: trip.KindActivity, Name: "Sometime"}},
		},
	}
	out, err := Calendar(data)
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if !strings.Contains(out, "20260401T090000Z") {
		t.Fatalf("expected 09:00 default start:\n%s", out)
	}
}

func TestCalendarMidnightWrap(t *testing.T) {
	data := &trip.Data{
		Itinerary: trip.Itinerary{
			"2026-04-01": {
				{Kind: trip.KindTransport, Name: "Night train",
					Start: trip.NewClock(23, 0), End: trip.NewClock(0, 30)},
			},
		},
	}
	out, err := Calendar(data)
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if !strings.Contains(out, "20260401T230000Z") {
		t.Fatalf("missing start:\n%s", out)
	}
	// End wraps to the next day exactly once.
	if !strings.Contains(out, "20260402T003000Z") {
		t.Fatalf("end did not wrap:\n%s", out)
	}
}

func TestCalendarStableUIDs(t *testing.T) {
	data := trip.Sample()
	a, err := Calendar(data)
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	b, err := Calendar(data)
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if a != b {
		t.Fatalf("re-export is not byte-stable")
	}
	if !strings.Contains(a, "@sojourn") {
		t.Fatalf("uid namespace missing:\n%s", a)
	}
}

func TestCalendarLodgingAllDay(t *testing.T) {
	data := &trip.Data{
		Lodgings: []trip.Lodging{
			{Name: "Hotel Interlaken", CheckIn: "2026-04-01", CheckOut: "2026-04-03"},
		},
	}
	out, err := Calendar(data)
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if !strings.Contains(out, "Hotel Interlaken") {
		t.Fatalf("lodging event missing:\n%s", out)
	}
	if !strings.Contains(out, "VALUE=DATE") {
		t.Fatalf("lodging event is not all-day:\n%s", out)
	}
}

func TestCalendarAuxListsProduceNoEvents(t *testing.T) {
	data := &trip.Data{
		Shopping: []trip.ShoppingEntry{{Name: "socks"}},
		Budget:   []trip.BudgetEntry{{Name: "pass"}},
	}
	out, err := Calendar(data)
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Fatalf("auxiliary lists leaked into the feed:\n%s", out)
	}
}
