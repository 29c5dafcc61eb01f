package extract

import (
	"testing"

	"tableflip.dev/sojourn/pkg/trip"
)

func TestDestinationArrow(t *testing.T) {
	got, ok := Destination("Flight AMS → ZRH")
	if !ok || got != "ZRH" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
	got, ok = Destination("Bus Split -> Dubrovnik")
	if !ok || got != "Dubrovnik" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestDestinationInfixTo(t *testing.T) {
	got, ok := Destination("Train to Vienna")
	if !ok || got != "Vienna" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
	got, ok = Destination("Drive towards Lake Bled.")
	if !ok || got != "Lake Bled" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestDestinationLeadingTo(t *testing.T) {
	got, ok := Destination("To Ljubljana")
	if !ok || got != "Ljubljana" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestDestinationParenthetical(t *testing.T) {
	got, ok := Destination("Morning train (IO)")
	if !ok || got != "IO" {
		t.Fatalf("got %q ok=%v", got, ok)
	}

	// A long parenthetical is a description, not a station code.
	if got, ok := Destination("Morning train (the scenic one over the pass)"); ok {
		t.Fatalf("matched long parenthetical: %q", got)
	}
}

func TestDestinationPrecedence(t *testing.T) {
	// The arrow pattern outranks the trailing parenthetical.
	got, ok := Destination("Train to Interlaken (IO)")
	if !ok || got != "Interlaken" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestArrivalPrefersEndField(t *testing.T) {
	it := &trip.Item{
		Kind: trip.KindTransport,
		End:  trip.NewClock(18, 5),
		Details: trip.Details{
			Description: "maybe 19:30 arrival if delayed",
		},
	}
	got, ok := ArrivalTime(it)
	if !ok || got.String() != "18:05" {
		t.Fatalf("got %q ok=%v", got.String(), ok)
	}
}

func TestArrivalFromDescription(t *testing.T) {
	it := &trip.Item{
		Kind: trip.KindTransport,
		Details: trip.Details{
			Description: "<p>Window seat booked. 11:57 arrival at Ost.</p>",
		},
	}
	got, ok := ArrivalTime(it)
	if !ok || got.String() != "11:57" {
		t.Fatalf("got %q ok=%v", got.String(), ok)
	}
}

func TestArrivalNeedsArrivalWord(t *testing.T) {
	it := &trip.Item{
		Kind: trip.KindTransport,
		Details: trip.Details{
			Description: "departs 08:15 sharp",
		},
	}
	if got, ok := ArrivalTime(it); ok {
		t.Fatalf("fabricated arrival %q", got.String())
	}
}

func TestNoFabrication(t *testing.T) {
	it := &trip.Item{
		Kind: trip.KindTransport,
		Name: "Overnight ride",
		Details: trip.Details{
			Description: "bring snacks",
		},
	}
	if f := TransportFields(it); !f.Empty() {
		t.Fatalf("expected empty fields, got %+v", f)
	}
}
