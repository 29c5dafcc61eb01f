package export

import (
	"bytes"
	"testing"

	"tableflip.dev/sojourn/pkg/scope"
	"tableflip.dev/sojourn/pkg/trip"
)

func pdfOptions(template string) Options {
	tpl, err := scope.ParseTemplate(template)
	if err != nil {
		panic(err)
	}
	return Options{Scope: scope.All(), Template: tpl, PerPage: 4}
}

func TestPDFRendersAllTemplates(t *testing.T) {
	for _, tpl := range scope.Templates() {
		h, err := PDF(trip.Sample(), pdfOptions(tpl.Name))
		if err != nil {
			t.Fatalf("%s: %v", tpl.Name, err)
		}
		if h.Pages() == 0 {
			t.Fatalf("%s: no pages rendered", tpl.Name)
		}
		if !bytes.HasPrefix(h.Bytes(), []byte("%PDF")) {
			t.Fatalf("%s: not a pdf artifact", tpl.Name)
		}
		h.Release()
	}
}

func TestHandleRelease(t *testing.T) {
	h, err := PDF(trip.Sample(), pdfOptions(""))
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if h.Bytes() == nil {
		t.Fatalf("live handle returned nil bytes")
	}

	h.Release()
	if h.Bytes() != nil {
		t.Fatalf("released handle still holds bytes")
	}
	// Releasing twice is safe.
	h.Release()
}

func TestPDFIgnoresLaterEditsToSource(t *testing.T) {
	data := trip.Sample()
	snapshot := data.Clone()

	h, err := PDF(snapshot, pdfOptions(""))
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	defer h.Release()

	// The encoder works from its snapshot argument only.
	data.Itinerary["2026-04-01"] = nil
	h2, err := PDF(snapshot, pdfOptions(""))
	if err != nil {
		t.Fatalf("pdf after edit: %v", err)
	}
	defer h2.Release()
	if h2.Pages() != h.Pages() {
		t.Fatalf("page count changed: %d vs %d", h.Pages(), h2.Pages())
	}
}

func TestSequencerMonotonic(t *testing.T) {
	s := &Sequencer{}
	a := s.Next()
	b := s.Next()
	if b <= a {
		t.Fatalf("sequence not increasing: %d then %d", a, b)
	}
	if s.Latest() != b {
		t.Fatalf("latest %d, want %d", s.Latest(), b)
	}
}
