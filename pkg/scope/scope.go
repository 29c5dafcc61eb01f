// Package scope decides which document sections an export includes and
// which visual template renders them. Section order is a presentation
// contract: printed page numbers depend on it.
package scope

import (
	"fmt"
	"strings"

	"tableflip.dev/sojourn/pkg/trip"
)

// Section identifies one exportable document section.
type Section string

const (
	SectionItinerary Section = "itinerary"
	SectionShopping  Section = "shopping"
	SectionBudget    Section = "budget"
	SectionEmergency Section = "emergency"
	SectionPacking   Section = "packing"
)

// DefaultSection is where an emptied scope snaps back to.
const DefaultSection = SectionItinerary

// Order returns every section in the fixed presentation order. All
// renderers must honor this order.
func Order() []Section {
	return []Section{
		SectionItinerary,
		SectionShopping,
		SectionBudget,
		SectionEmergency,
		SectionPacking,
	}
}

// Label returns the section heading used by all renderers.
func (s Section) Label() string {
	switch s {
	case SectionItinerary:
		return "Itinerary"
	case SectionShopping:
		return "Shopping List"
	case SectionBudget:
		return "Budget"
	case SectionEmergency:
		return "Emergency Contacts"
	case SectionPacking:
		return "Packing List"
	}
	return string(s)
}

// Scope is the set of sections selected for an export. The zero value is
// not valid; use All or Of.
type Scope struct {
	all  bool
	keys map[Section]bool
}

// All selects every section.
func All() Scope { return Scope{all: true} }

// Of selects exactly the given sections. With no arguments it falls back to
// the default section rather than permitting an empty scope.
func Of(sections ...Section) Scope {
	s := Scope{keys: make(map[Section]bool, len(sections))}
	for _, key := range sections {
		s.keys[key] = true
	}
	if len(s.keys) == 0 {
		s.keys[DefaultSection] = true
	}
	return s
}

// IsAll reports whether the scope is the "all sections" literal.
func (s Scope) IsAll() bool { return s.all }

// Contains reports whether the section is selected.
func (s Scope) Contains(key Section) bool {
	if s.all {
		return true
	}
	return s.keys[key]
}

// Toggle flips one section's selection. Deselecting the last selected
// section snaps back to the default section: a scope never goes empty.
func (s *Scope) Toggle(key Section) {
	if s.all {
		// Leaving "all" by toggling means: everything except key.
		s.all = false
		s.keys = make(map[Section]bool)
		for _, sec := range Order() {
			if sec != key {
				s.keys[sec] = true
			}
		}
		return
	}
	if s.keys == nil {
		s.keys = make(map[Section]bool)
	}
	if s.keys[key] {
		delete(s.keys, key)
	} else {
		s.keys[key] = true
	}
	if len(s.keys) == 0 {
		s.keys[DefaultSection] = true
	}
}

// Selected returns the selected sections in presentation order.
func (s Scope) Selected() []Section {
	out := make([]Section, 0, len(Order()))
	for _, sec := range Order() {
		if s.Contains(sec) {
			out = append(out, sec)
		}
	}
	if len(out) == 0 {
		panic("scope: empty scope escaped construction")
	}
	return out
}

func (s Scope) String() string {
	if s.all {
		return "all"
	}
	parts := make([]string, 0, len(s.keys))
	for _, sec := range s.Selected() {
		parts = append(parts, string(sec))
	}
	return strings.Join(parts, ",")
}

// Parse reads "all" or a comma-separated section list.
func Parse(raw string) (Scope, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || raw == "all" {
		return All(), nil
	}
	keys := make([]Section, 0, 4)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		found := false
		for _, sec := range Order() {
			if string(sec) == part {
				keys = append(keys, sec)
				found = true
				break
			}
		}
		if !found {
			return Scope{}, fmt.Errorf("scope: unknown section %q", part)
		}
	}
	if len(keys) == 0 {
		return Scope{}, fmt.Errorf("scope: no sections in %q", raw)
	}
	return Of(keys...), nil
}

// Resolve returns the sections the document will actually render, in the
// fixed order: selected and non-empty, except emergency which renders
// whenever selected because it always carries the default hotlines.
func Resolve(s Scope, data *trip.Data) []Section {
	out := make([]Section, 0, len(Order()))
	for _, sec := range Order() {
		if !s.Contains(sec) {
			continue
		}
		if sec == SectionEmergency || sectionPopulated(sec, data) {
			out = append(out, sec)
		}
	}
	return out
}

func sectionPopulated(sec Section, data *trip.Data) bool {
	switch sec {
	case SectionItinerary:
		return data.Itinerary.Items() > 0
	case SectionShopping:
		return len(data.Shopping) > 0
	case SectionBudget:
		return len(data.Budget) > 0
	case SectionPacking:
		return len(data.Packing) > 0
	}
	return false
}
