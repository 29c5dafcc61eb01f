// Package trip defines the itinerary document model: dated items, the
// auxiliary lists that travel with a trip, and deep-clone helpers.
package trip

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DayLayout is the ISO date format used for itinerary bucket keys.
const DayLayout = "2006-01-02"

// ParseDay validates an itinerary date key.
func ParseDay(v string) (time.Time, error) {
	t, err := time.Parse(DayLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("trip: bad day %q: %w", v, err)
	}
	return t, nil
}

// Kind distinguishes the two item variants.
type Kind string

const (
	KindActivity  Kind = "activity"
	KindTransport Kind = "transport"
)

// Mode is the transport sub-type carried by transport items.
type Mode string

const (
	ModeFlight Mode = "flight"
	ModeTrain  Mode = "train"
	ModeDrive  Mode = "drive"
	ModeWalk   Mode = "walk"
	ModeBorder Mode = "border"
)

// AllModes returns the supported transport modes.
func AllModes() []Mode {
	return []Mode{ModeFlight, ModeTrain, ModeDrive, ModeWalk, ModeBorder}
}

// ParseMode converts a string to a Mode or returns an error for unknown values.
func ParseMode(raw string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(raw)))
	if m == "" {
		return "", nil
	}
	for _, candidate := range AllModes() {
		if candidate == m {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("trip: unknown transport mode %q", raw)
}

// Details is the free-form bag attached to every item. Description holds
// whatever the rich-text widget produced; the engine never interprets it.
type Details struct {
	Description string   `json:"description,omitempty"`
	Rating      int      `json:"rating,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Gate        string   `json:"gate,omitempty"`
	Platform    string   `json:"platform,omitempty"`
	LocalName   string   `json:"localName,omitempty"`
	ImageRef    string   `json:"imageRef,omitempty"`
}

// Item is one itinerary entry. ID is assigned by the working copy and is
// never serialized; it exists only to survive reorders and edits.
type Item struct {
	ID          string  `json:"-"`
	Kind        Kind    `json:"kind"`
	Name        string  `json:"name"`
	Start       Clock   `json:"start,omitempty"`
	End         Clock   `json:"end,omitempty"`
	Origin      string  `json:"origin,omitempty"`
	Destination string  `json:"destination,omitempty"`
	Mode        Mode    `json:"mode,omitempty"`
	Cost        float64 `json:"cost,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	Details     Details `json:"details,omitempty"`
}

// Clone returns a detached copy of the item.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	dup := *it
	if it.Details.Tags != nil {
		dup.Details.Tags = append([]string(nil), it.Details.Tags...)
	}
	return &dup
}

// Itinerary maps an ISO date to that day's ordered items. Insertion order
// within a day is the display order; map key order is never significant.
type Itinerary map[string][]*Item

// Days returns the itinerary dates in ascending order.
func (i Itinerary) Days() []string {
	days := make([]string, 0, len(i))
	for d := range i {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}

// Items counts all items across all days.
func (i Itinerary) Items() int {
	n := 0
	for _, items := range i {
		n += len(items)
	}
	return n
}

// Clone deep-copies the itinerary.
func (i Itinerary) Clone() Itinerary {
	if i == nil {
		return nil
	}
	dup := make(Itinerary, len(i))
	for d, items := range i {
		list := make([]*Item, 0, len(items))
		for _, it := range items {
			list = append(list, it.Clone())
		}
		dup[d] = list
	}
	return dup
}

// ShoppingEntry is one row of the shopping list.
type ShoppingEntry struct {
	Name           string  `json:"name"`
	EstimatedPrice float64 `json:"estimatedPrice,omitempty"`
	Category       string  `json:"category,omitempty"`
}

// BudgetEntry is one row of the budget list.
type BudgetEntry struct {
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Cost     float64 `json:"cost,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

// PackingEntry is one row of the packing list.
type PackingEntry struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// EmergencyEntry is one emergency contact or hotline.
type EmergencyEntry struct {
	Label string `json:"label"`
	Phone string `json:"phone"`
	Note  string `json:"note,omitempty"`
}

// Lodging is an accommodation stay; CheckIn and CheckOut use DayLayout.
type Lodging struct {
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// Data bundles everything this engine composes into a document.
type Data struct {
	Name      string           `json:"name"`
	Itinerary Itinerary        `json:"itinerary,omitempty"`
	Shopping  []ShoppingEntry  `json:"shopping,omitempty"`
	Budget    []BudgetEntry    `json:"budget,omitempty"`
	Packing   []PackingEntry   `json:"packing,omitempty"`
	Emergency []EmergencyEntry `json:"emergency,omitempty"`
	Lodgings  []Lodging        `json:"lodgings,omitempty"`
}

// Clone deep-copies the whole bundle.
func (d *Data) Clone() *Data {
	if d == nil {
		return nil
	}
	dup := &Data{
		Name:      d.Name,
		Itinerary: d.Itinerary.Clone(),
	}
	if d.Shopping != nil {
		dup.Shopping = append([]ShoppingEntry(nil), d.Shopping...)
	}
	if d.Budget != nil {
		dup.Budget = append([]BudgetEntry(nil), d.Budget...)
	}
	if d.Packing != nil {
		dup.Packing = append([]PackingEntry(nil), d.Packing...)
	}
	if d.Emergency != nil {
		dup.Emergency = append([]EmergencyEntry(nil), d.Emergency...)
	}
	if d.Lodgings != nil {
		dup.Lodgings = append([]Lodging(nil), d.Lodgings...)
	}
	return dup
}

// DefaultEmergencyNumbers are rendered in every emergency section even when
// the trip carries no contacts of its own.
func DefaultEmergencyNumbers() []EmergencyEntry {
	return []EmergencyEntry{
		{Label: "Emergency (EU)", Phone: "112"},
		{Label: "Emergency (US/CA)", Phone: "911"},
		{Label: "Emergency (UK)", Phone: "999"},
	}
}
