package export

import (
	"encoding/json"

	"tableflip.dev/sojourn/pkg/scope"
	"tableflip.dev/sojourn/pkg/trip"
)

// document is the scope-filtered top-level view for the structured dump.
// Sections outside scope are omitted wholesale, never redacted field by
// field.
type document struct {
	Trip      string                `json:"trip"`
	Itinerary trip.Itinerary        `json:"itinerary,omitempty"`
	Lodgings  []trip.Lodging        `json:"lodgings,omitempty"`
	Shopping  []trip.ShoppingEntry  `json:"shopping,omitempty"`
	Budget    []trip.BudgetEntry    `json:"budget,omitempty"`
	Emergency []trip.EmergencyEntry `json:"emergency,omitempty"`
	Packing   []trip.PackingEntry   `json:"packing,omitempty"`
}

// JSON emits the indented structured dump of the snapshot.
func JSON(data *trip.Data, s scope.Scope) ([]byte, error) {
	doc := document{Trip: data.Name}
	if s.Contains(scope.SectionItinerary) {
		doc.Itinerary = data.Itinerary
		doc.Lodgings = data.Lodgings
	}
	if s.Contains(scope.SectionShopping) {
		doc.Shopping = data.Shopping
	}
	if s.Contains(scope.SectionBudget) {
		doc.Budget = data.Budget
	}
	if s.Contains(scope.SectionEmergency) {
		doc.Emergency = append(trip.DefaultEmergencyNumbers(), data.Emergency...)
	}
	if s.Contains(scope.SectionPacking) {
		doc.Packing = data.Packing
	}
	return json.MarshalIndent(doc, "", "  ")
}
