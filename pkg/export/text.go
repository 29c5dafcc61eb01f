package export

import (
	"fmt"
	"strings"

	"tableflip.dev/sojourn/pkg/scope"
	"tableflip.dev/sojourn/pkg/trip"
)

// Text emits the plain summary: one header line per selected day, one
// "<time> <name>" line per item. No cost or description detail. Days
// ascend; items keep their stored order.
func Text(data *trip.Data, s scope.Scope) string {
	b := strings.Builder{}
	b.WriteString(data.Name)
	b.WriteString("\n")

	if !s.Contains(scope.SectionItinerary) {
		return b.String()
	}

	dayIndex := 0
	for _, date := range data.Itinerary.Days() {
		items := data.Itinerary[date]
		if len(items) == 0 {
			continue
		}
		dayIndex++
		b.WriteString(fmt.Sprintf("\nDay %d · %s\n", dayIndex, date))
		for _, it := range items {
			clock := it.Start.String()
			if clock == "" {
				clock = "--:--"
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", clock, it.Name))
		}
	}
	return b.String()
}
