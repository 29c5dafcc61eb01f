// Package paginate chunks a resolved document into fixed-size logical
// pages. Pages are derived, read-only views: every edit or configuration
// change recomputes them from scratch.
package paginate

import (
	"fmt"

	"tableflip.dev/sojourn/pkg/scope"
	"tableflip.dev/sojourn/pkg/trip"
)

// Bounds for the user-tunable itinerary card density.
const (
	MinPerPage     = 2
	MaxPerPage     = 8
	DefaultPerPage = 4
)

// ClampPerPage forces the density into its supported range.
func ClampPerPage(n int) int {
	if n < MinPerPage {
		return MinPerPage
	}
	if n > MaxPerPage {
		return MaxPerPage
	}
	return n
}

// Page is one unit of the paginated document. Itinerary pages carry a
// bounded chunk of one day's items; other sections render whole on a
// single page and carry no items here.
type Page struct {
	Section scope.Section
	Title   string

	// Itinerary-only metadata.
	DayIndex     int    // 1-based day number across the trip
	Date         string // ISO date of the day
	DayItems     int    // total items in the day, across all its pages
	Continuation bool   // 2nd+ page of the same day
	Items        []*trip.Item

	// Global numbering in the fixed section order.
	Number int
	Total  int

	// EndOfDay is the day index named by the closing footer on the last
	// itinerary page of the whole document; zero everywhere else.
	EndOfDay int
}

// Header renders the day heading; the first page of a day gets the full
// form, later pages the lighter continuation form.
func (p Page) Header() string {
	if p.Section != scope.SectionItinerary {
		return p.Title
	}
	if p.Continuation {
		return fmt.Sprintf("Day %d (continued)", p.DayIndex)
	}
	noun := "items"
	if p.DayItems == 1 {
		noun = "item"
	}
	return fmt.Sprintf("Day %d — %s — %d %s", p.DayIndex, p.prettyDate(), p.DayItems, noun)
}

// Footer renders the running footer line.
func (p Page) Footer() string {
	if p.EndOfDay > 0 {
		return fmt.Sprintf("end of day %d", p.EndOfDay)
	}
	return fmt.Sprintf("page %d / %d", p.Number, p.Total)
}

func (p Page) prettyDate() string {
	t, err := trip.ParseDay(p.Date)
	if err != nil {
		return p.Date
	}
	return t.Format("Mon, Jan 2 2006")
}

// Paginate lays out the resolved sections into pages. Days ascend; each
// day is chunked into groups of at most perPage items; a day with zero
// items contributes nothing. Non-itinerary sections are one page each.
func Paginate(data *trip.Data, sections []scope.Section, perPage int) []Page {
	perPage = ClampPerPage(perPage)
	pages := make([]Page, 0, 8)

	for _, sec := range sections {
		if sec == scope.SectionItinerary {
			pages = append(pages, itineraryPages(data.Itinerary, perPage)...)
			continue
		}
		pages = append(pages, Page{Section: sec, Title: sec.Label()})
	}

	total := len(pages)
	lastItinerary := -1
	for i := range pages {
		pages[i].Number = i + 1
		pages[i].Total = total
		if pages[i].Section == scope.SectionItinerary {
			lastItinerary = i
		}
	}
	if lastItinerary >= 0 {
		pages[lastItinerary].EndOfDay = pages[lastItinerary].DayIndex
	}
	return pages
}

func itineraryPages(itin trip.Itinerary, perPage int) []Page {
	pages := make([]Page, 0, 8)
	dayIndex := 0
	for _, date := range itin.Days() {
		items := itin[date]
		if len(items) == 0 {
			continue
		}
		dayIndex++
		for offset := 0; offset < len(items); offset += perPage {
			end := offset + perPage
			if end > len(items) {
				end = len(items)
			}
			pages = append(pages, Page{
				Section:      scope.SectionItinerary,
				Title:        scope.SectionItinerary.Label(),
				DayIndex:     dayIndex,
				Date:         date,
				DayItems:     len(items),
				Continuation: offset > 0,
				Items:        items[offset:end],
			})
		}
	}
	return pages
}
