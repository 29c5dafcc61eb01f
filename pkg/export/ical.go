package export

import (
	"crypto/md5"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"tableflip.dev/sojourn/pkg/trip"
)

// defaultStart is used for items with no start time so they still land on
// their day in a calendar view.
var defaultStart = trip.NewClock(9, 0)

// Calendar emits the calendar feed: one timed event per itinerary item and
// one all-day span per lodging. Scope never applies here beyond that
// boundary; auxiliary lists produce no events.
func Calendar(data *trip.Data) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//sojourn//trip export//EN")

	for _, date := range data.Itinerary.Days() {
		day, err := trip.ParseDay(date)
		if err != nil {
			return "", fmt.Errorf("export: calendar: %w", err)
		}
		for idx, it := range data.Itinerary[date] {
			start := it.Start
			if start.IsZero() {
				start = defaultStart
			}
			startAt := start.On(day)
			endAt := startAt.Add(time.Hour)
			if !it.End.IsZero() {
				endAt = it.End.On(day)
				if !endAt.After(startAt) {
					// Crossing midnight: wrap to the next day once.
					endAt = endAt.AddDate(0, 0, 1)
				}
			}

			ev := cal.AddEvent(eventUID(date, idx, it.Name))
			ev.SetDtStampTime(startAt)
			ev.SetStartAt(startAt)
			ev.SetEndAt(endAt)
			ev.SetSummary(it.Name)
			if it.Kind == trip.KindTransport && (it.Origin != "" || it.Destination != "") {
				ev.SetLocation(fmt.Sprintf("%s → %s", it.Origin, it.Destination))
			}
			if desc := it.Details.Description; desc != "" {
				ev.SetDescription(desc)
			}
		}
	}

	for idx, l := range data.Lodgings {
		checkIn, err := trip.ParseDay(l.CheckIn)
		if err != nil {
			return "", fmt.Errorf("export: calendar: lodging %q: %w", l.Name, err)
		}
		checkOut, err := trip.ParseDay(l.CheckOut)
		if err != nil {
			return "", fmt.Errorf("export: calendar: lodging %q: %w", l.Name, err)
		}
		ev := cal.AddEvent(eventUID(l.CheckIn, idx, l.Name))
		ev.SetDtStampTime(checkIn)
		ev.SetAllDayStartAt(checkIn)
		ev.SetAllDayEndAt(checkOut)
		ev.SetSummary(l.Name)
		if l.Address != "" {
			ev.SetLocation(l.Address)
		}
	}

	return cal.Serialize(), nil
}

// eventUID derives a globally unique, re-export-stable identifier from the
// event's date, position, and name.
func eventUID(date string, idx int, name string) string {
	sum := md5.Sum([]byte(name))
	return fmt.Sprintf("%s-%d-%x@sojourn", date, idx, sum[:6])
}
