// Package extract pulls structured transport fields out of free text. Every
// matcher either finds a value already present in the text or reports no
// match; nothing here ever invents a value.
package extract

import (
	"regexp"
	"strings"

	"tableflip.dev/sojourn/pkg/trip"
)

// Fields is the best-effort result for one transport item. Unmatched fields
// stay at their zero values.
type Fields struct {
	Destination string
	Arrival     trip.Clock
}

// Empty reports whether nothing was extracted.
func (f Fields) Empty() bool {
	return f.Destination == "" && f.Arrival.IsZero()
}

// TransportFields runs all matchers against the item's name and description.
func TransportFields(it *trip.Item) Fields {
	f := Fields{}
	if dest, ok := Destination(it.Name); ok {
		f.Destination = dest
	}
	if at, ok := ArrivalTime(it); ok {
		f.Arrival = at
	}
	return f
}

type destMatcher func(name string) (string, bool)

// Matchers run in priority order; the first hit wins.
var destMatchers = []destMatcher{
	arrowDestination,
	leadingToDestination,
	parentheticalDestination,
}

// Destination extracts an arrival location latent in the item name.
func Destination(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	for _, m := range destMatchers {
		if dest, ok := m(name); ok {
			return dest, true
		}
	}
	return "", false
}

var (
	arrowPattern   = regexp.MustCompile(`(?:→|->|=>)\s*(.+)$`)
	infixToPattern = regexp.MustCompile(`(?i)\s(?:to|towards)\s+(.+)$`)
	leadToPattern  = regexp.MustCompile(`(?i)^to\s+(.+)$`)
	parenPattern   = regexp.MustCompile(`\(([^()]+)\)\s*$`)
)

func arrowDestination(name string) (string, bool) {
	if m := arrowPattern.FindStringSubmatch(name); m != nil {
		return cleanDestination(m[1]), true
	}
	if m := infixToPattern.FindStringSubmatch(name); m != nil {
		return cleanDestination(m[1]), true
	}
	return "", false
}

func leadingToDestination(name string) (string, bool) {
	if m := leadToPattern.FindStringSubmatch(name); m != nil {
		return cleanDestination(m[1]), true
	}
	return "", false
}

// maxParenLen rejects long parentheticals; a station or airport code is
// short, a description is not.
const maxParenLen = 10

func parentheticalDestination(name string) (string, bool) {
	m := parenPattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	code := strings.TrimSpace(m[1])
	if code == "" || len(code) > maxParenLen {
		return "", false
	}
	return code, true
}

func cleanDestination(raw string) string {
	// A trailing parenthetical or punctuation is noise once the phrase
	// before it named the place.
	raw = parenPattern.ReplaceAllString(raw, "")
	return strings.Trim(strings.TrimSpace(raw), ".,;")
}

var (
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
	arrivalPattern = regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2})\s*(?:arrival|arrives?|arriving|landing|lands?)\b`)
)

// ArrivalTime prefers the item's structured end time, then scans the
// description for a time immediately followed by an arrival word.
func ArrivalTime(it *trip.Item) (trip.Clock, bool) {
	if !it.End.IsZero() {
		return it.End, true
	}
	text := tagPattern.ReplaceAllString(it.Details.Description, " ")
	m := arrivalPattern.FindStringSubmatch(text)
	if m == nil {
		return trip.Clock{}, false
	}
	c, err := trip.ParseClock(m[1])
	if err != nil {
		return trip.Clock{}, false
	}
	return c, true
}
