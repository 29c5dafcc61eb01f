package trip

import (
	"encoding/json"
	"fmt"
	"time"
)

// Clock is an optional HH:MM time of day. The zero value means "unset" and
// serializes as the empty string.
type Clock struct {
	hour, min int
	set       bool
}

// NewClock builds a set Clock; hour and minute are normalized into range.
func NewClock(hour, min int) Clock {
	total := ((hour*60+min)%(24*60) + 24*60) % (24 * 60)
	return Clock{hour: total / 60, min: total % 60, set: true}
}

// ParseClock parses "HH:MM" (also accepting "H:MM").
func ParseClock(v string) (Clock, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		t, err = time.Parse("3:04", v)
	}
	if err != nil {
		return Clock{}, fmt.Errorf("trip: bad clock %q", v)
	}
	return Clock{hour: t.Hour(), min: t.Minute(), set: true}, nil
}

// IsZero reports whether the clock is unset.
func (c Clock) IsZero() bool { return !c.set }

// Minutes returns minutes since midnight; zero for an unset clock.
func (c Clock) Minutes() int { return c.hour*60 + c.min }

// On anchors the clock to a calendar day.
func (c Clock) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.hour, c.min, 0, 0, day.Location())
}

func (c Clock) String() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.hour, c.min)
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		*c = Clock{}
		return nil
	}
	parsed, err := ParseClock(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
