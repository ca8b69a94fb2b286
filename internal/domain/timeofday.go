package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// timeOfDayLayouts are the accepted layouts for ParseTimeOfDay, tried in order.
var timeOfDayLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"15:04",
}

// ParseTimeOfDay parses "7:20 AM", "7:20AM" or "07:20" style strings.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
}

// On places the time of day on the calendar day of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, day.Location())
}

// String renders the time in the "h:mm AM" form used by the schedule table.
func (t TimeOfDay) String() string {
	return t.On(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)).Format("3:04 PM")
}

// ISOWeekday returns the weekday of t with Monday=1 through Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Granularity is a truncation boundary for clock arithmetic.
type Granularity int

// Granularities, from finest to coarsest.
const (
	GranularityMinute Granularity = iota
	GranularityHour
	GranularityDay
)

// Period returns the length of one revolution at this granularity.
// The day granularity maps onto a 12-hour analog face.
func (g Granularity) Period() time.Duration {
	switch g {
	case GranularityMinute:
		return time.Minute
	case GranularityHour:
		return time.Hour
	default:
		return 12 * time.Hour
	}
}

// Truncate returns the most recent boundary of t at granularity g.
// Boundaries follow t's local calendar, not the absolute epoch, so zones
// with non-hour offsets still truncate to their own hour.
func Truncate(t time.Time, g Granularity) time.Time {
	y, mo, d := t.Date()
	switch g {
	case GranularityMinute:
		return time.Date(y, mo, d, t.Hour(), t.Minute(), 0, 0, t.Location())
	case GranularityHour:
		return time.Date(y, mo, d, t.Hour(), 0, 0, 0, t.Location())
	default:
		return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
	}
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
