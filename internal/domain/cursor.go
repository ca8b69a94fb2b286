package domain

import (
	"math"
	"time"
)

// DefaultSoonThreshold is how close the next entry must be to count as "soon".
const DefaultSoonThreshold = 5 * time.Minute

// terminalProgressSpan is the bar length used for the terminal entry,
// which has no successor to measure against.
const terminalProgressSpan = time.Hour

// Cursor tracks which entry is in progress at CurrentTime.
type Cursor struct {
	CurrentTime       time.Time
	CurrentEntryIndex int
}

// Advance returns the cursor for newTime. The index only moves forward,
// except that it resets to 0 when newTime precedes the first entry.
// A clock that steps backward within the day leaves the index in place.
func (c Cursor) Advance(s Schedule, newTime time.Time) Cursor {
	return Cursor{
		CurrentTime:       newTime,
		CurrentEntryIndex: AdvanceIndex(s, c.CurrentEntryIndex, newTime),
	}
}

// AdvanceIndex scans forward from prevIndex to the last entry whose start
// time is not after newTime. s must satisfy Schedule.Validate.
func AdvanceIndex(s Schedule, prevIndex int, newTime time.Time) int {
	idx := prevIndex
	if newTime.Before(s[0].StartTime) || idx < 0 {
		idx = 0
	}
	if idx >= len(s) {
		idx = len(s) - 1
	}
	for idx+1 < len(s) && !s[idx+1].StartTime.After(newTime) {
		idx++
	}
	return idx
}

// ElapsedFraction returns how far t is into the interval of entry i.
// The value is not clamped; the terminal entry always reports 1.
func ElapsedFraction(s Schedule, i int, t time.Time) float64 {
	next, ok := s.Next(i)
	if !ok {
		return 1
	}
	total := next.StartTime.Sub(s[i].StartTime)
	if total <= 0 {
		return 1
	}
	return float64(t.Sub(s[i].StartTime)) / float64(total)
}

// ClampFraction limits f to [0, 1].
func ClampFraction(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

// Remaining is the time left until the next entry starts.
// Hours and Minutes are truncated toward zero.
type Remaining struct {
	Total   time.Duration
	Hours   int
	Minutes int
	Seconds int
}

// NewRemaining decomposes d into whole hours, minutes and seconds.
func NewRemaining(d time.Duration) Remaining {
	return Remaining{
		Total:   d,
		Hours:   int(d / time.Hour),
		Minutes: int((d % time.Hour) / time.Minute),
		Seconds: int((d % time.Minute) / time.Second),
	}
}

// RemainingAt returns the time left in entry i at t, or nil once the
// schedule has reached its terminal entry.
func RemainingAt(s Schedule, i int, t time.Time) *Remaining {
	next, ok := s.Next(i)
	if !ok {
		return nil
	}
	r := NewRemaining(next.StartTime.Sub(t))
	return &r
}

// IsNextUpSoon reports whether a next entry exists and starts within threshold.
func IsNextUpSoon(s Schedule, i int, t time.Time, threshold time.Duration) bool {
	r := RemainingAt(s, i, t)
	return r != nil && r.Total < threshold
}

// EntryProgress returns how much of entry i's interval has elapsed at t,
// clamped to [0, total]. Past entries report full progress and future
// entries report zero.
func EntryProgress(s Schedule, i int, t time.Time) (elapsed, total time.Duration) {
	total = terminalProgressSpan
	if next, ok := s.Next(i); ok {
		total = next.StartTime.Sub(s[i].StartTime)
	}
	elapsed = t.Sub(s[i].StartTime)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > total {
		elapsed = total
	}
	return elapsed, total
}

// HandFraction returns the fraction of one revolution elapsed at t since
// the most recent g boundary of basis.
func HandFraction(t, basis time.Time, g Granularity) float64 {
	elapsed := t.Sub(Truncate(basis, g))
	f := math.Mod(float64(elapsed)/float64(g.Period()), 1)
	if f < 0 {
		f++
	}
	return f
}

// SecondHandFraction places the second hand.
func SecondHandFraction(t time.Time) float64 {
	return HandFraction(t, t, GranularityMinute)
}

// MinuteHandFraction places the minute hand.
func MinuteHandFraction(t time.Time) float64 {
	return HandFraction(t, t, GranularityHour)
}

// HourHandFraction places the hour hand on a 12-hour face.
func HourHandFraction(t time.Time) float64 {
	return HandFraction(t, t, GranularityDay)
}

// FacePoint maps a fraction of a revolution onto a circle of radius r
// centred at the origin. Zero points at 12 o'clock and fractions advance
// clockwise; y grows downward as on screens and images.
func FacePoint(fraction, r float64) (x, y float64) {
	angle := 2 * math.Pi * fraction
	return r * math.Sin(angle), -r * math.Cos(angle)
}
