package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 10, 13, 0, 0, 0, 0, time.Local)

func at(h, m, s int) time.Time {
	return time.Date(testDay.Year(), testDay.Month(), testDay.Day(), h, m, s, 0, time.Local)
}

// abcSchedule is [{A,7:00},{B,7:30},{C,8:00}].
func abcSchedule() Schedule {
	return Schedule{
		{Activity: "A", StartTime: at(7, 0, 0)},
		{Activity: "B", StartTime: at(7, 30, 0)},
		{Activity: "C", StartTime: at(8, 0, 0)},
	}
}

func TestAdvanceIndex(t *testing.T) {
	s := abcSchedule()
	tests := []struct {
		name      string
		now       time.Time
		prevIndex int
		want      int
	}{
		{"before start", at(6, 0, 0), 0, 0},
		{"stale index before start resets", at(6, 0, 0), 2, 0},
		{"first interval", at(7, 15, 0), 0, 0},
		{"boundary is inclusive", at(7, 30, 0), 0, 1},
		{"skips several entries", at(9, 0, 0), 0, 2},
		{"terminal stays terminal", at(23, 0, 0), 2, 2},
		{"backward within day keeps index", at(7, 10, 0), 1, 1},
		{"negative index is clamped", at(7, 45, 0), -3, 1},
		{"index past end is clamped", at(7, 45, 0), 9, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdvanceIndex(s, tt.prevIndex, tt.now))
		})
	}
}

func TestCursor_Advance_Idempotent(t *testing.T) {
	s := abcSchedule()
	c := Cursor{}.Advance(s, at(7, 31, 0))
	again := c.Advance(s, at(7, 31, 0))
	assert.Equal(t, c, again)
	assert.Equal(t, 1, again.CurrentEntryIndex)
}

func TestCursor_Advance_Monotonic(t *testing.T) {
	s := abcSchedule()
	c := Cursor{}
	prev := 0
	for now := at(7, 0, 0); now.Before(at(8, 30, 0)); now = now.Add(7 * time.Minute) {
		c = c.Advance(s, now)
		assert.GreaterOrEqual(t, c.CurrentEntryIndex, prev)
		prev = c.CurrentEntryIndex
	}
	assert.Equal(t, 2, prev)
}

func TestScenario_NextUpSoon(t *testing.T) {
	s := abcSchedule()

	c := Cursor{}.Advance(s, at(7, 15, 0))
	require.Equal(t, 0, c.CurrentEntryIndex)
	r := RemainingAt(s, c.CurrentEntryIndex, c.CurrentTime)
	require.NotNil(t, r)
	assert.Equal(t, 15*time.Minute, r.Total)
	assert.Equal(t, 0, r.Hours)
	assert.Equal(t, 15, r.Minutes)
	assert.False(t, IsNextUpSoon(s, c.CurrentEntryIndex, c.CurrentTime, DefaultSoonThreshold))

	c = c.Advance(s, at(7, 26, 0))
	r = RemainingAt(s, c.CurrentEntryIndex, c.CurrentTime)
	require.NotNil(t, r)
	assert.Equal(t, 4, r.Minutes)
	assert.True(t, IsNextUpSoon(s, c.CurrentEntryIndex, c.CurrentTime, DefaultSoonThreshold))

	c = c.Advance(s, at(7, 30, 0))
	assert.Equal(t, 1, c.CurrentEntryIndex)
}

func TestScenario_Ended(t *testing.T) {
	s := abcSchedule()
	c := Cursor{}.Advance(s, at(8, 0, 0))
	assert.Equal(t, 2, c.CurrentEntryIndex)
	assert.Nil(t, RemainingAt(s, c.CurrentEntryIndex, c.CurrentTime))
	assert.False(t, IsNextUpSoon(s, c.CurrentEntryIndex, c.CurrentTime, DefaultSoonThreshold))
}

func TestElapsedFraction(t *testing.T) {
	s := abcSchedule()
	assert.InDelta(t, 0, ElapsedFraction(s, 0, at(7, 0, 0)), 1e-9)
	assert.InDelta(t, 0.5, ElapsedFraction(s, 0, at(7, 15, 0)), 1e-9)
	assert.InDelta(t, 1, ElapsedFraction(s, 0, at(7, 30, 0)), 1e-9)
	assert.InDelta(t, 1, ElapsedFraction(s, 2, at(8, 10, 0)), 1e-9)
	assert.Less(t, ElapsedFraction(s, 1, at(7, 0, 0)), 0.0)
}

func TestClampFraction(t *testing.T) {
	assert.Equal(t, 0.0, ClampFraction(-0.5))
	assert.Equal(t, 0.25, ClampFraction(0.25))
	assert.Equal(t, 1.0, ClampFraction(3))
}

func TestNewRemaining_Truncates(t *testing.T) {
	r := NewRemaining(1*time.Hour + 59*time.Minute + 59*time.Second + 900*time.Millisecond)
	assert.Equal(t, Remaining{
		Total:   1*time.Hour + 59*time.Minute + 59*time.Second + 900*time.Millisecond,
		Hours:   1,
		Minutes: 59,
		Seconds: 59,
	}, r)

	neg := NewRemaining(-90 * time.Second)
	assert.Equal(t, 0, neg.Hours)
	assert.Equal(t, -1, neg.Minutes)
	assert.Equal(t, -30, neg.Seconds)
}

func TestEntryProgress(t *testing.T) {
	s := abcSchedule()
	now := at(7, 40, 0)

	elapsed, total := EntryProgress(s, 0, now)
	assert.Equal(t, 30*time.Minute, elapsed, "past entries are full")
	assert.Equal(t, 30*time.Minute, total)

	elapsed, total = EntryProgress(s, 1, now)
	assert.Equal(t, 10*time.Minute, elapsed)
	assert.Equal(t, 30*time.Minute, total)

	elapsed, total = EntryProgress(s, 2, now)
	assert.Equal(t, time.Duration(0), elapsed, "future entries are empty")
	assert.Equal(t, time.Hour, total, "terminal entry falls back to one hour")

	elapsed, _ = EntryProgress(s, 2, at(12, 0, 0))
	assert.Equal(t, time.Hour, elapsed)
}

func TestHandFractions(t *testing.T) {
	now := at(15, 45, 30)
	assert.InDelta(t, 0.5, SecondHandFraction(now), 1e-9)
	assert.InDelta(t, 45.5/60, MinuteHandFraction(now), 1e-9)
	assert.InDelta(t, 3.7583333/12, HourHandFraction(now), 1e-6)

	assert.InDelta(t, 0, HourHandFraction(at(0, 0, 0)), 1e-9)
	assert.InDelta(t, 0, HourHandFraction(at(12, 0, 0)), 1e-9)
}

func TestHandFraction_Basis(t *testing.T) {
	// Measured from the hour boundary of basis, wrapping at one period.
	assert.InDelta(t, 0.25, HandFraction(at(10, 15, 0), at(10, 59, 0), GranularityHour), 1e-9)
	assert.InDelta(t, 0.25, HandFraction(at(11, 15, 0), at(10, 0, 0), GranularityHour), 1e-9)
	assert.InDelta(t, 0.75, HandFraction(at(9, 45, 0), at(10, 0, 0), GranularityHour), 1e-9)
}

func TestFacePoint(t *testing.T) {
	x, y := FacePoint(0, 10)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, -10, y, 1e-9)

	x, y = FacePoint(0.25, 10)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)

	x, y = FacePoint(0.5, 10)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 10, y, 1e-9)
}
