package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is 2026-10-12, a Monday; monday.AddDate(0, 0, n) walks the week.
var monday = time.Date(2026, 10, 12, 0, 0, 0, 0, time.Local)

func weekdayDate(weekday int) time.Time {
	return monday.AddDate(0, 0, weekday-1)
}

func activities(s Schedule) []string {
	out := make([]string, len(s))
	for i, e := range s {
		out[i] = e.Activity
	}
	return out
}

func TestGenerateSchedule_Invariants(t *testing.T) {
	for weekday := 1; weekday <= 7; weekday++ {
		date := weekdayDate(weekday)
		t.Run(date.Weekday().String(), func(t *testing.T) {
			require.Equal(t, weekday, ISOWeekday(date))

			s := GenerateSchedule(date)
			require.NoError(t, s.Validate())
			require.Len(t, s, 11)
			assert.Equal(t, ActivityBreakfast, s[0].Activity)
			assert.Equal(t, ActivitySchoolOver, s[len(s)-1].Activity)

			for _, e := range s {
				y, m, d := e.StartTime.Date()
				assert.Equal(t, 2026, y)
				assert.Equal(t, time.October, m)
				assert.Equal(t, date.Day(), d)
			}
		})
	}
}

func TestGenerateSchedule_Deterministic(t *testing.T) {
	date := weekdayDate(3)
	assert.Equal(t, GenerateSchedule(date), GenerateSchedule(date.Add(13*time.Hour)))
}

func TestGenerateSchedule_MWF(t *testing.T) {
	s := GenerateSchedule(weekdayDate(1))

	assert.Equal(t, []string{
		"Breakfast!",
		"Morning Meeting",
		"Reading Workshop",
		"Writing Workshop",
		"Phonics",
		"Math Workshop",
		"Lunch/Recess",
		"Social Studies",
		"Music",
		"Science",
		"School is over!",
	}, activities(s))

	live := map[string]bool{}
	for _, e := range s {
		live[e.Activity] = e.Live
	}
	assert.True(t, live["Morning Meeting"])
	assert.True(t, live["Writing Workshop"])
	assert.True(t, live["Math Workshop"])
	assert.False(t, live["Reading Workshop"])
	assert.False(t, live["Lunch/Recess"])
	assert.False(t, live["School is over!"])

	assert.Equal(t, "7:20 AM", s[0].StartTime.Format("3:04 PM"))
	assert.Equal(t, "9:00 AM", s[3].StartTime.Format("3:04 PM"))
	assert.Equal(t, "10:15 AM", s[5].StartTime.Format("3:04 PM"))
	assert.Equal(t, "2:55 PM", s[10].StartTime.Format("3:04 PM"))
}

func TestGenerateSchedule_Tuesday(t *testing.T) {
	s := GenerateSchedule(weekdayDate(2))

	assert.Equal(t, "Writing Workshop", s[2].Activity)
	assert.True(t, s[2].Live)
	assert.Equal(t, "8:10 AM", s[2].StartTime.Format("3:04 PM"))
	assert.Equal(t, "Reading Workshop", s[3].Activity)
	assert.Equal(t, "Catch-up/Redo Time", s[4].Activity)
	assert.Equal(t, "Math Workshop", s[5].Activity)
	assert.False(t, s[5].Live)
	assert.Equal(t, "Art", s[SpecialIndex].Activity)
}

func TestGenerateSchedule_ThursdayLabel(t *testing.T) {
	s := GenerateSchedule(weekdayDate(4))
	assert.Equal(t, WritingThursdayName, s[2].Activity)
	assert.True(t, s[2].Live)

	// Only Thursday renames the workshop.
	for _, wd := range []int{2, 6, 7} {
		assert.Equal(t, "Writing Workshop", GenerateSchedule(weekdayDate(wd))[2].Activity)
	}
}

func TestGenerateSchedule_Specials(t *testing.T) {
	tests := []struct {
		activity string
		weekday  int
		live     bool
	}{
		{"Music", 1, true},
		{"Art", 2, true},
		{"P.E.", 3, true},
		{"Library", 4, true},
		{"Music", 5, true},
		{"P.E.", 6, false},
		{"Music", 7, true},
	}

	for _, tt := range tests {
		t.Run(time.Weekday(tt.weekday%7).String(), func(t *testing.T) {
			special := GenerateSchedule(weekdayDate(tt.weekday))[SpecialIndex]
			assert.Equal(t, tt.activity, special.Activity)
			assert.Equal(t, tt.live, special.Live)
			assert.Equal(t, "1:10 PM", special.StartTime.Format("3:04 PM"))
		})
	}
}

func TestSpecialFor_PeriodSix(t *testing.T) {
	day := weekdayDate(1)
	for weekday := 1; weekday+SpecialsRotationLen <= 7; weekday++ {
		assert.Equal(t, SpecialFor(day, weekday), SpecialFor(day, weekday+SpecialsRotationLen))
	}
}

func TestClassifyWeekday(t *testing.T) {
	assert.Equal(t, DayClassMWF, ClassifyWeekday(1))
	assert.Equal(t, DayClassOther, ClassifyWeekday(2))
	assert.Equal(t, DayClassMWF, ClassifyWeekday(3))
	assert.Equal(t, DayClassOther, ClassifyWeekday(4))
	assert.Equal(t, DayClassMWF, ClassifyWeekday(5))
	assert.Equal(t, DayClassOther, ClassifyWeekday(6))
	assert.Equal(t, DayClassOther, ClassifyWeekday(7))
	assert.Equal(t, "MWF", DayClassMWF.String())
}

func TestSchedule_Validate(t *testing.T) {
	day := weekdayDate(1)
	at := func(h, m int) time.Time { return TimeOfDay{h, m}.On(day) }

	assert.ErrorIs(t, Schedule{}.Validate(), ErrScheduleTooShort)
	assert.ErrorIs(t, Schedule{{Activity: "A", StartTime: at(7, 0)}}.Validate(), ErrScheduleTooShort)
	assert.ErrorIs(t, Schedule{
		{Activity: "A", StartTime: at(7, 0)},
		{Activity: "B", StartTime: at(7, 0)},
	}.Validate(), ErrScheduleNotOrdered)
	assert.NoError(t, Schedule{
		{Activity: "A", StartTime: at(7, 0)},
		{Activity: "B", StartTime: at(7, 30)},
	}.Validate())
}

func TestValidateWeekday(t *testing.T) {
	assert.NoError(t, ValidateWeekday(1))
	assert.NoError(t, ValidateWeekday(7))
	assert.ErrorIs(t, ValidateWeekday(0), ErrInvalidWeekday)
	assert.ErrorIs(t, ValidateWeekday(8), ErrInvalidWeekday)
}
