package domain

import (
	"fmt"
	"time"
)

// Well-known activity labels.
const (
	ActivityBreakfast   = "Breakfast!"
	ActivitySchoolOver  = "School is over!"
	WritingThursdayName = "Writing Workshop (all 2nd)"
)

// ScheduleEntry is one activity of the day.
// Entries are values and are never mutated after construction.
type ScheduleEntry struct {
	StartTime time.Time
	Activity  string
	Live      bool
}

// Schedule is an ordered list of entries with strictly increasing start times.
// The first entry opens the day and the last one closes it; the last entry
// has no successor and therefore no interval of its own.
type Schedule []ScheduleEntry

// Validate checks the ordering invariants the cursor relies on.
func (s Schedule) Validate() error {
	if len(s) < 2 {
		return fmt.Errorf("%w: got %d", ErrScheduleTooShort, len(s))
	}
	for i := 1; i < len(s); i++ {
		if !s[i-1].StartTime.Before(s[i].StartTime) {
			return fmt.Errorf("%w: %q (%s) does not precede %q (%s)", ErrScheduleNotOrdered,
				s[i-1].Activity, s[i-1].StartTime.Format("15:04"),
				s[i].Activity, s[i].StartTime.Format("15:04"))
		}
	}
	return nil
}

// Next returns the successor of entry i, if any.
func (s Schedule) Next(i int) (ScheduleEntry, bool) {
	if i+1 < 0 || i+1 >= len(s) {
		return ScheduleEntry{}, false
	}
	return s[i+1], true
}

// IsTerminal reports whether i is the last entry of the schedule.
func (s Schedule) IsTerminal(i int) bool {
	return i == len(s)-1
}

// entryTemplate is a row of the hard-coded day table.
type entryTemplate struct {
	Activity string
	Start    TimeOfDay
	Live     bool
}

func (t entryTemplate) on(day time.Time) ScheduleEntry {
	return ScheduleEntry{Activity: t.Activity, StartTime: t.Start.On(day), Live: t.Live}
}

// DayClass groups weekdays that share the same workshop order.
type DayClass int

// Day classes.
const (
	DayClassMWF   DayClass = iota // Monday, Wednesday, Friday
	DayClassOther                 // Tuesday, Thursday and the weekend
)

// ClassifyWeekday returns the day class of an ISO weekday (Monday=1).
func ClassifyWeekday(weekday int) DayClass {
	switch weekday {
	case 1, 3, 5:
		return DayClassMWF
	default:
		return DayClassOther
	}
}

// String returns the class name.
func (c DayClass) String() string {
	if c == DayClassMWF {
		return "MWF"
	}
	return "other"
}

// workshopBlocks holds the morning workshop rows per day class.
// Writing is always the live workshop.
var workshopBlocks = map[DayClass][]entryTemplate{
	DayClassMWF: {
		{Activity: "Reading Workshop", Start: TimeOfDay{8, 10}},
		{Activity: "Writing Workshop", Start: TimeOfDay{9, 0}, Live: true},
		{Activity: "Phonics", Start: TimeOfDay{9, 45}},
	},
	DayClassOther: {
		{Activity: "Writing Workshop", Start: TimeOfDay{8, 10}, Live: true},
		{Activity: "Reading Workshop", Start: TimeOfDay{9, 0}},
		{Activity: "Catch-up/Redo Time", Start: TimeOfDay{9, 45}},
	},
}

// specialsRotation is indexed by (weekday-1) mod len. Sunday wraps onto
// Monday's slot; the Saturday P.E. is the non-live copy.
var specialsRotation = [...]entryTemplate{
	{Activity: "Music", Start: TimeOfDay{13, 10}, Live: true},
	{Activity: "Art", Start: TimeOfDay{13, 10}, Live: true},
	{Activity: "P.E.", Start: TimeOfDay{13, 10}, Live: true},
	{Activity: "Library", Start: TimeOfDay{13, 10}, Live: true},
	{Activity: "Music", Start: TimeOfDay{13, 10}, Live: true},
	{Activity: "P.E.", Start: TimeOfDay{13, 10}, Live: false},
}

// SpecialsRotationLen is the period of the specials rotation in weekdays.
const SpecialsRotationLen = len(specialsRotation)

// SpecialIndex is the position of the special subject within a generated schedule.
const SpecialIndex = 8

// SpecialFor returns the special subject for an ISO weekday, placed on day.
func SpecialFor(day time.Time, weekday int) ScheduleEntry {
	return specialsRotation[specialSlot(weekday)].on(day)
}

func specialSlot(weekday int) int {
	slot := (weekday - 1) % SpecialsRotationLen
	if slot < 0 {
		slot += SpecialsRotationLen
	}
	return slot
}

// GenerateSchedule builds the schedule for the calendar day of date.
// All start times land on that day in date's location.
func GenerateSchedule(date time.Time) Schedule {
	return GenerateScheduleFor(date, ISOWeekday(date))
}

// GenerateScheduleFor builds the schedule for an explicit ISO weekday,
// placing start times on day. Callers that already hold a weekday use this
// to avoid recomputing it; the weekday is not validated here.
func GenerateScheduleFor(day time.Time, weekday int) Schedule {
	class := ClassifyWeekday(weekday)
	s := make(Schedule, 0, 11)

	s = append(s,
		entryTemplate{Activity: ActivityBreakfast, Start: TimeOfDay{7, 20}}.on(day),
		entryTemplate{Activity: "Morning Meeting", Start: TimeOfDay{7, 40}, Live: true}.on(day),
	)

	for _, t := range workshopBlocks[class] {
		if weekday == 4 && t.Activity == "Writing Workshop" {
			t.Activity = WritingThursdayName
		}
		s = append(s, t.on(day))
	}

	s = append(s,
		entryTemplate{Activity: "Math Workshop", Start: TimeOfDay{10, 15}, Live: class == DayClassMWF}.on(day),
		entryTemplate{Activity: "Lunch/Recess", Start: TimeOfDay{11, 30}}.on(day),
		entryTemplate{Activity: "Social Studies", Start: TimeOfDay{12, 30}}.on(day),
		SpecialFor(day, weekday),
		entryTemplate{Activity: "Science", Start: TimeOfDay{13, 55}}.on(day),
		entryTemplate{Activity: ActivitySchoolOver, Start: TimeOfDay{14, 55}}.on(day),
	)
	return s
}

// ValidateWeekday checks an ISO weekday supplied by a caller.
func ValidateWeekday(weekday int) error {
	if weekday < 1 || weekday > 7 {
		return fmt.Errorf("%w: %d", ErrInvalidWeekday, weekday)
	}
	return nil
}
