package domain

import "time"

// Session is the state owned by one running view: the schedule of the
// observed day and the cursor into it. Step returns a new Session; a
// Session value is never modified in place.
type Session struct {
	Day      time.Time
	Schedule Schedule
	Cursor   Cursor
}

// StepResult describes what changed during a Session.Step.
type StepResult struct {
	PrevIndex    int
	Regenerated  bool // the calendar day changed and the schedule was rebuilt
	Transitioned bool // the current entry changed
	BackwardJump bool // the clock moved backward within the same day
}

// NewSession generates the schedule for now's day and positions the cursor.
func NewSession(now time.Time) Session {
	schedule := GenerateSchedule(now)
	return Session{
		Day:      Truncate(now, GranularityDay),
		Schedule: schedule,
		Cursor:   Cursor{}.Advance(schedule, now),
	}
}

// Step advances the session to now. When now falls on a different calendar
// day the schedule is regenerated and the index restarts from 0.
func (s Session) Step(now time.Time) (Session, StepResult) {
	res := StepResult{PrevIndex: s.Cursor.CurrentEntryIndex}

	next := s
	if len(s.Schedule) == 0 || !SameDay(s.Day, now) {
		next = Session{
			Day:      Truncate(now, GranularityDay),
			Schedule: GenerateSchedule(now),
		}
		res.Regenerated = len(s.Schedule) > 0
	} else if now.Before(s.Cursor.CurrentTime) {
		res.BackwardJump = true
	}

	next.Cursor = next.Cursor.Advance(next.Schedule, now)
	res.Transitioned = res.Regenerated || next.Cursor.CurrentEntryIndex != res.PrevIndex
	return next, res
}

// View derives the rendering record for the current cursor position.
func (s Session) View(soonThreshold time.Duration) ViewState {
	return NewViewState(s.Schedule, s.Cursor, soonThreshold)
}

// ViewState is everything a renderer needs for one tick.
// Renderers read it and never write back into the session.
type ViewState struct {
	CurrentTime       time.Time
	Remaining         *Remaining // nil once the terminal entry is reached
	Schedule          Schedule
	CurrentEntryIndex int
	IsNextUpSoon      bool
}

// NewViewState computes the derived fields for cursor c over s.
func NewViewState(s Schedule, c Cursor, soonThreshold time.Duration) ViewState {
	i := c.CurrentEntryIndex
	return ViewState{
		Schedule:          s,
		CurrentEntryIndex: i,
		CurrentTime:       c.CurrentTime,
		Remaining:         RemainingAt(s, i, c.CurrentTime),
		IsNextUpSoon:      IsNextUpSoon(s, i, c.CurrentTime, soonThreshold),
	}
}

// Current returns the entry in progress.
func (v ViewState) Current() ScheduleEntry {
	return v.Schedule[v.CurrentEntryIndex]
}

// Next returns the entry that starts after the current one, if any.
func (v ViewState) Next() (ScheduleEntry, bool) {
	return v.Schedule.Next(v.CurrentEntryIndex)
}

// Ended reports whether the terminal entry has been reached.
func (v ViewState) Ended() bool {
	return v.Remaining == nil
}

// BeforeStart reports whether the day has not started yet.
func (v ViewState) BeforeStart() bool {
	return v.CurrentTime.Before(v.Schedule[0].StartTime)
}

// Upcoming returns the entry to announce as next: the first entry before
// the day starts, otherwise the successor of the current one.
func (v ViewState) Upcoming() (ScheduleEntry, bool) {
	if v.BeforeStart() {
		return v.Schedule[0], true
	}
	return v.Next()
}

// UntilUpcoming returns the time left until Upcoming starts, or nil when
// nothing follows.
func (v ViewState) UntilUpcoming() *Remaining {
	e, ok := v.Upcoming()
	if !ok {
		return nil
	}
	r := NewRemaining(e.StartTime.Sub(v.CurrentTime))
	return &r
}

// ElapsedFraction returns the clamped progress through the current entry.
func (v ViewState) ElapsedFraction() float64 {
	return ClampFraction(ElapsedFraction(v.Schedule, v.CurrentEntryIndex, v.CurrentTime))
}

// Progress returns the clamped progress of entry i as a fraction.
func (v ViewState) Progress(i int) float64 {
	elapsed, total := EntryProgress(v.Schedule, i, v.CurrentTime)
	return float64(elapsed) / float64(total)
}
