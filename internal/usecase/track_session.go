// Package usecase contains the application use cases.
package usecase

import (
	"fmt"
	"time"

	"github.com/runoshun/classclock/internal/domain"
)

// Log categories.
const (
	logSession  = "session"
	logSchedule = "schedule"
	logCursor   = "cursor"
	logSink     = "sink"
	logHook     = "hook"
)

// SessionTracker owns the session state of one view. Every Tick samples
// the clock and replaces the whole session value; nothing else mutates it.
// A tracker is driven from a single goroutine.
type SessionTracker struct {
	clock   domain.Clock
	logger  domain.Logger
	session domain.Session
	soon    time.Duration
	started bool
	changed bool
}

// NewSessionTracker creates a tracker. A zero soon threshold uses the default.
func NewSessionTracker(clock domain.Clock, logger domain.Logger, soon time.Duration) *SessionTracker {
	if soon <= 0 {
		soon = domain.DefaultSoonThreshold
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &SessionTracker{clock: clock, logger: logger, soon: soon}
}

// Tick samples the clock, advances the session and returns the new view.
func (t *SessionTracker) Tick() domain.ViewState {
	now := t.clock.Now()

	if !t.started {
		t.session = domain.NewSession(now)
		t.started = true
		t.logger.Info(logSchedule, fmt.Sprintf("generated schedule for %s (%s)",
			now.Format("Mon 2006-01-02"), domain.ClassifyWeekday(domain.ISOWeekday(now))))
		t.logEntry(t.session)
		return t.session.View(t.soon)
	}

	next, res := t.session.Step(now)
	t.changed = res.Transitioned || res.Regenerated
	if res.Regenerated {
		t.logger.Info(logSchedule, fmt.Sprintf("day changed, regenerated schedule for %s",
			now.Format("Mon 2006-01-02")))
	}
	if res.BackwardJump {
		t.logger.Debug(logCursor, fmt.Sprintf("clock moved backward from %s to %s, keeping entry %d",
			t.session.Cursor.CurrentTime.Format(time.TimeOnly), now.Format(time.TimeOnly), next.Cursor.CurrentEntryIndex))
	}
	if res.Transitioned {
		t.logEntry(next)
	}
	t.session = next
	return t.session.View(t.soon)
}

// Changed reports whether the last Tick moved to another entry or day.
// The first Tick does not count as a change.
func (t *SessionTracker) Changed() bool {
	return t.changed
}

// Session returns the current session value.
func (t *SessionTracker) Session() domain.Session {
	return t.session
}

func (t *SessionTracker) logEntry(s domain.Session) {
	i := s.Cursor.CurrentEntryIndex
	e := s.Schedule[i]
	if s.Schedule.IsTerminal(i) {
		t.logger.Info(logCursor, fmt.Sprintf("entered %q at %s, day is over", e.Activity, e.StartTime.Format("3:04 PM")))
		return
	}
	t.logger.Info(logCursor, fmt.Sprintf("entered %q (entry %d) at %s", e.Activity, i, e.StartTime.Format("3:04 PM")))
}
