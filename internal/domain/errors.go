package domain

import "errors"

// Domain errors.
var (
	ErrScheduleTooShort   = errors.New("schedule must have at least two entries")
	ErrScheduleNotOrdered = errors.New("schedule start times must be strictly increasing")
	ErrInvalidTimeOfDay   = errors.New("invalid time of day")
	ErrInvalidWeekday     = errors.New("weekday must be between 1 (Monday) and 7 (Sunday)")
	ErrInvalidFormat      = errors.New("invalid output format")
	ErrInvalidTickPeriod  = errors.New("tick period must be positive")
	ErrInvalidSize        = errors.New("snapshot size must be positive")
	ErrConfigExists       = errors.New("config file already exists")
	ErrNoDisplay          = errors.New("no X11 display available (DISPLAY is not set)")
	ErrNoTmux             = errors.New("not running inside tmux (TMUX is not set)")
	ErrUnknownSink        = errors.New("unknown status sink")
)
