package domain

import (
	"fmt"
	"strings"
)

// Headlines for the states that have no current activity to show.
const (
	HeadlineEnded       = "School has ended!"
	HeadlineBeforeStart = "School hasn't started yet"
)

// DefaultStatusFormat is the status line layout used when none is configured.
const DefaultStatusFormat = "{clock} {activity} | {remaining} | next: {next}"

// FormatRemaining renders r as e.g. "1 hour 5 minutes left".
// Seconds are only shown in the final minute. Returns "" for nil.
func FormatRemaining(r *Remaining) string {
	if r == nil {
		return ""
	}
	var parts []string
	if r.Hours != 0 {
		parts = append(parts, plural(r.Hours, "hour"))
	}
	if r.Minutes != 0 {
		parts = append(parts, plural(r.Minutes, "minute"))
	}
	if len(parts) == 0 {
		parts = append(parts, plural(r.Seconds, "second"))
	}
	return strings.Join(parts, " ") + " left"
}

// FormatCountdown renders r as "H:MM:SS". Returns "" for nil.
func FormatCountdown(r *Remaining) string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%d:%02d:%02d", r.Hours, r.Minutes, r.Seconds)
}

func plural(n int, unit string) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Headline returns the main line of text for the view.
func (v ViewState) Headline() string {
	switch {
	case v.Ended():
		return HeadlineEnded
	case v.BeforeStart():
		return HeadlineBeforeStart
	default:
		return v.Current().Activity
	}
}

// NextUp returns the label of the next entry, or "" when the day is over.
func (v ViewState) NextUp() string {
	next, ok := v.Next()
	if !ok {
		return ""
	}
	return next.Activity
}

// FormatStatus renders the status line for v. An empty format uses
// DefaultStatusFormat. Once the day has ended only the headline is returned.
func FormatStatus(format string, v ViewState) string {
	if v.Ended() {
		return HeadlineEnded
	}
	if format == "" {
		format = DefaultStatusFormat
	}
	return ExpandPlaceholders(format, v)
}

// ExpandPlaceholders replaces {clock}, {activity}, {remaining}, {countdown},
// {next} and {live} in s with values from v.
func ExpandPlaceholders(s string, v ViewState) string {
	live := ""
	if v.Current().Live {
		live = "LIVE"
	}
	r := strings.NewReplacer(
		"{clock}", v.CurrentTime.Format("3:04 PM"),
		"{activity}", v.Headline(),
		"{remaining}", FormatRemaining(v.Remaining),
		"{countdown}", FormatCountdown(v.Remaining),
		"{next}", v.NextUp(),
		"{live}", live,
	)
	return strings.TrimSpace(r.Replace(s))
}
