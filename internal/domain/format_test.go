package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"hours and minutes", 2*time.Hour + 5*time.Minute + 10*time.Second, "2 hours 5 minutes left"},
		{"singular", time.Hour + time.Minute, "1 hour 1 minute left"},
		{"whole hour", time.Hour, "1 hour left"},
		{"minutes only", 4*time.Minute + 59*time.Second, "4 minutes left"},
		{"final minute", 42 * time.Second, "42 seconds left"},
		{"one second", time.Second, "1 second left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRemaining(tt.in)
			assert.Equal(t, tt.want, FormatRemaining(&r))
		})
	}

	assert.Equal(t, "", FormatRemaining(nil))
}

func TestFormatCountdown(t *testing.T) {
	r := NewRemaining(time.Hour + 2*time.Minute + 3*time.Second)
	assert.Equal(t, "1:02:03", FormatCountdown(&r))
	assert.Equal(t, "", FormatCountdown(nil))
}

func TestFormatStatus(t *testing.T) {
	s := abcSchedule()
	s[0].Live = true
	v := NewViewState(s, Cursor{}.Advance(s, at(7, 15, 0)), DefaultSoonThreshold)

	assert.Equal(t, "7:15 AM A | 15 minutes left | next: B", FormatStatus("", v))
	assert.Equal(t, "A LIVE 0:15:00", FormatStatus("{activity} {live} {countdown}", v))

	ended := NewViewState(s, Cursor{}.Advance(s, at(9, 0, 0)), DefaultSoonThreshold)
	assert.Equal(t, HeadlineEnded, FormatStatus("{activity} {remaining}", ended))
}

func TestExpandPlaceholders_KeepsLayoutAfterEnd(t *testing.T) {
	s := abcSchedule()
	ended := NewViewState(s, Cursor{}.Advance(s, at(9, 0, 0)), DefaultSoonThreshold)

	assert.Equal(t, "echo '"+HeadlineEnded+"'", ExpandPlaceholders("echo '{activity}{remaining}{next}'", ended))
}

func TestEntryColor(t *testing.T) {
	assert.Equal(t, "#1f77b4", EntryColor(0))
	assert.Equal(t, "#17becf", EntryColor(9))
	assert.Equal(t, "#1f77b4", EntryColor(10))
	assert.Equal(t, "#ff7f0e", EntryColor(-1))
}
