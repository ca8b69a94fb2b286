package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/classclock/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
	Success   lipgloss.Color
	Text      lipgloss.Color
	Live      lipgloss.Color
	Hand      lipgloss.Color
	Second    lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow
	Success:   lipgloss.Color("#00B894"), // Green
	Text:      lipgloss.Color("#DFE6E9"), // Light gray
	Live:      lipgloss.Color("#D63031"), // Red
	Hand:      lipgloss.Color("#FFEAA7"), // Pale yellow
	Second:    lipgloss.Color("#FF7675"), // Salmon
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderTime lipgloss.Style

	// Current activity panel
	Panel     lipgloss.Style
	Label     lipgloss.Style
	Activity  lipgloss.Style
	Remaining lipgloss.Style
	NextUp    lipgloss.Style
	NextSoon  lipgloss.Style
	LiveBadge lipgloss.Style
	Ended     lipgloss.Style

	// Clock face
	Face       lipgloss.Style
	FaceMarker lipgloss.Style
	FaceNumber lipgloss.Style
	HourHand   lipgloss.Style
	MinuteHand lipgloss.Style
	SecondHand lipgloss.Style

	// Timeline
	Timeline        lipgloss.Style
	TimelineTime    lipgloss.Style
	TimelineLabel   lipgloss.Style
	TimelineCurrent lipgloss.Style
	TimelinePast    lipgloss.Style

	// Footer
	Footer lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		HeaderTime: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		Panel: lipgloss.NewStyle().
			PaddingLeft(4),
		Label: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		Activity: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Text),
		Remaining: lipgloss.NewStyle().
			Foreground(Colors.Secondary),
		NextUp: lipgloss.NewStyle().
			Foreground(Colors.Text),
		NextSoon: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Warning),
		LiveBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Live),
		Ended: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Success),

		Face: lipgloss.NewStyle(),
		FaceMarker: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		FaceNumber: lipgloss.NewStyle().
			Foreground(Colors.Text),
		HourHand: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Hand),
		MinuteHand: lipgloss.NewStyle().
			Foreground(Colors.Hand),
		SecondHand: lipgloss.NewStyle().
			Foreground(Colors.Second),

		Timeline: lipgloss.NewStyle().
			MarginTop(1),
		TimelineTime: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		TimelineLabel: lipgloss.NewStyle().
			Foreground(Colors.Text),
		TimelineCurrent: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Warning),
		TimelinePast: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			MarginTop(1).
			Foreground(Colors.Muted),
	}
}

// EntryColor returns the lipgloss color of schedule entry i.
func EntryColor(i int) lipgloss.Color {
	return lipgloss.Color(domain.EntryColor(i))
}
