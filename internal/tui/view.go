package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/runoshun/classclock/internal/domain"
)

const (
	faceRadius       = 5
	timeColumnWidth  = 8
	labelColumnWidth = 22
	minTimelineWidth = 10
)

// View renders the TUI.
func (m *Model) View() string {
	if m.view.Schedule == nil {
		return ""
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		renderFace(m.view, faceRadius, m.showSeconds, &m.styles),
		m.styles.Panel.Render(m.renderActivity()),
	)

	sections := []string{m.renderHeader(), top}
	if m.showTimeline {
		sections = append(sections, m.styles.Timeline.Render(m.renderTimeline()))
	}
	sections = append(sections, m.styles.Footer.Render(m.help.View(m.keys)))

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderHeader() string {
	t := m.view.CurrentTime
	layout := "3:04 PM"
	if m.showSeconds {
		layout = "3:04:05 PM"
	}
	return m.styles.Header.Render(t.Format("Mon Jan 2, 2006")) + "  " +
		m.styles.HeaderTime.Render(t.Format(layout))
}

// renderActivity renders the current activity, time left and what comes next.
func (m *Model) renderActivity() string {
	v := m.view
	if v.Ended() {
		return m.styles.Ended.Render(v.Headline())
	}

	var lines []string
	if v.BeforeStart() {
		lines = append(lines, m.styles.Label.Render("Before school"))
	} else {
		lines = append(lines, m.styles.Label.Render("Now"))
	}

	headline := m.styles.Activity.Render(v.Headline())
	if !v.BeforeStart() && v.Current().Live {
		headline += " " + m.styles.LiveBadge.Render("LIVE")
	}
	lines = append(lines, headline, m.styles.Remaining.Render(domain.FormatRemaining(v.UntilUpcoming())), "")

	if next, ok := v.Upcoming(); ok {
		style := m.styles.NextUp
		if v.IsNextUpSoon && !v.BeforeStart() {
			style = m.styles.NextSoon
		}
		lines = append(lines,
			m.styles.Label.Render("Next up at "+next.StartTime.Format("3:04 PM")),
			style.Render(next.Activity),
		)
	}
	return strings.Join(lines, "\n")
}

// renderTimeline renders one row per entry with its start time, label and
// a progress bar in the entry's colour. The terminal entry's bar spans one
// hour.
func (m *Model) renderTimeline() string {
	v := m.view
	barWidth := m.barWidth()

	rows := make([]string, 0, len(v.Schedule))
	for i, e := range v.Schedule {
		label := runewidth.FillRight(truncate.StringWithTail(e.Activity, labelColumnWidth, "..."), labelColumnWidth)
		when := runewidth.FillLeft(e.StartTime.Format("3:04 PM"), timeColumnWidth)

		labelStyle := m.styles.TimelineLabel
		switch {
		case i == v.CurrentEntryIndex && !v.BeforeStart():
			labelStyle = m.styles.TimelineCurrent
		case i < v.CurrentEntryIndex:
			labelStyle = m.styles.TimelinePast
		}

		bar := progress.New(
			progress.WithSolidFill(domain.EntryColor(i)),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		)
		row := m.styles.TimelineTime.Render(when) + "  " + labelStyle.Render(label) + " " + bar.ViewAs(v.Progress(i))
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

// barWidth fits the configured bar width into the terminal, if known.
func (m *Model) barWidth() int {
	w := m.timelineWidth
	if m.width > 0 {
		room := m.width - m.styles.App.GetHorizontalFrameSize() - timeColumnWidth - labelColumnWidth - 3
		if room < w {
			w = room
		}
	}
	if w < minTimelineWidth {
		w = minTimelineWidth
	}
	return w
}
