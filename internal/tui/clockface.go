package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/classclock/internal/domain"
)

// rimSamples is the number of points drawn around the rim.
const rimSamples = 48

// Face glyphs. ASCII only, so every cell is exactly one column wide.
const (
	glyphRim       = '.'
	glyphRemaining = 'o'
	glyphHour      = '#'
	glyphMinute    = '*'
	glyphSecond    = ':'
	glyphCenter    = '@'
)

type faceCell struct {
	style *lipgloss.Style
	r     rune
}

// faceGrid is a character canvas for the analog face. Terminal cells are
// about twice as tall as they are wide, so x is stretched by two.
type faceGrid struct {
	cells  [][]faceCell
	radius int
	cx, cy int
}

func newFaceGrid(radius int) *faceGrid {
	g := &faceGrid{radius: radius, cx: 2*radius + 1, cy: radius}
	g.cells = make([][]faceCell, 2*radius+1)
	for i := range g.cells {
		g.cells[i] = make([]faceCell, 4*radius+3)
		for j := range g.cells[i] {
			g.cells[i][j] = faceCell{r: ' '}
		}
	}
	return g
}

// pos maps a fraction of a revolution at distance d to a cell.
func (g *faceGrid) pos(fraction, d float64) (row, col int) {
	x, y := domain.FacePoint(fraction, d)
	return g.cy + int(math.Round(y)), g.cx + int(math.Round(2*x))
}

func (g *faceGrid) set(row, col int, r rune, style *lipgloss.Style) {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return
	}
	g.cells[row][col] = faceCell{r: r, style: style}
}

func (g *faceGrid) text(row, col int, s string, style *lipgloss.Style) {
	start := col - len(s)/2
	for i, r := range s {
		g.set(row, start+i, r, style)
	}
}

// hand draws a hand from the centre out to length (as a share of radius).
func (g *faceGrid) hand(fraction, length float64, r rune, style *lipgloss.Style) {
	end := length * float64(g.radius)
	for d := 0.5; d <= end; d += 0.5 {
		row, col := g.pos(fraction, d)
		g.set(row, col, r, style)
	}
}

// String renders the grid, grouping runs of equally styled cells.
func (g *faceGrid) String() string {
	lines := make([]string, len(g.cells))
	for i, row := range g.cells {
		var b strings.Builder
		var run strings.Builder
		var runStyle *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(runStyle.Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range row {
			if c.style != runStyle {
				flush()
				runStyle = c.style
			}
			run.WriteRune(c.r)
		}
		flush()
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// renderFace draws the analog clock for v. The part of the rim still
// ahead in the current entry is drawn in the entry's colour.
func renderFace(v domain.ViewState, radius int, showSeconds bool, s *Styles) string {
	g := newFaceGrid(radius)
	t := v.CurrentTime

	remainingFrom := 2.0 // nothing shaded
	if !v.Ended() && !v.BeforeStart() {
		remainingFrom = v.ElapsedFraction()
	}
	remaining := lipgloss.NewStyle().Foreground(EntryColor(v.CurrentEntryIndex))

	for i := 0; i < rimSamples; i++ {
		f := float64(i) / rimSamples
		row, col := g.pos(f, float64(radius))
		if f >= remainingFrom {
			g.set(row, col, glyphRemaining, &remaining)
		} else {
			g.set(row, col, glyphRim, &s.FaceMarker)
		}
	}

	for _, n := range []struct {
		label string
		f     float64
	}{{"12", 0}, {"3", 0.25}, {"6", 0.5}, {"9", 0.75}} {
		row, col := g.pos(n.f, float64(radius))
		g.text(row, col, n.label, &s.FaceNumber)
	}

	if showSeconds {
		g.hand(domain.SecondHandFraction(t), 0.8, glyphSecond, &s.SecondHand)
	}
	g.hand(domain.MinuteHandFraction(t), 0.7, glyphMinute, &s.MinuteHand)
	g.hand(domain.HourHandFraction(t), 0.5, glyphHour, &s.HourHand)
	g.set(g.cy, g.cx, glyphCenter, &s.HourHand)

	return s.Face.Render(g.String())
}
