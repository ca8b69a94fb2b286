package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/classclock/internal/app"
	"github.com/runoshun/classclock/internal/domain"
	"github.com/runoshun/classclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tuesday returns 2026-10-13 at h:m local time.
func tuesday(h, m int) time.Time {
	return time.Date(2026, 10, 13, h, m, 0, 0, time.Local)
}

func newTestModel(t *testing.T, now time.Time) (*Model, *testutil.MockClock) {
	t.Helper()
	clock := &testutil.MockClock{NowTime: now}
	c := app.NewForTest(clock, nil, &testutil.MockLogger{})
	return New(c), clock
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_SamplesImmediately(t *testing.T) {
	m, _ := newTestModel(t, tuesday(10, 14))

	v := m.ViewState()
	assert.Equal(t, "Catch-up/Redo Time", v.Current().Activity)
	assert.True(t, m.showTimeline)
	assert.True(t, m.showSeconds)
	assert.Equal(t, time.Second, m.period)
}

func TestModel_Init_ReturnsTick(t *testing.T) {
	m, _ := newTestModel(t, tuesday(10, 14))
	assert.NotNil(t, m.Init())
}

func TestModel_Update_TickAdvances(t *testing.T) {
	m, clock := newTestModel(t, tuesday(10, 14))

	clock.Set(tuesday(10, 15))
	_, cmd := m.Update(MsgTick{Generation: m.generation})

	assert.NotNil(t, cmd, "a live tick schedules the next one")
	assert.Equal(t, "Math Workshop", m.ViewState().Current().Activity)
}

func TestModel_Update_StaleTickIgnored(t *testing.T) {
	m, clock := newTestModel(t, tuesday(10, 14))
	stale := m.generation
	m.restartTicker()

	clock.Set(tuesday(10, 15))
	_, cmd := m.Update(MsgTick{Generation: stale})

	assert.Nil(t, cmd)
	assert.Equal(t, "Catch-up/Redo Time", m.ViewState().Current().Activity)
}

func TestModel_Update_RefreshResamples(t *testing.T) {
	m, clock := newTestModel(t, tuesday(10, 14))
	before := m.generation

	clock.Set(tuesday(11, 31))
	_, cmd := m.Update(runeKey("r"))

	assert.NotNil(t, cmd)
	assert.Equal(t, before+1, m.generation)
	assert.Equal(t, "Lunch/Recess", m.ViewState().Current().Activity)
}

func TestModel_Update_Toggles(t *testing.T) {
	m, _ := newTestModel(t, tuesday(10, 14))

	m.Update(runeKey("t"))
	assert.False(t, m.showTimeline)
	m.Update(runeKey("s"))
	assert.False(t, m.showSeconds)
	m.Update(runeKey("?"))
	assert.True(t, m.help.ShowAll)

	m.Update(runeKey("t"))
	assert.True(t, m.showTimeline)
}

func TestModel_Update_Quit(t *testing.T) {
	m, _ := newTestModel(t, tuesday(10, 14))

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Update_WindowSize(t *testing.T) {
	m, _ := newTestModel(t, tuesday(10, 14))

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 120, m.help.Width)
}

func TestModel_DayRolloverOnTick(t *testing.T) {
	m, clock := newTestModel(t, tuesday(16, 0))
	require.True(t, m.ViewState().Ended())

	clock.Set(time.Date(2026, 10, 14, 8, 0, 0, 0, time.Local))
	m.Update(MsgTick{Generation: m.generation})

	v := m.ViewState()
	assert.False(t, v.Ended())
	assert.Equal(t, "P.E.", v.Schedule[domain.SpecialIndex].Activity)
}
