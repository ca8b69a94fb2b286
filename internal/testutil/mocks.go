// Package testutil provides test doubles for the domain ports.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/runoshun/classclock/internal/domain"
)

// Compile-time interface checks.
var (
	_ domain.Clock            = (*MockClock)(nil)
	_ domain.Logger           = (*MockLogger)(nil)
	_ domain.StatusSink       = (*MockStatusSink)(nil)
	_ domain.SnapshotRenderer = (*MockSnapshotRenderer)(nil)
	_ domain.ConfigManager    = (*MockConfigManager)(nil)
	_ domain.ConfigLoader     = (*MockConfigLoader)(nil)
	_ domain.CommandExecutor  = (*MockCommandExecutor)(nil)
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
	mu      sync.Mutex
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.NowTime
}

// Set moves the clock to t.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NowTime = t
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NowTime = m.NowTime.Add(d)
}

// LogEntry is one message recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info message.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error message.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// ByCategory returns the recorded messages of one category.
func (m *MockLogger) ByCategory(category string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// MockStatusSink records published status lines.
// Fields are ordered to minimize memory padding.
type MockStatusSink struct {
	PublishErr error
	// OnPublish, if set, runs after each recorded publish.
	OnPublish func(n int)
	Published []string
	mu        sync.Mutex
	Closed    bool
}

// Publish records status.
func (m *MockStatusSink) Publish(status string) error {
	m.mu.Lock()
	m.Published = append(m.Published, status)
	n := len(m.Published)
	m.mu.Unlock()

	if m.OnPublish != nil {
		m.OnPublish(n)
	}
	return m.PublishErr
}

// Close marks the sink closed.
func (m *MockStatusSink) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// Lines returns a copy of the published lines.
func (m *MockStatusSink) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Published...)
}

// MockSnapshotRenderer writes a short text marker instead of an image.
type MockSnapshotRenderer struct {
	RenderErr error
	Views     []domain.ViewState
}

// Render records v and writes "<headline>@<size>".
func (m *MockSnapshotRenderer) Render(w io.Writer, v domain.ViewState, size int) error {
	m.Views = append(m.Views, v)
	if m.RenderErr != nil {
		return m.RenderErr
	}
	_, err := fmt.Fprintf(w, "%s@%d", v.Headline(), size)
	return err
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr    error
	Global     domain.ConfigInfo
	Local      domain.ConfigInfo
	InitCalls  []string
	ForceCalls []bool
}

// GetGlobalConfigInfo returns Global.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.Global }

// GetLocalConfigInfo returns Local.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo { return m.Local }

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(force bool) (string, error) {
	m.InitCalls = append(m.InitCalls, "global")
	m.ForceCalls = append(m.ForceCalls, force)
	return m.Global.Path, m.InitErr
}

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig(force bool) (string, error) {
	m.InitCalls = append(m.InitCalls, "local")
	m.ForceCalls = append(m.ForceCalls, force)
	return m.Local.Path, m.InitErr
}

// MockConfigLoader returns a fixed config.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns Config, or a default config when Config is nil.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal behaves like Load.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// MockCommandExecutor records commands instead of running them.
type MockCommandExecutor struct {
	ExecuteErr error
	Output     string // Written to stdout on every call
	Commands   []*domain.ExecCommand
	mu         sync.Mutex
}

// ExecuteWithContext records cmd and writes Output.
func (m *MockCommandExecutor) ExecuteWithContext(_ context.Context, cmd *domain.ExecCommand, stdout, _ io.Writer) error {
	m.mu.Lock()
	m.Commands = append(m.Commands, cmd)
	m.mu.Unlock()
	if m.Output != "" {
		_, _ = io.WriteString(stdout, m.Output)
	}
	return m.ExecuteErr
}

// Scripts returns the `sh -c` scripts of the recorded commands.
func (m *MockCommandExecutor) Scripts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var scripts []string
	for _, c := range m.Commands {
		if len(c.Args) == 2 && c.Args[0] == "-c" {
			scripts = append(scripts, c.Args[1])
		}
	}
	return scripts
}

// ErrMock is a generic error for failure-path tests.
var ErrMock = errors.New("mock error")
