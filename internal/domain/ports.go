package domain

import (
	"context"
	"io"
	"time"
)

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current local time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed time.
func (c FixedClock) Now() time.Time {
	return c.T
}

// OffsetClock is Base shifted by Offset. It keeps ticking at the rate of
// Base, which lets a live view preview another time of day.
type OffsetClock struct {
	Base   Clock
	Offset time.Duration
}

// Now returns Base.Now() + Offset.
func (c OffsetClock) Now() time.Time {
	return c.Base.Now().Add(c.Offset)
}

// ClockAt returns a clock that reads tod today and keeps running from there.
func ClockAt(base Clock, tod TimeOfDay) OffsetClock {
	now := base.Now()
	return OffsetClock{Base: base, Offset: tod.On(now).Sub(now)}
}

// Logger writes categorized log lines.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- local <- env).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetLocalConfigInfo returns information about the local config file.
	GetLocalConfigInfo() ConfigInfo

	// InitGlobalConfig writes the default config to the global path.
	InitGlobalConfig(force bool) (string, error)

	// InitLocalConfig writes the default config to the local path.
	InitLocalConfig(force bool) (string, error)
}

// StatusSink receives one rendered status line per tick.
type StatusSink interface {
	Publish(status string) error
	Close() error
}

// ExecCommand is an external command to run.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// NewShellCommand wraps script in `sh -c`.
func NewShellCommand(script, dir string) *ExecCommand {
	return &ExecCommand{Program: "sh", Args: []string{"-c", script}, Dir: dir}
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	ExecuteWithContext(ctx context.Context, cmd *ExecCommand, stdout, stderr io.Writer) error
}

// SnapshotRenderer draws a still image of the view.
type SnapshotRenderer interface {
	Render(w io.Writer, v ViewState, size int) error
}
