package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

// Config file names and defaults.
const (
	AppDirName          = "classclock"        // Directory under XDG_CONFIG_HOME
	ConfigFileName      = "config.toml"       // Global config file name
	LocalConfigFileName = ".classclock.toml"  // Config file name in the working directory
	DotEnvFileName      = ".env"              // Environment overrides file
	LogFileName         = "classclock.log"    // Log file name inside the log directory
	DefaultLogLevel     = "info"              // Default log level
	DefaultTickPeriod   = time.Second         // Default tick period
	DefaultTimelineW    = 30                  // Default progress bar width in the timeline
	DefaultSnapshotSize = 400                 // Default PNG edge length in pixels
	EnvPrefix           = "CLASSCLOCK_"       // Prefix of environment overrides
	DefaultSnapshotPath = "classclock.png"    // Default snapshot output path
	DefaultScheduleFmt  = ScheduleFormatText  // Default `schedule` output format
	ScheduleFormatText  = "text"              // Plain text table
	ScheduleFormatYAML  = "yaml"              // YAML document
	SinkX11             = "x11"               // X root window name
	SinkTmux            = "tmux"              // tmux status-right
	DefaultSink         = SinkX11             // Default status bar sink
)

// Config is the merged application configuration.
// It only tunes presentation; the schedule table itself is not configurable.
type Config struct {
	Log       LogConfig       // [log] settings
	Statusbar StatusbarConfig // [statusbar] settings
	Warnings  []string        // Unknown keys and unparsable values
	Tick      TickConfig      // [tick] settings
	Display   DisplayConfig   // [display] settings
	Snapshot  SnapshotConfig  // [snapshot] settings
}

// TickConfig holds the [tick] section.
type TickConfig struct {
	Period time.Duration // Time between two recomputations
}

// DisplayConfig holds the [display] section.
type DisplayConfig struct {
	SoonThreshold time.Duration // Next entry counts as soon below this
	TimelineWidth int           // Progress bar width in cells
	ShowSeconds   bool          // Show the second hand and seconds in the clock
}

// LogConfig holds the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
	Dir   string // Log directory; empty disables logging
}

// StatusbarConfig holds the [statusbar] section.
type StatusbarConfig struct {
	Format   string // Status line format, see FormatStatus
	OnChange string // Shell command run when the current entry changes; same placeholders
	Sink     string // Where the status bar publishes: x11 or tmux
}

// SnapshotConfig holds the [snapshot] section.
type SnapshotConfig struct {
	Size int // Edge length in pixels
}

// NewDefaultConfig returns a Config populated with defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Tick: TickConfig{Period: DefaultTickPeriod},
		Display: DisplayConfig{
			SoonThreshold: DefaultSoonThreshold,
			TimelineWidth: DefaultTimelineW,
			ShowSeconds:   true,
		},
		Log:       LogConfig{Level: DefaultLogLevel},
		Statusbar: StatusbarConfig{Format: DefaultStatusFormat, Sink: DefaultSink},
		Snapshot:  SnapshotConfig{Size: DefaultSnapshotSize},
	}
}

// Validate checks values that would break the tick loop or renderers.
func (c *Config) Validate() error {
	if c.Tick.Period <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTickPeriod, c.Tick.Period)
	}
	if c.Snapshot.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, c.Snapshot.Size)
	}
	return ValidateSink(c.Statusbar.Sink)
}

// ValidateSink checks a status bar sink name.
func ValidateSink(name string) error {
	switch name {
	case SinkX11, SinkTmux:
		return nil
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownSink, name, SinkX11, SinkTmux)
	}
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config file path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the config file path inside dir.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// LogPath returns the log file path inside logDir.
func LogPath(logDir string) string {
	return filepath.Join(logDir, LogFileName)
}
