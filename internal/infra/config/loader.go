// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/classclock/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files and the environment.
type Loader struct {
	lookupEnv     func(string) (string, bool) // Environment lookup (process env, then .env)
	localDir      string                      // Directory holding .classclock.toml and .env
	globalConfDir string                      // Path to global config directory (e.g., ~/.config/classclock)
}

// NewLoader creates a new Loader for the given working directory.
func NewLoader(localDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: defaultGlobalConfigDir(),
		lookupEnv:     NewEnvLookup(localDir),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory
// and no environment overrides.
// This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalConfDir,
		lookupEnv:     func(string) (string, bool) { return "", false },
	}
}

// WithEnv replaces the environment lookup.
func (l *Loader) WithEnv(lookup func(string) (string, bool)) *Loader {
	l.lookupEnv = lookup
	return l
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration.
// Precedence: default <- global <- local <- environment.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.loadGlobalFile()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	local, err := l.loadFile(domain.LocalConfigPath(l.localDir))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}
	base = mergeConfigs(base, envOverrides(l.lookupEnv))

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// LoadGlobal returns defaults merged with the global configuration only.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	global, err := l.loadGlobalFile()
	if err != nil {
		return nil, err
	}
	return mergeConfigs(domain.NewDefaultConfig(), global), nil
}

func (l *Loader) loadGlobalFile() (*fileConfig, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToFileConfig(raw), nil
}

// fileConfig is one config source. Nil fields were not set by that source.
type fileConfig struct {
	TickPeriod      *time.Duration
	SoonThreshold   *time.Duration
	TimelineWidth   *int
	ShowSeconds     *bool
	LogLevel        *string
	LogDir          *string
	StatusbarFormat *string
	OnChange        *string
	Sink            *string
	SnapshotSize    *int
	Warnings        []string
}

// convertRawToFileConfig converts the raw map to a fileConfig and collects warnings.
func convertRawToFileConfig(raw map[string]any) *fileConfig {
	res := &fileConfig{}
	var warnings []string
	warnf := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnf("unknown section: %s", section)
			continue
		}
		switch section {
		case "tick":
			for k, v := range m {
				switch k {
				case "period":
					if d, ok := parseDuration(v); ok {
						res.TickPeriod = &d
					} else {
						warnf("invalid duration in [tick]: period = %v", v)
					}
				default:
					warnf("unknown key in [tick]: %s", k)
				}
			}
		case "display":
			for k, v := range m {
				switch k {
				case "soon_threshold":
					if d, ok := parseDuration(v); ok {
						res.SoonThreshold = &d
					} else {
						warnf("invalid duration in [display]: soon_threshold = %v", v)
					}
				case "timeline_width":
					if n, ok := v.(int64); ok {
						w := int(n)
						res.TimelineWidth = &w
					}
				case "show_seconds":
					if b, ok := v.(bool); ok {
						res.ShowSeconds = &b
					}
				default:
					warnf("unknown key in [display]: %s", k)
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.LogLevel = &s
					}
				case "dir":
					if s, ok := v.(string); ok {
						res.LogDir = &s
					}
				default:
					warnf("unknown key in [log]: %s", k)
				}
			}
		case "statusbar":
			for k, v := range m {
				switch k {
				case "format":
					if s, ok := v.(string); ok {
						res.StatusbarFormat = &s
					}
				case "on_change":
					if s, ok := v.(string); ok {
						res.OnChange = &s
					}
				case "sink":
					if s, ok := v.(string); ok {
						res.Sink = &s
					}
				default:
					warnf("unknown key in [statusbar]: %s", k)
				}
			}
		case "snapshot":
			for k, v := range m {
				switch k {
				case "size":
					if n, ok := v.(int64); ok {
						size := int(n)
						res.SnapshotSize = &size
					}
				default:
					warnf("unknown key in [snapshot]: %s", k)
				}
			}
		default:
			warnf("unknown section: %s", section)
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parseDuration accepts Go duration strings ("1s", "5m").
func parseDuration(v any) (time.Duration, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, false
	}
	return d, true
}

// mergeConfigs applies the fields set in override on top of base.
func mergeConfigs(base *domain.Config, override *fileConfig) *domain.Config {
	result := *base
	if len(override.Warnings) > 0 {
		result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)
	}

	if override.TickPeriod != nil {
		result.Tick.Period = *override.TickPeriod
	}
	if override.SoonThreshold != nil {
		result.Display.SoonThreshold = *override.SoonThreshold
	}
	if override.TimelineWidth != nil {
		result.Display.TimelineWidth = *override.TimelineWidth
	}
	if override.ShowSeconds != nil {
		result.Display.ShowSeconds = *override.ShowSeconds
	}
	if override.LogLevel != nil {
		result.Log.Level = *override.LogLevel
	}
	if override.LogDir != nil {
		result.Log.Dir = *override.LogDir
	}
	if override.StatusbarFormat != nil {
		result.Statusbar.Format = *override.StatusbarFormat
	}
	if override.OnChange != nil {
		result.Statusbar.OnChange = *override.OnChange
	}
	if override.Sink != nil {
		result.Statusbar.Sink = *override.Sink
	}
	if override.SnapshotSize != nil {
		result.Snapshot.Size = *override.SnapshotSize
	}
	return &result
}
