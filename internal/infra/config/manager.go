package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/classclock/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// configHeader is written above generated config files.
const configHeader = `# classclock configuration
#
# Durations use Go syntax ("1s", "5m"). Status format placeholders:
# {clock} {activity} {remaining} {countdown} {next} {live}
# [statusbar] on_change is run with sh -c whenever the current activity
# changes, with the same placeholders expanded.

`

// Manager manages configuration files.
type Manager struct {
	localDir      string // Directory holding .classclock.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/classclock)
}

// NewManager creates a new Manager.
func NewManager(localDir string) *Manager {
	return &Manager{
		localDir:      localDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(localDir, globalConfDir string) *Manager {
	return &Manager{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// GetLocalConfigInfo returns information about the local config file.
func (m *Manager) GetLocalConfigInfo() domain.ConfigInfo {
	return getConfigInfo(domain.LocalConfigPath(m.localDir))
}

// getConfigInfo reads a config file and returns its info.
func getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{Path: path}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitGlobalConfig writes the default config to the global config path.
func (m *Manager) InitGlobalConfig(force bool) (string, error) {
	if m.globalConfDir == "" {
		return "", errors.New("cannot determine global config directory")
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)
	return path, writeDefaultConfig(path, force)
}

// InitLocalConfig writes the default config to .classclock.toml in the working directory.
func (m *Manager) InitLocalConfig(force bool) (string, error) {
	path := domain.LocalConfigPath(m.localDir)
	return path, writeDefaultConfig(path, force)
}

func writeDefaultConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
		}
	}

	content, err := Render(domain.NewDefaultConfig())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configHeader+content), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// document mirrors the on-disk layout of a config file.
type document struct {
	Tick      tickSection      `toml:"tick"`
	Display   displaySection   `toml:"display"`
	Log       logSection       `toml:"log"`
	Statusbar statusbarSection `toml:"statusbar"`
	Snapshot  snapshotSection  `toml:"snapshot"`
}

type tickSection struct {
	Period string `toml:"period"`
}

type displaySection struct {
	SoonThreshold string `toml:"soon_threshold"`
	TimelineWidth int    `toml:"timeline_width"`
	ShowSeconds   bool   `toml:"show_seconds"`
}

type logSection struct {
	Level string `toml:"level"`
	Dir   string `toml:"dir"`
}

type statusbarSection struct {
	Format   string `toml:"format"`
	OnChange string `toml:"on_change"`
	Sink     string `toml:"sink"`
}

type snapshotSection struct {
	Size int `toml:"size"`
}

// Render encodes cfg in the config file format.
func Render(cfg *domain.Config) (string, error) {
	doc := document{
		Tick: tickSection{Period: cfg.Tick.Period.String()},
		Display: displaySection{
			SoonThreshold: cfg.Display.SoonThreshold.String(),
			TimelineWidth: cfg.Display.TimelineWidth,
			ShowSeconds:   cfg.Display.ShowSeconds,
		},
		Log:       logSection{Level: cfg.Log.Level, Dir: cfg.Log.Dir},
		Statusbar: statusbarSection{
			Format:   cfg.Statusbar.Format,
			OnChange: cfg.Statusbar.OnChange,
			Sink:     cfg.Statusbar.Sink,
		},
		Snapshot:  snapshotSection{Size: cfg.Snapshot.Size},
	}
	out, err := toml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(out), nil
}
