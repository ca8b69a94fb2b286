package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/classclock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_LocalConfigOnly(t *testing.T) {
	// Setup: create temp directories
	localDir := t.TempDir()
	globalDir := t.TempDir()

	writeFile(t, domain.LocalConfigPath(localDir), `
[tick]
period = "500ms"

[display]
soon_threshold = "10m"
timeline_width = 20
show_seconds = false

[log]
level = "debug"
dir = "/tmp/classclock-logs"

[statusbar]
format = "{activity} {countdown}"
on_change = "notify-send '{activity}'"
sink = "tmux"

[snapshot]
size = 256
`)

	// Load config
	cfg, err := NewLoaderWithGlobalDir(localDir, globalDir).Load()
	require.NoError(t, err)

	// Verify
	assert.Equal(t, 500*time.Millisecond, cfg.Tick.Period)
	assert.Equal(t, 10*time.Minute, cfg.Display.SoonThreshold)
	assert.Equal(t, 20, cfg.Display.TimelineWidth)
	assert.False(t, cfg.Display.ShowSeconds)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/classclock-logs", cfg.Log.Dir)
	assert.Equal(t, "{activity} {countdown}", cfg.Statusbar.Format)
	assert.Equal(t, "notify-send '{activity}'", cfg.Statusbar.OnChange)
	assert.Equal(t, domain.SinkTmux, cfg.Statusbar.Sink)
	assert.Equal(t, 256, cfg.Snapshot.Size)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	localDir := t.TempDir()
	globalDir := t.TempDir()

	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[log]
level = "warn"
dir = "/var/log/classclock"

[snapshot]
size = 800
`)
	writeFile(t, domain.LocalConfigPath(localDir), `
[log]
level = "debug"
`)

	cfg, err := NewLoaderWithGlobalDir(localDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/classclock", cfg.Log.Dir, "global value survives when local does not set it")
	assert.Equal(t, 800, cfg.Snapshot.Size)
	assert.Equal(t, domain.DefaultTickPeriod, cfg.Tick.Period)
}

func TestLoader_Load_EnvOverridesFiles(t *testing.T) {
	localDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(localDir), `
[tick]
period = "2s"

[log]
level = "warn"
`)

	env := map[string]string{
		EnvTick:     "250ms",
		EnvLogLevel: "error",
	}
	loader := NewLoaderWithGlobalDir(localDir, t.TempDir()).WithEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Tick.Period)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoader_Load_Warnings(t *testing.T) {
	localDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(localDir), `
colour = "blue"

[tick]
period = "soon"
jitter = "1s"

[workers]
default = "x"
`)

	cfg, err := NewLoaderWithGlobalDir(localDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"invalid duration in [tick]: period = soon",
		"unknown key in [tick]: jitter",
		"unknown section: colour",
		"unknown section: workers",
	}, cfg.Warnings)
	assert.Equal(t, domain.DefaultTickPeriod, cfg.Tick.Period)
}

func TestLoader_Load_InvalidTickPeriod(t *testing.T) {
	localDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(localDir), `
[tick]
period = "-1s"
`)

	_, err := NewLoaderWithGlobalDir(localDir, t.TempDir()).Load()
	assert.ErrorIs(t, err, domain.ErrInvalidTickPeriod)
}

func TestLoader_Load_UnknownSink(t *testing.T) {
	localDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(localDir), `
[statusbar]
sink = "lemonbar"
`)

	_, err := NewLoaderWithGlobalDir(localDir, t.TempDir()).Load()
	assert.ErrorIs(t, err, domain.ErrUnknownSink)
}

func TestLoader_Load_MalformedTOML(t *testing.T) {
	localDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(localDir), "[tick\nperiod = ")

	_, err := NewLoaderWithGlobalDir(localDir, t.TempDir()).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.LocalConfigFileName)
}

func TestLoader_LoadGlobal(t *testing.T) {
	globalDir := t.TempDir()
	loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)

	_, err := loader.LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)

	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[display]
timeline_width = 40
`)
	cfg, err := loader.LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Display.TimelineWidth)
	assert.Equal(t, domain.DefaultSnapshotSize, cfg.Snapshot.Size)
}
