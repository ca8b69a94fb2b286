package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/runoshun/classclock/internal/domain"
)

// Environment variables that override config file values.
const (
	EnvLogLevel      = domain.EnvPrefix + "LOG_LEVEL"
	EnvLogDir        = domain.EnvPrefix + "LOG_DIR"
	EnvTick          = domain.EnvPrefix + "TICK"
	EnvSoonThreshold = domain.EnvPrefix + "SOON_THRESHOLD"
	EnvStatusFormat  = domain.EnvPrefix + "STATUS_FORMAT"
	EnvSnapshotSize  = domain.EnvPrefix + "SNAPSHOT_SIZE"
	EnvOnChange      = domain.EnvPrefix + "ON_CHANGE"
	EnvStatusSink    = domain.EnvPrefix + "STATUS_SINK"
)

// NewEnvLookup returns a lookup that consults the process environment first
// and then the .env file in dir. The .env file is read once and never
// exported into the process environment.
func NewEnvLookup(dir string) func(string) (string, bool) {
	dotenv, err := godotenv.Read(filepath.Join(dir, domain.DotEnvFileName))
	if err != nil {
		dotenv = nil
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

// envOverrides converts environment values into a config source.
func envOverrides(lookup func(string) (string, bool)) *fileConfig {
	res := &fileConfig{}
	if lookup == nil {
		return res
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		res.LogLevel = &v
	}
	if v, ok := lookup(EnvLogDir); ok {
		res.LogDir = &v
	}
	if v, ok := lookup(EnvStatusFormat); ok && v != "" {
		res.StatusbarFormat = &v
	}
	if v, ok := lookup(EnvOnChange); ok {
		res.OnChange = &v
	}
	if v, ok := lookup(EnvStatusSink); ok && v != "" {
		res.Sink = &v
	}
	if v, ok := lookup(EnvTick); ok && v != "" {
		if d, ok := parseDuration(v); ok {
			res.TickPeriod = &d
		} else {
			res.Warnings = append(res.Warnings, fmt.Sprintf("invalid duration in %s: %s", EnvTick, v))
		}
	}
	if v, ok := lookup(EnvSoonThreshold); ok && v != "" {
		if d, ok := parseDuration(v); ok {
			res.SoonThreshold = &d
		} else {
			res.Warnings = append(res.Warnings, fmt.Sprintf("invalid duration in %s: %s", EnvSoonThreshold, v))
		}
	}
	if v, ok := lookup(EnvSnapshotSize); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			res.SnapshotSize = &n
		} else {
			res.Warnings = append(res.Warnings, fmt.Sprintf("invalid integer in %s: %s", EnvSnapshotSize, v))
		}
	}
	return res
}
