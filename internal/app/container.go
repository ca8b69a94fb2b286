// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/runoshun/classclock/internal/domain"
	"github.com/runoshun/classclock/internal/infra/config"
	"github.com/runoshun/classclock/internal/infra/executor"
	"github.com/runoshun/classclock/internal/infra/logging"
	"github.com/runoshun/classclock/internal/infra/raster"
	"github.com/runoshun/classclock/internal/infra/tmux"
	"github.com/runoshun/classclock/internal/infra/x11"
	"github.com/runoshun/classclock/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Clock         domain.Clock
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Executor      domain.CommandExecutor

	// OpenStatusSink connects the named status bar output. Tests replace it.
	OpenStatusSink func(name string) (domain.StatusSink, error)

	// Pointer fields
	Config *domain.Config
	closer interface{ Close() error }

	// Working directory the local config and .env were read from.
	WorkDir string
}

// New creates a Container for the given working directory.
func New(dir string) (*Container, error) {
	loader := config.NewLoader(dir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Log.Dir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Clock:          domain.RealClock{},
		Logger:         logger,
		ConfigLoader:   loader,
		ConfigManager:  config.NewManager(dir),
		Executor:       executor.NewClient(),
		OpenStatusSink: openStatusSink,
		Config:         cfg,
		closer:         logger,
		WorkDir:        dir,
	}, nil
}

// NewForTest creates a Container around explicit ports without touching the
// filesystem for configuration.
func NewForTest(clock domain.Clock, cfg *domain.Config, logger domain.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Clock:          clock,
		Logger:         logger,
		Executor:       executor.NewClient(),
		Config:         cfg,
		OpenStatusSink: openStatusSink,
	}
}

func openStatusSink(name string) (domain.StatusSink, error) {
	switch name {
	case domain.SinkX11:
		return x11.Open()
	case domain.SinkTmux:
		return tmux.Open()
	default:
		return nil, domain.ValidateSink(name)
	}
}

// Close releases resources held by the container (the log file).
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// WithClock returns a shallow copy of the container that reads time from clock.
func (c *Container) WithClock(clock domain.Clock) *Container {
	cp := *c
	cp.Clock = clock
	return &cp
}

// SessionTracker creates a tracker for one interactive view.
func (c *Container) SessionTracker() *usecase.SessionTracker {
	return usecase.NewSessionTracker(c.Clock, c.Logger, c.Config.Display.SoonThreshold)
}

// ShowScheduleUseCase returns a new ShowSchedule use case.
func (c *Container) ShowScheduleUseCase() *usecase.ShowSchedule {
	return usecase.NewShowSchedule(c.Clock)
}

// ShowStatusUseCase returns a new ShowStatus use case.
func (c *Container) ShowStatusUseCase() *usecase.ShowStatus {
	return usecase.NewShowStatus(c.Clock)
}

// RunStatusbarUseCase returns a new RunStatusbar use case publishing to sink.
func (c *Container) RunStatusbarUseCase(sink domain.StatusSink) *usecase.RunStatusbar {
	return usecase.NewRunStatusbar(c.Clock, sink, c.Executor, c.Logger)
}

// WriteSnapshotUseCase returns a new WriteSnapshot use case.
func (c *Container) WriteSnapshotUseCase() *usecase.WriteSnapshot {
	renderer := &raster.ClockFace{ShowSeconds: c.Config.Display.ShowSeconds}
	return usecase.NewWriteSnapshot(c.Clock, renderer, c.Logger)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}
