package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/classclock/internal/domain"
)

// RunStatusbarInput contains the parameters for the status bar loop.
type RunStatusbarInput struct {
	Format        string        // Status line format; empty uses the default
	Period        time.Duration // Tick period
	SoonThreshold time.Duration // Zero uses the default
	OnChange      string        // Shell command run on each entry change; empty disables
	Dir           string        // Working directory of the OnChange command
}

// hookTimeout bounds a single OnChange run.
const hookTimeout = 10 * time.Second

// RunStatusbar publishes the status line to a sink on every tick.
type RunStatusbar struct {
	clock    domain.Clock
	sink     domain.StatusSink
	executor domain.CommandExecutor
	logger   domain.Logger
}

// NewRunStatusbar creates a new RunStatusbar use case.
func NewRunStatusbar(clock domain.Clock, sink domain.StatusSink, executor domain.CommandExecutor, logger domain.Logger) *RunStatusbar {
	return &RunStatusbar{clock: clock, sink: sink, executor: executor, logger: logger}
}

// Execute runs until ctx is cancelled. Publish failures are logged and do
// not stop the loop; the sink is closed on return.
func (uc *RunStatusbar) Execute(ctx context.Context, in RunStatusbarInput) error {
	ticker, err := NewTicker(in.Period)
	if err != nil {
		return err
	}
	defer func() {
		if err := uc.sink.Close(); err != nil {
			uc.logger.Warn(logSink, fmt.Sprintf("close status sink: %v", err))
		}
	}()

	tracker := NewSessionTracker(uc.clock, uc.logger, in.SoonThreshold)
	uc.logger.Info(logSession, fmt.Sprintf("status bar started (period %s)", in.Period))
	defer uc.logger.Info(logSession, "status bar stopped")

	return ticker.Run(ctx, func() error {
		v := tracker.Tick()
		if err := uc.sink.Publish(domain.FormatStatus(in.Format, v)); err != nil {
			uc.logger.Error(logSink, err.Error())
		}
		if in.OnChange != "" && tracker.Changed() {
			uc.runHook(ctx, in, v)
		}
		return nil
	})
}

// runHook runs the OnChange command for v. Failures are logged only.
func (uc *RunStatusbar) runHook(ctx context.Context, in RunStatusbarInput, v domain.ViewState) {
	ctx, cancel := context.WithTimeout(ctx, hookTimeout)
	defer cancel()

	script := domain.ExpandPlaceholders(in.OnChange, v)
	var out bytes.Buffer
	err := uc.executor.ExecuteWithContext(ctx, domain.NewShellCommand(script, in.Dir), &out, &out)
	if err != nil {
		uc.logger.Warn(logHook, fmt.Sprintf("%q failed: %v: %s", script, err, strings.TrimSpace(out.String())))
		return
	}
	uc.logger.Debug(logHook, fmt.Sprintf("ran %q", script))
}
