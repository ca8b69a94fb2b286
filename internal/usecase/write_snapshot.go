package usecase

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/runoshun/classclock/internal/domain"
)

// WriteSnapshotInput contains the parameters for writing a snapshot.
type WriteSnapshotInput struct {
	Path          string        // Output file path
	Size          int           // Edge length in pixels
	SoonThreshold time.Duration // Zero uses the default
}

// WriteSnapshotOutput describes the written snapshot.
type WriteSnapshotOutput struct {
	Path string
	View domain.ViewState
}

// WriteSnapshot renders the current view to an image file.
type WriteSnapshot struct {
	clock    domain.Clock
	renderer domain.SnapshotRenderer
	logger   domain.Logger
}

// NewWriteSnapshot creates a new WriteSnapshot use case.
func NewWriteSnapshot(clock domain.Clock, renderer domain.SnapshotRenderer, logger domain.Logger) *WriteSnapshot {
	return &WriteSnapshot{clock: clock, renderer: renderer, logger: logger}
}

// Execute renders the view at the current instant into in.Path.
// A failed render leaves no partial file behind.
func (uc *WriteSnapshot) Execute(_ context.Context, in WriteSnapshotInput) (*WriteSnapshotOutput, error) {
	if in.Size <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidSize, in.Size)
	}
	view := NewSessionTracker(uc.clock, nil, in.SoonThreshold).Tick()

	f, err := os.Create(in.Path)
	if err != nil {
		return nil, fmt.Errorf("create snapshot: %w", err)
	}
	if err := uc.renderer.Render(f, view, in.Size); err != nil {
		_ = f.Close()
		_ = os.Remove(in.Path)
		return nil, fmt.Errorf("render snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close snapshot: %w", err)
	}

	uc.logger.Info(logSink, fmt.Sprintf("wrote snapshot %s (%dpx) at %s", in.Path, in.Size, view.CurrentTime.Format(time.TimeOnly)))
	return &WriteSnapshotOutput{Path: in.Path, View: view}, nil
}
