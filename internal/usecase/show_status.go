package usecase

import (
	"context"
	"time"

	"github.com/runoshun/classclock/internal/domain"
)

// ShowStatusInput contains the parameters for a one-shot status.
type ShowStatusInput struct {
	Format        string        // Status line format; empty uses the default
	SoonThreshold time.Duration // Zero uses the default
}

// ShowStatusOutput contains the view state and its rendered line.
type ShowStatusOutput struct {
	Line string
	View domain.ViewState
}

// ShowStatus computes the view for the current instant once.
type ShowStatus struct {
	clock domain.Clock
}

// NewShowStatus creates a new ShowStatus use case.
func NewShowStatus(clock domain.Clock) *ShowStatus {
	return &ShowStatus{clock: clock}
}

// Execute samples the clock and renders the status line.
func (uc *ShowStatus) Execute(_ context.Context, in ShowStatusInput) (*ShowStatusOutput, error) {
	view := NewSessionTracker(uc.clock, nil, in.SoonThreshold).Tick()
	return &ShowStatusOutput{
		View: view,
		Line: domain.FormatStatus(in.Format, view),
	}, nil
}
