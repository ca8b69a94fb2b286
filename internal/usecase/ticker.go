package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/classclock/internal/domain"
)

// Ticker runs a step function on a fixed period until its context is
// cancelled. Steps never overlap: a slow step delays the next one and
// missed ticks are dropped by time.Ticker.
type Ticker struct {
	period time.Duration
}

// NewTicker creates a Ticker.
func NewTicker(period time.Duration) (*Ticker, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidTickPeriod, period)
	}
	return &Ticker{period: period}, nil
}

// Run calls step once immediately and then once per period. It returns nil
// when ctx is cancelled, or the first error returned by step.
func (t *Ticker) Run(ctx context.Context, step func() error) error {
	if err := ctx.Err(); err != nil {
		return nil //nolint:nilerr // Cancelled before the first step
	}
	if err := step(); err != nil {
		return err
	}

	tick := time.NewTicker(t.period)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			if ctx.Err() != nil {
				return nil
			}
			if err := step(); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}
