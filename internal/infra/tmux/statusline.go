// Package tmux publishes status lines to the tmux status bar.
package tmux

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/runoshun/classclock/internal/domain"
)

// statusOption is the tmux option the status line is written to.
const statusOption = "status-right"

// RunFunc runs tmux with args and returns its combined output.
// It is replaced in tests.
type RunFunc func(args ...string) ([]byte, error)

// StatusSink writes status lines to a tmux server's status-right option.
// Fields are ordered to minimize memory padding.
type StatusSink struct {
	run        RunFunc
	socketPath string // Empty uses the server of the enclosing session
	last       string
}

// Ensure StatusSink implements domain.StatusSink.
var _ domain.StatusSink = (*StatusSink)(nil)

// Open returns a sink for the tmux server classclock is running under.
func Open() (*StatusSink, error) {
	if os.Getenv("TMUX") == "" {
		return nil, domain.ErrNoTmux
	}
	return NewStatusSink("", runTmux), nil
}

// NewStatusSink creates a sink talking to the server at socketPath using run.
func NewStatusSink(socketPath string, run RunFunc) *StatusSink {
	return &StatusSink{socketPath: socketPath, run: run}
}

func runTmux(args ...string) ([]byte, error) {
	// #nosec G204 - arguments are built by this package
	return exec.Command("tmux", args...).CombinedOutput()
}

func (s *StatusSink) args(args ...string) []string {
	if s.socketPath == "" {
		return args
	}
	return append([]string{"-S", s.socketPath}, args...)
}

// Publish sets the global status-right to status.
// Repeating the previous status is a no-op.
func (s *StatusSink) Publish(status string) error {
	if status == s.last {
		return nil
	}
	// tmux expands #-sequences in status formats; ## is a literal #.
	value := strings.ReplaceAll(status, "#", "##")
	if out, err := s.run(s.args("set-option", "-g", statusOption, value)...); err != nil {
		return fmt.Errorf("update tmux status: %w: %s", err, strings.TrimSpace(string(out)))
	}
	s.last = status
	return nil
}

// Close restores the default status-right.
func (s *StatusSink) Close() error {
	if s.last == "" {
		return nil
	}
	if out, err := s.run(s.args("set-option", "-gu", statusOption)...); err != nil {
		return fmt.Errorf("reset tmux status: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
