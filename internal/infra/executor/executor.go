// Package executor runs the external commands configured as hooks.
package executor

import (
	"context"
	"io"
	"os/exec"
	"time"

	"github.com/runoshun/classclock/internal/domain"
)

// waitDelay bounds how long Run waits for output pipes after the process
// group has been killed.
const waitDelay = time.Second

// Client implements domain.CommandExecutor with os/exec.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// ExecuteWithContext runs cmd until it exits or ctx is done, streaming its
// output to stdout and stderr. When ctx is done the whole process group is
// killed, including children the command started.
func (c *Client) ExecuteWithContext(ctx context.Context, cmd *domain.ExecCommand, stdout, stderr io.Writer) error {
	// #nosec G204 - the hook command comes from the user's own config
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	execCmd.Stdout = stdout
	execCmd.Stderr = stderr
	killProcessGroup(execCmd)
	execCmd.WaitDelay = waitDelay
	return execCmd.Run()
}
