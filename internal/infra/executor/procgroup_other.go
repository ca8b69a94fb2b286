//go:build !unix

package executor

import "os/exec"

// killProcessGroup is a no-op; WaitDelay still bounds Run.
func killProcessGroup(*exec.Cmd) {}
