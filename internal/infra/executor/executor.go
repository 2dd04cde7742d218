// Package executor provides child-process execution with inherited streams.
package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/ziri-ai/ziri-launcher/internal/domain"
)

// Client implements domain.ProcessExecutor interface.
type Client struct{}

// NewClient creates a new process executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.ProcessExecutor interface.
var _ domain.ProcessExecutor = (*Client)(nil)

// Run spawns the invocation with the launcher's own standard streams and
// blocks until the child terminates. The child's exit status is returned;
// errors are reserved for failing to start or wait on the process.
func (c *Client) Run(ctx context.Context, inv *domain.Invocation) (int, error) {
	return c.RunWithIO(ctx, inv, os.Stdin, os.Stdout, os.Stderr)
}

// RunWithIO runs the invocation with explicit standard streams.
func (c *Client) RunWithIO(ctx context.Context, inv *domain.Invocation, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	if inv.Program == "" {
		return 0, domain.ErrEmptyProgram
	}

	// #nosec G204 - inv.Program is resolved from PATH by trusted UseCase code
	cmd := exec.CommandContext(ctx, inv.Program, inv.Args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, err
	}

	code := exitErr.ExitCode()
	if code < 0 {
		// Child was terminated by a signal; relay the shell convention.
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal()), nil
		}
		code = 1
	}
	return code, nil
}
