package qoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Runner abstracts command execution for the facade.
// It runs one process to completion and returns the captured streams and
// exit code. err is non-nil only when the process could not be run at all
// (spawn failure); a process that ran and exited nonzero is reported through
// exitCode, not err.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, exitCode int, err error)
}

// execRunner is the default command runner using os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, string, int, error) {
	if err := ctx.Err(); err != nil {
		return "", "", -1, fmt.Errorf("context already canceled: %w", err)
	}

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // argv is built from the fixed mode table
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0, nil
	}

	// context expiry surfaces as a wait error; let the caller classify it
	if ctx.Err() != nil {
		return stdout.String(), stderr.String(), -1, fmt.Errorf("context error: %w", ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.String(), stderr.String(), exitErr.ExitCode(), nil
	}

	return stdout.String(), stderr.String(), -1, fmt.Errorf("run %s: %w", name, err)
}
