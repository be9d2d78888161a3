package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/bonarz/qoderbridge/internal/config"
	"github.com/bonarz/qoderbridge/internal/debug"
	"github.com/bonarz/qoderbridge/internal/qoder"
)

// invocationContext applies the effective timeout: the flag when set,
// otherwise the configured one. Zero means no deadline.
func invocationContext(cfg *config.Config, timeoutFlag int) (context.Context, context.CancelFunc) {
	timeout := cfg.Timeout
	if timeoutFlag > 0 {
		timeout = timeoutFlag
	}
	if timeout <= 0 {
		return context.Background(), func() {}
	}
	return context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
}

// extraArgs combines configured extra flags with per-command extras.
func extraArgs(cfg *config.Config, extras []string) []string {
	out := strings.Fields(cfg.ExtraFlags)
	return append(out, extras...)
}

// invokeAndPrint runs one facade invocation and presents its result:
// output on stdout for success, a prefixed error line plus partial output
// on failure, with the process exit code mirroring the failure.
func invokeAndPrint(mode qoder.Mode, args []string, timeoutFlag int, extras []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := invocationContext(cfg, timeoutFlag)
	defer cancel()

	facade := qoder.NewFacade(cfg.Tool)
	res := facade.Invoke(ctx, mode, args, extraArgs(cfg, extras)...)
	debug.Logf("invoked %s: success=%v exit=%d", res.CommandLine, res.Success, res.ExitCode)

	if !res.Success {
		printFailure(os.Stdout, os.Stderr, res)
		return &ExitError{Code: exitCodeFor(res)}
	}

	os.Stdout.WriteString(res.Output)
	return nil
}
