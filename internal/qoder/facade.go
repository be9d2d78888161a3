package qoder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Facade builds and runs one QoderCLI invocation per call.
// Every failure, including precondition failures, is reported as a Result
// with Success=false; precondition failures never reach the external process.
type Facade struct {
	Tool string // binary to invoke, defaults to "qodercli"

	runner   Runner
	lookPath func(string) (string, error) // for testing, nil uses exec.LookPath
}

// NewFacade returns a Facade for the given tool binary.
// An empty tool name selects DefaultTool.
func NewFacade(tool string) *Facade {
	return &Facade{Tool: tool}
}

// SetRunner sets the runner for testing purposes.
func (f *Facade) SetRunner(r Runner) {
	f.runner = r
}

// SetLookPath sets the PATH resolver for testing purposes.
func (f *Facade) SetLookPath(fn func(string) (string, error)) {
	f.lookPath = fn
}

func (f *Facade) tool() string {
	if f.Tool == "" {
		return DefaultTool
	}
	return f.Tool
}

func (f *Facade) resolve() (string, bool) {
	look := f.lookPath
	if look == nil {
		look = exec.LookPath
	}
	path, err := look(f.tool())
	if err != nil {
		return "", false
	}
	return path, true
}

func (f *Facade) run(ctx context.Context, args ...string) (string, string, int, error) {
	r := f.runner
	if r == nil {
		r = execRunner{}
	}
	return r.Run(ctx, f.tool(), args...)
}

// Available reports whether the tool binary resolves on PATH.
func (f *Facade) Available() bool {
	_, ok := f.resolve()
	return ok
}

// Authenticated runs the tool's status probe and reports whether the user
// is logged in. A nonzero exit or a spawn failure both mean "not logged in".
func (f *Facade) Authenticated(ctx context.Context) bool {
	_, _, exitCode, err := f.run(ctx, "status")
	return err == nil && exitCode == 0
}

// Invoke runs the tool in the given mode with the mode's positional
// arguments. extraArgs are appended verbatim after the mode's argv.
//
// Preconditions are checked in order: tool on PATH, authenticated, argument
// arity, project directory existence. Any violation returns a failure Result
// without spawning the external process.
func (f *Facade) Invoke(ctx context.Context, mode Mode, args []string, extraArgs ...string) Result {
	if _, ok := f.resolve(); !ok {
		return failure(KindToolNotFound, 1,
			fmt.Sprintf("%s is not installed or not in PATH", f.tool()), "")
	}

	statusOut, statusErr, statusCode, err := f.run(ctx, "status")
	if err != nil {
		return f.spawnFailure(ctx, err, statusOut)
	}
	if statusCode != 0 {
		return failure(KindNotAuthenticated, statusCode,
			fmt.Sprintf("not logged in; run `%s login` first", f.tool()), statusErr)
	}

	argv, failRes, ok := f.buildArgs(mode, args)
	if !ok {
		return failRes
	}
	argv = append(argv, extraArgs...)

	stdout, stderr, exitCode, err := f.run(ctx, argv...)
	if err != nil {
		return f.spawnFailure(ctx, err, stdout)
	}

	res := Result{
		Success:     exitCode == 0,
		Output:      stdout,
		Error:       stderr,
		ExitCode:    exitCode,
		CommandLine: strings.Join(append([]string{f.tool()}, argv...), " "),
	}
	return res
}

// buildArgs maps a mode and its positional arguments onto the fixed argv
// shape for that mode. The mapping is total: every mode either yields an
// argv or a structured failure.
func (f *Facade) buildArgs(mode Mode, args []string) ([]string, Result, bool) {
	switch mode {
	case ModePrompt:
		if len(args) != 1 {
			return nil, failure(KindInvalidArguments, 1,
				"prompt mode requires exactly one prompt argument", ""), false
		}
		return []string{"-p", args[0]}, Result{}, true

	case ModeProject:
		if len(args) != 2 {
			return nil, failure(KindInvalidArguments, 1,
				"project mode requires a directory and a prompt argument", ""), false
		}
		dir, prompt := args[0], args[1]
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return nil, failure(KindDirectoryNotFound, 1,
				fmt.Sprintf("directory %s does not exist", dir), ""), false
		}
		return []string{"-w", dir, "-p", prompt}, Result{}, true

	case ModeStatus:
		if len(args) != 0 {
			return nil, failure(KindInvalidArguments, 1,
				"status mode takes no arguments", ""), false
		}
		return []string{"status"}, Result{}, true

	case ModeReview:
		if len(args) != 0 {
			return nil, failure(KindInvalidArguments, 1,
				"review mode takes no arguments", ""), false
		}
		return []string{"-p", "/review"}, Result{}, true

	case ModeInit:
		if len(args) != 0 {
			return nil, failure(KindInvalidArguments, 1,
				"init mode takes no arguments", ""), false
		}
		return []string{"-p", "/init"}, Result{}, true

	case ModeInteractive:
		return nil, failure(KindUnsupportedMode, 1,
			"interactive mode cannot be scripted", ""), false
	}

	return nil, failure(KindInvalidArguments, 1,
		fmt.Sprintf("unknown mode: %q", mode), ""), false
}

// spawnFailure classifies a runner error: a context deadline becomes a
// timeout, anything else is an unexpected spawn fault.
func (f *Facade) spawnFailure(ctx context.Context, err error, partialOutput string) Result {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return failure(KindProcessTimeout, -1,
			fmt.Sprintf("%s timed out: %v", f.tool(), err), partialOutput)
	}
	return failure(KindUnknownError, -1, err.Error(), partialOutput)
}
