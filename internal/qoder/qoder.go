// Package qoder provides execution of QoderCLI commands with precondition
// checks and normalized results.
package qoder

import "fmt"

// DefaultTool is the binary name used when Facade.Tool is empty.
const DefaultTool = "qodercli"

// Mode identifies the shape of a single QoderCLI invocation.
type Mode string

const (
	// ModePrompt runs a single prompt non-interactively (`-p <prompt>`).
	ModePrompt Mode = "prompt"
	// ModeProject runs a prompt scoped to a project directory (`-w <dir> -p <prompt>`).
	ModeProject Mode = "project"
	// ModeStatus runs the login/status probe (`status`).
	ModeStatus Mode = "status"
	// ModeReview runs the fixed `/review` prompt.
	ModeReview Mode = "review"
	// ModeInit runs the fixed `/init` prompt.
	ModeInit Mode = "init"
	// ModeInteractive is always rejected: it assumes a human in the loop
	// and cannot be scripted.
	ModeInteractive Mode = "interactive"
)

// ParseMode converts a mode token into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePrompt, ModeProject, ModeStatus, ModeReview, ModeInit, ModeInteractive:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode: %q", s)
}

// FailureKind classifies why an invocation failed. Empty on success.
type FailureKind string

const (
	KindToolNotFound      FailureKind = "tool_not_found"
	KindNotAuthenticated  FailureKind = "not_authenticated"
	KindInvalidArguments  FailureKind = "invalid_arguments"
	KindUnsupportedMode   FailureKind = "unsupported_mode"
	KindDirectoryNotFound FailureKind = "directory_not_found"
	KindProcessTimeout    FailureKind = "process_timeout"
	KindUnknownError      FailureKind = "unknown_error"
)

// Result holds the normalized outcome of one invocation.
// Success always equals ExitCode == 0; Kind is empty iff the invocation
// did not fail in a classifiable way.
type Result struct {
	Success     bool
	Output      string
	Error       string
	ExitCode    int
	CommandLine string
	Kind        FailureKind
}

// failure builds a Result for a precondition or execution failure.
func failure(kind FailureKind, exitCode int, errMsg, output string) Result {
	return Result{
		Success:  false,
		Output:   output,
		Error:    errMsg,
		ExitCode: exitCode,
		Kind:     kind,
	}
}
