package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/bonarz/qoderbridge/internal/qoder"
)

var (
	errorLabel  = color.New(color.FgRed, color.Bold)
	bannerStyle = color.New(color.FgCyan)
	labelStyle  = color.New(color.Faint)
)

// ExitError carries an exit code from a command to main.
// Commands that print their own diagnostics return it so cobra does not
// print a second error line.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// exitCodeFor maps a failed result onto the process exit code:
// the underlying exit code when the process ran, 1 otherwise.
func exitCodeFor(res qoder.Result) int {
	if res.ExitCode > 0 {
		return res.ExitCode
	}
	return 1
}

// printFailure writes the prefixed error line to errOut, followed by any
// partial output on out.
func printFailure(out, errOut io.Writer, res qoder.Result) {
	msg := strings.TrimSpace(res.Error)
	if msg == "" {
		msg = fmt.Sprintf("command failed with exit code %d", res.ExitCode)
	}
	fmt.Fprintf(errOut, "%s %s\n", errorLabel.Sprint("Error:"), msg)
	if res.Output != "" {
		fmt.Fprint(out, res.Output)
		if !strings.HasSuffix(res.Output, "\n") {
			fmt.Fprintln(out)
		}
	}
}

// banner prints a titled separator block.
func banner(w io.Writer, title string) {
	rule := strings.Repeat("=", 60)
	bannerStyle.Fprintln(w, rule)
	bannerStyle.Fprintln(w, title)
	bannerStyle.Fprintln(w, rule)
}

// rule prints a bare separator line.
func rule(w io.Writer) {
	bannerStyle.Fprintln(w, strings.Repeat("=", 60))
}

// truncate shortens s to at most n runes, appending an ellipsis when cut.
func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
