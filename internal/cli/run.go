package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bonarz/qoderbridge/internal/qoder"
)

var (
	runDir     string
	runTimeout int
	runExtra   []string
)

var runCmd = &cobra.Command{
	Use:   "run [prompt]",
	Short: "Run a single prompt against QoderCLI",
	Long: `Run a prompt non-interactively and print the tool's output.

The prompt can be provided as an argument or piped via stdin. With --dir
the prompt runs scoped to a project directory, which the tool may read
and modify.

Examples:
  qoderbridge run "explain what a goroutine is"
  qoderbridge run -d ./myproject "add tests for the parser"
  echo "summarize the build errors" | qoderbridge run
  qoderbridge run --timeout 30 "quick question"`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runDir, "dir", "d", "", "Project directory to scope the prompt to")
	runCmd.Flags().IntVar(&runTimeout, "timeout", 0, "Timeout in seconds (0 = none)")
	runCmd.Flags().StringArrayVar(&runExtra, "extra", nil, "Extra argument passed through to the tool (repeatable)")
}

// buildPrompt assembles the prompt from CLI args or stdin.
// Returns the prompt string or an error if no prompt is available.
func buildPrompt(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
			data, err := io.ReadAll(f)
			if err != nil {
				return "", fmt.Errorf("failed to read from stdin: %w", err)
			}
			if p := strings.TrimSpace(string(data)); p != "" {
				return p, nil
			}
		}
	}

	return "", fmt.Errorf("no prompt provided. Usage: qoderbridge run \"your prompt here\"")
}

func runRun(_ *cobra.Command, args []string) error {
	prompt, err := buildPrompt(args, os.Stdin)
	if err != nil {
		return err
	}

	if runDir != "" {
		return invokeAndPrint(qoder.ModeProject, []string{runDir, prompt}, runTimeout, runExtra)
	}
	return invokeAndPrint(qoder.ModePrompt, []string{prompt}, runTimeout, runExtra)
}
