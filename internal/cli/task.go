package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bonarz/qoderbridge/internal/config"
	"github.com/bonarz/qoderbridge/internal/qoder"
	"github.com/bonarz/qoderbridge/internal/taskstore"
	"github.com/bonarz/qoderbridge/internal/workflow"
)

var (
	taskDir     string
	taskTimeout int
	taskYes     bool
)

var taskCmd = &cobra.Command{
	Use:   "task [request]",
	Short: "Plan, confirm and execute a programming request",
	Long: `Drive a request through the full workflow: ask the tool for a plan,
confirm it, execute the request against the project directory, and record
the run.

The plan is shown before execution. Without --yes you are asked to approve
it; a declined plan cancels the task and records nothing.

Examples:
  qoderbridge task "create a simple calculator program"
  qoderbridge task -d ./myproject --yes "add input validation"`,
	RunE: runTask,
}

func init() {
	taskCmd.Flags().StringVarP(&taskDir, "dir", "d", "", "Project directory (default: configured workspace)")
	taskCmd.Flags().IntVar(&taskTimeout, "timeout", 0, "Timeout in seconds per phase (0 = none)")
	taskCmd.Flags().BoolVarP(&taskYes, "yes", "y", false, "Approve the plan without asking")
}

// planPresenter shows the plan between banner rules before delegating the
// actual approval decision.
type planPresenter struct {
	out   io.Writer
	inner workflow.Confirmer
}

func (p planPresenter) Confirm(plan string) (bool, error) {
	banner(p.out, "Programming task plan")
	fmt.Fprintln(p.out, plan)
	rule(p.out)

	approved, err := p.inner.Confirm(plan)
	if err != nil {
		return false, err
	}
	if approved {
		fmt.Fprintln(p.out, "Plan approved, executing task...")
	}
	return approved, nil
}

func runTask(_ *cobra.Command, args []string) error {
	request, err := buildPrompt(args, os.Stdin)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	projectDir := taskDir
	if projectDir == "" {
		projectDir = cfg.ProjectDir
		// the configured workspace is ours to create; an explicit --dir is not
		if err := os.MkdirAll(projectDir, 0o755); err != nil {
			return fmt.Errorf("create workspace %s: %w", projectDir, err)
		}
	}

	var inner workflow.Confirmer = workflow.PromptConfirmer{In: os.Stdin, Out: os.Stdout}
	if taskYes {
		inner = workflow.AutoApprove{}
	}

	facade := qoder.NewFacade(cfg.Tool)
	store := taskstore.NewStore(cfg.TasksDir)
	orch := workflow.New(facade, planPresenter{out: os.Stdout, inner: inner}, store,
		workflow.Config{ProjectDir: projectDir})

	ctx, cancel := invocationContext(cfg, taskTimeout)
	defer cancel()

	fmt.Printf("Received request: %s\n", request)
	fmt.Println("Creating task plan...")

	out, err := orch.Run(ctx, request)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorLabel.Sprint("Error:"), err)
		return &ExitError{Code: 1}
	}

	if out.Cancelled {
		fmt.Println("Plan declined; task cancelled.")
		return nil
	}

	fmt.Printf("Task %s recorded with status %s\n\n", out.Task.TaskID, out.Task.Status)
	if !out.Result.Success {
		printFailure(os.Stdout, os.Stderr, out.Result)
		return &ExitError{Code: exitCodeFor(out.Result)}
	}

	fmt.Println("Execution result:")
	fmt.Print(out.Task.ExecutionResult)
	return nil
}
