package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bonarz/qoderbridge/internal/config"
	"github.com/bonarz/qoderbridge/internal/qoder"
	"github.com/bonarz/qoderbridge/internal/scaffold"
)

// demoTimeout bounds the optional post-scaffold analysis run.
const demoTimeout = 30

var scaffoldDemo bool

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold [dir]",
	Short: "Create a sample project to try the tool on",
	Long: `Create a small sample project (with a git repository) in the given
directory, or under the configured workspace when no directory is given.

With --demo the scaffolded project is immediately analyzed with a
directory-scoped prompt, bounded by a 30-second timeout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScaffold,
}

func init() {
	scaffoldCmd.Flags().BoolVar(&scaffoldDemo, "demo", false, "Analyze the scaffolded project afterwards")
}

func runScaffold(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir := filepath.Join(cfg.ProjectDir, "sample-project")
	if len(args) == 1 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	if err := scaffold.Create(dir); err != nil {
		return err
	}
	fmt.Printf("Sample project created in %s\n", dir)

	if !scaffoldDemo {
		return nil
	}

	fmt.Println("Analyzing the sample project...")
	ctx, cancel := invocationContext(cfg, demoTimeout)
	defer cancel()

	facade := qoder.NewFacade(cfg.Tool)
	res := facade.Invoke(ctx, qoder.ModeProject,
		[]string{dir, "Describe the structure and main functionality of this project."})
	if !res.Success {
		printFailure(os.Stdout, os.Stderr, res)
		return &ExitError{Code: exitCodeFor(res)}
	}

	banner(os.Stdout, "Analysis")
	fmt.Print(res.Output)
	rule(os.Stdout)
	return nil
}
