package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bonarz/qoderbridge/internal/config"
	"github.com/bonarz/qoderbridge/internal/qoder"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that QoderCLI is installed and logged in",
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	facade := qoder.NewFacade(cfg.Tool)
	if path, ok := qoder.DetectBinary(cfg.Tool); ok {
		fmt.Printf("Tool:   %s (%s)\n", cfg.Tool, path)
	} else {
		fmt.Printf("Tool:   %s (not found in PATH)\n", cfg.Tool)
	}

	ctx, cancel := invocationContext(cfg, 0)
	defer cancel()

	res := facade.Invoke(ctx, qoder.ModeStatus, nil)
	if !res.Success {
		printFailure(os.Stdout, os.Stderr, res)
		return &ExitError{Code: exitCodeFor(res)}
	}

	fmt.Print(res.Output)
	return nil
}
