package cli

import (
	"github.com/spf13/cobra"

	"github.com/bonarz/qoderbridge/internal/qoder"
)

var (
	reviewTimeout int
	initTimeout   int
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Run the tool's /review shortcut",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invokeAndPrint(qoder.ModeReview, nil, reviewTimeout, nil)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Run the tool's /init shortcut",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invokeAndPrint(qoder.ModeInit, nil, initTimeout, nil)
	},
}

func init() {
	reviewCmd.Flags().IntVar(&reviewTimeout, "timeout", 0, "Timeout in seconds (0 = none)")
	initCmd.Flags().IntVar(&initTimeout, "timeout", 0, "Timeout in seconds (0 = none)")
}
